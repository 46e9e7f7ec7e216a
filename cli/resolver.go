package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/jalg/log"
)

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The document must be a flat mapping from flag name to value. Keys may use
// hyphens (e.g., "log-level") or underscores (e.g., "log_level").
//
//	log-level: debug
//	log-format: json
//	log_pretty: false
//	include:
//	  - ./forms
//
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Warn("ignoring malformed configuration",
			slog.String("error", err.Error()))

		return config{}, nil
	}

	cfg := make(config, len(doc))
	for key, value := range doc {
		cfg[key] = normalize(value)
	}

	return cfg, nil
}

// config implements [kong.Resolver] over a decoded YAML mapping.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// normalize converts a decoded YAML value into a form kong decodes
// reliably: numbers become strings and sequences become a comma-separated
// list with embedded commas escaped.
func normalize(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s := fmt.Sprint(normalize(item))
			items = append(items, strings.ReplaceAll(s, ",", `\,`))
		}

		return strings.Join(items, ",")
	default:
		return v
	}
}
