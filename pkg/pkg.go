//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the jalg module embedded at build time.
// It is printed by the CLI when users pass the --version flag.
//
//go:embed VERSION
var version string

// Version returns the embedded semantic version with surrounding whitespace
// removed.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "jalg"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Bracket algebra parser, renderer, and projector"
	// PathEnv is the environment variable holding the PATH-like list of
	// directories searched for relative source files.
	PathEnv = "JALG_PATH"
)
