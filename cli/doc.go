// Package cli contains the command line interface for jalg.
//
// # Usage
//
//	jalg [flags] <command>
//
// Commands:
//
//   - fmt native|json|yaml|tree: parse and rewrite notation in a format
//   - svg: project a uni-nested form onto an SVG document
//   - inspect: report structural statistics, optionally through --where
//   - init: write the current flag values to the configuration file
//   - repl: start an interactive session
//
// Every command reads inline text given with -e, or a SOURCE path, where "-"
// is standard input.
//
// # Source Search Path
//
// Relative source paths that do not exist in the working directory are
// searched in each --include directory, then in each directory listed in
// $JALG_PATH (separated like $PATH).
//
// # Configuration
//
// Flag defaults are read from config.yaml and config.json in the user
// configuration directory (e.g. ~/.config/jalg). Keys are flag names, with
// hyphens or underscores:
//
//	log-level: debug
//	log_pretty: false
//	include: [/usr/share/jalg]
//
// Command-line flags override configuration values. [cmd.Init] writes the
// current values to config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o jalg .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/jalg/pprof)
//
// # Examples
//
//	# Canonical form of a file found on the search path
//	jalg -I ./examples fmt j.jalg
//
//	# Lens-style SVG of the J-form
//	jalg svg -e '[<()>]' --lens -o j.svg
//
//	# Depth of a form read from stdin
//	echo '(<[oo]>)' | jalg inspect --where depth
package cli
