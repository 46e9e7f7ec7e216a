// Package cmd implements the jalg subcommands.
//
// Every command reads one input: inline text given with -e, or a SOURCE
// path, where "-" reads standard input. Relative paths missing from the
// working directory are looked up in the include path installed with
// [WithIncludePath].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
