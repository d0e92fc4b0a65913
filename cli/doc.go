// Package cli contains the command line interface for grim.
//
// # Usage
//
// The default command runs a script:
//
//	grim run script.grim
//	grim run -            # read program from stdin
//
// Additional subcommands inspect the front end of the interpreter:
//
//	grim tokens script.grim   # dump the token stream
//	grim ast script.grim      # dump the parsed syntax tree
//	grim repl                 # interactive session
//	grim init                 # write a default configuration file
//
// # Configuration
//
// Default flag values are read from a YAML configuration file in the user
// configuration directory (e.g. ~/.config/grim/config.yaml). Command-line
// flags override configuration file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorized single-line output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/grim/pprof)
package cli
