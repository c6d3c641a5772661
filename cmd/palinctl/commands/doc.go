// Package commands defines the palinctl CLI and wires dependencies for subcommands.
//
// Commands
//
//   - check          Classify text given as arguments or read from stdin
//   - example        Print phrases from the example picker
//   - repl           Feed stdin lines into one session and print each snapshot
//   - config show    Print the effective configuration
//   - config init    Write a default configuration file
//
// # Implementation
//
// The root command loads and validates the configuration, then builds a
// logger and the counter registry before any subcommand runs. Each
// subcommand creates its own session from that shared state. With
// --metrics the counters are printed in Prometheus text format after the
// subcommand returns.
package commands
