// Package cli parses command-line arguments, validates user input, and owns
// process-level concerns like exit codes. It translates CLI flags and the
// CI-provided environment into the application's configuration.
package cli
