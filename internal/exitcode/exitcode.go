// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, rejected task text, out of range).
	UserError = 1

	// ConfigError indicates invalid configuration or environment.
	ConfigError = 2

	// StorageError indicates the storage backend could not be opened or read.
	StorageError = 3
)
