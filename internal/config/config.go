// Package config holds the server's runtime configuration, populated from CLI
// flags (spec.md §6 "CLI surface") rather than a config file — the teacher's INI
// loader had no equivalent surface to carry over (see DESIGN.md).
package config

// Config is the fully-resolved set of knobs the command-line entry point hands
// to the server runtime.
type Config struct {
	// Host and Port form the TCP listen address (spec.md §6, default 127.0.0.1:25565).
	Host string
	Port int

	// CompressionThreshold matches frame.Config's threshold (spec.md §4.2):
	// negative disables compression, 0 compresses every packet.
	CompressionThreshold int32

	// PoolSize bounds the number of concurrently running connection tasks
	// (spec.md §5 "parallel tasks, one per connection").
	PoolSize int

	// Verbose raises the logger to debug level.
	Verbose bool
}

// Default returns the configuration spec.md §6 specifies when no flags are given.
func Default() Config {
	return Config{
		Host:                 "127.0.0.1",
		Port:                 25565,
		CompressionThreshold: 256,
		PoolSize:             256,
		Verbose:              false,
	}
}
