// Package config defines server configuration and its loading.
package config

// Config contains process configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Storage selects the backend: memory, redis or file.
	Storage string `koanf:"storage"`

	// RedisURL is the Redis connection URL when Storage is "redis".
	RedisURL string `koanf:"redis_url"`

	// RoomTTLHours is the Redis room expiry; zero keeps rooms forever.
	RoomTTLHours int `koanf:"room_ttl_hours"`

	// StateDir is where the file backend keeps room documents.
	StateDir string `koanf:"state_dir"`
}

// New returns a Config with defaults
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8080",
		Storage:      "memory",
		RedisURL:     "redis://localhost:6379",
		RoomTTLHours: 30 * 24,
		StateDir:     "data/rooms",
	}
}
