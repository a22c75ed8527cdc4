package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// Entity TTLs. Game state is transient by contract, so everything
	// expires; the TTL just bounds how long an abandoned game lingers.
	GameTTL   time.Duration
	PlayerTTL time.Duration
	GuessTTL  time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		GameTTL:      24 * time.Hour,
		PlayerTTL:    24 * time.Hour,
		GuessTTL:     24 * time.Hour,
	}
}
