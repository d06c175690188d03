package network

import (
	"time"
)

// Config holds spectator feed configuration
type Config struct {
	// Address to bind, empty disables the feed
	Address string

	// Path the websocket endpoint is served on
	Path string

	// Connection limits
	MaxViewers int

	// Timing
	WriteTimeout time.Duration
	PingInterval time.Duration
	PongWait     time.Duration

	// Frames queued per viewer before it is dropped
	SendQueueSize int
}

// DefaultConfig returns local defaults with the feed disabled
func DefaultConfig() *Config {
	return &Config{
		Address:       "",
		Path:          "/ws",
		MaxViewers:    16,
		WriteTimeout:  5 * time.Second,
		PingInterval:  25 * time.Second,
		PongWait:      60 * time.Second,
		SendQueueSize: 8,
	}
}

// Enabled reports whether an address is configured
func (c *Config) Enabled() bool {
	return c.Address != ""
}
