package parameter

import "time"

// Simulation Timing
const (
	// TickRate is the number of simulation ticks per second driven by the host
	TickRate = 60

	// TickInterval is the host loop interval for one simulation tick
	TickInterval = time.Second / TickRate
)

// Queue Limits
const (
	// EventQueueSize is the fixed capacity of the visual event ring buffer
	EventQueueSize = 512

	// EventBufferMask is the bitmask for fast modulo operations (512 - 1)
	EventBufferMask = 511

	// AimQueueSize is the number of aim inputs buffered between two ticks, extra input is dropped
	AimQueueSize = 16
)

// Content Limits
const (
	// MaxTemplates bounds the number of threat templates accepted from a source
	MaxTemplates = 256

	// MaxTemplateNameLength truncates display names from external data
	MaxTemplateNameLength = 48
)
