package engine

// TickClock counts unpaused simulation ticks
// Deferred due times are expressed in this clock, so time spent paused never elapses
type TickClock struct {
	now    uint64
	paused bool
}

// Now returns the current tick
func (c *TickClock) Now() uint64 {
	return c.now
}

// Advance moves the clock one tick forward, returns false while paused
func (c *TickClock) Advance() bool {
	if c.paused {
		return false
	}
	c.now++
	return true
}

// Pause stops tick advancement
func (c *TickClock) Pause() {
	c.paused = true
}

// Resume continues tick advancement from where it stopped
func (c *TickClock) Resume() {
	c.paused = false
}

// IsPaused returns current pause state
func (c *TickClock) IsPaused() bool {
	return c.paused
}

// Reset returns to tick zero, unpaused
func (c *TickClock) Reset() {
	c.now = 0
	c.paused = false
}
