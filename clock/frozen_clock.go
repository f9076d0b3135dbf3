package clock

import (
	"sync"
	"time"
)

// FrozenClock wraps a TimeSource with a display-freeze toggle. While
// frozen, Now returns the instant of the freeze; resuming goes straight
// back to the live source, it does not replay the frozen span
type FrozenClock struct {
	mu       sync.RWMutex
	source   TimeSource
	frozen   bool
	frozenAt time.Time
}

// NewFrozenClock creates an unfrozen clock reading from source
func NewFrozenClock(source TimeSource) *FrozenClock {
	return &FrozenClock{source: source}
}

// Now returns the frozen instant while frozen, the live source time otherwise
func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.frozen {
		return c.frozenAt
	}
	return c.source.Now()
}

// Freeze pins Now to the current source time. Freezing twice keeps the
// first pin
func (c *FrozenClock) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.frozen {
		c.frozen = true
		c.frozenAt = c.source.Now()
	}
}

// Resume returns Now to the live source
func (c *FrozenClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = false
}

// Toggle flips the freeze state and returns the new state
func (c *FrozenClock) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		c.frozen = false
	} else {
		c.frozen = true
		c.frozenAt = c.source.Now()
	}
	return c.frozen
}

// IsFrozen returns the current freeze state
func (c *FrozenClock) IsFrozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}
