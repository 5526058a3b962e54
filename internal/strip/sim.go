package strip

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// SimChannel is a Channel without hardware: it records every transmitted
// frame, optionally holding Busy true for a configurable latency to mimic a
// real transfer. Used by tests and the no-hardware run path.
type SimChannel struct {
	// Latency is how long a simulated transfer stays in flight. Zero
	// completes synchronously.
	Latency time.Duration

	busy   atomic.Bool
	mu     sync.Mutex
	last   []byte
	frames int
}

// Busy reports whether a simulated transfer is still in flight.
func (c *SimChannel) Busy() bool { return c.busy.Load() }

// Transmit records a copy of the frame. Like the hardware channel it
// rejects a transfer while one is still in flight.
func (c *SimChannel) Transmit(frame []byte) error {
	cp := make([]byte, len(frame))
	copy(cp, frame)

	if c.Latency <= 0 {
		c.store(cp)
		return nil
	}

	if !c.busy.CompareAndSwap(false, true) {
		return fmt.Errorf("sim channel: transfer already in flight")
	}
	go func() {
		time.Sleep(c.Latency)
		c.store(cp)
		c.busy.Store(false)
	}()
	return nil
}

func (c *SimChannel) store(frame []byte) {
	c.mu.Lock()
	c.last = frame
	c.frames++
	c.mu.Unlock()
}

// LastFrame returns a copy of the most recently completed frame.
func (c *SimChannel) LastFrame() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]byte, len(c.last))
	copy(cp, c.last)
	return cp
}

// Frames returns how many transfers have completed.
func (c *SimChannel) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Close implements Channel.
func (c *SimChannel) Close() error {
	for c.busy.Load() {
		time.Sleep(time.Millisecond)
	}
	return nil
}
