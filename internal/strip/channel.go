// Package strip provides the physical output channels the rendering
// pipeline transfers encoded frames to: real SPI ports, a simulated channel
// for tests and headless runs, and a terminal preview drawer.
package strip

// Channel abstracts one physical LED strip output. Transmit starts an
// asynchronous transfer of an encoded frame and returns immediately; Busy
// reports whether that transfer is still running. The caller owns the frame
// buffer and must not rewrite it until Busy reports false again — the
// renderer's flush enforces this by polling every channel idle before
// touching the shared transfer buffer.
type Channel interface {
	// Busy reports whether a previously started transfer is still in flight.
	Busy() bool
	// Transmit starts an asynchronous transfer. Calling it while Busy is an
	// error.
	Transmit(frame []byte) error
	// Close releases resources.
	Close() error
}
