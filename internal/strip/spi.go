package strip

import (
	"fmt"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// DefaultSpeed is the SPI clock for the 3-bits-per-bit expansion scheme;
// 2.4-3.2 MHz lands each expanded bit inside the strip's timing window.
const DefaultSpeed = 2400 * physic.KiloHertz

// SPIChannel drives one LED strip through an SPI port. The port clocks out
// pre-encoded frames; the trailing zero byte of each frame plus the idle bus
// provides the latch gap.
type SPIChannel struct {
	// Reset extends Busy past the end of each transfer, guaranteeing the
	// strip's latch time even when frames arrive back to back.
	Reset time.Duration

	port spi.PortCloser
	conn spi.Conn
	busy atomic.Bool
	err  atomic.Value // last async transfer error
}

// OpenSPI opens the named SPI port ("" for the first available) and
// configures it for strip output: mode 0, 8 bits per word.
func OpenSPI(name string, speed physic.Frequency) (*SPIChannel, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", name, err)
	}
	ch, err := NewSPIChannel(port, speed)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("spi port %q: %w", name, err)
	}
	return ch, nil
}

// NewSPIChannel configures an already opened port for strip output.
func NewSPIChannel(port spi.PortCloser, speed physic.Frequency) (*SPIChannel, error) {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	conn, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &SPIChannel{port: port, conn: conn}, nil
}

// Busy reports whether the last transfer is still being clocked out.
func (c *SPIChannel) Busy() bool { return c.busy.Load() }

// Err returns the error of the most recent completed transfer, if any.
func (c *SPIChannel) Err() error {
	if e, ok := c.err.Load().(error); ok {
		return e
	}
	return nil
}

// Transmit clocks frame out asynchronously. The frame slice must stay
// untouched until Busy reports false.
func (c *SPIChannel) Transmit(frame []byte) error {
	if !c.busy.CompareAndSwap(false, true) {
		return fmt.Errorf("spi channel: transfer already in flight")
	}
	go func() {
		if err := c.conn.Tx(frame, nil); err != nil {
			c.err.Store(fmt.Errorf("spi tx: %w", err))
		}
		if c.Reset > 0 {
			time.Sleep(c.Reset)
		}
		c.busy.Store(false)
	}()
	return nil
}

// Close waits for no transfer and releases the port.
func (c *SPIChannel) Close() error {
	for c.busy.Load() {
		time.Sleep(time.Millisecond)
	}
	return c.port.Close()
}
