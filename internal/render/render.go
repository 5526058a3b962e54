// Package render owns the color framebuffer and turns it into the timed bit
// protocol LED strips expect: gamma and color-order correction, 3-bit NRZ
// encoding, and synchronized asynchronous transfer to the strip channels.
package render

import (
	"fmt"
	"math"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/Contomo/Infinity-Polyhedra/internal/strip"
)

// DefaultMaxAlloc caps the combined framebuffer and transfer buffer size.
// Large composite solids with a full-length LED budget stay well under it.
const DefaultMaxAlloc = 64 * 1024

// DefaultColorOrder matches the common WS2812 wire order.
const DefaultColorOrder = "GRB"

// DefaultGamma is the perceptual correction exponent applied per channel.
const DefaultGamma = 2.2

// bytesPerLed: every color byte expands to 3 encoded bytes, 3 channels.
const bytesPerLed = 9

// RGB is one framebuffer pixel.
type RGB struct {
	R, G, B uint8
}

// Options configures renderer construction.
type Options struct {
	// ColorOrder is the strip's channel order, e.g. "GRB" or "RGB".
	ColorOrder string
	// Gamma is the correction exponent; 0 means DefaultGamma.
	Gamma float64
	// MaxAlloc caps total buffer allocation in bytes; 0 means
	// DefaultMaxAlloc, negative disables the check.
	MaxAlloc int
	// Log receives allocation summaries and dropped-pixel reports.
	Log zerolog.Logger
}

// Renderer holds the framebuffer and the per-strip transfer buffer. One
// logical thread of control is assumed: the cooperative loop writes pixels
// and calls UpdateLeds; the only asynchronous activity is the hardware
// transfer UpdateLeds starts.
type Renderer struct {
	pixelsTotal    int
	pixelsPerStrip int
	stripCnt       int
	channels       []strip.Channel

	framebuffer []RGB
	stripBuf    []byte

	encodeTbl [256]uint32
	gammaTbl  [256]uint8
	colorMap  [3]int

	// Brightness is a channel-wide multiplier declared for the color
	// pipeline but not yet applied during expansion.
	// TODO: apply Brightness before gamma once the scaling rule
	// (linear vs video) is decided.
	Brightness uint8

	ready bool
	log   zerolog.Logger
}

// New allocates the framebuffer and transfer buffers for totalPixels pixels
// spread over stripCount channels and precomputes the gamma, color-order
// and bit-encoding tables. Fails without partial allocation when the
// arguments are invalid or the allocation ceiling would be exceeded.
func New(totalPixels, stripCount int, channels []strip.Channel, opts Options) (*Renderer, error) {
	if totalPixels <= 0 || stripCount <= 0 {
		return nil, fmt.Errorf("render: invalid sizes (pixels=%d strips=%d)", totalPixels, stripCount)
	}
	if len(channels) != stripCount {
		return nil, fmt.Errorf("render: %d channels for %d strips", len(channels), stripCount)
	}
	if opts.ColorOrder == "" {
		opts.ColorOrder = DefaultColorOrder
	}
	if opts.Gamma == 0 {
		opts.Gamma = DefaultGamma
	}
	maxAlloc := opts.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = DefaultMaxAlloc
	}

	r := &Renderer{
		pixelsTotal:    totalPixels,
		stripCnt:       stripCount,
		pixelsPerStrip: (totalPixels + stripCount - 1) / stripCount,
		channels:       channels,
		Brightness:     255,
		log:            opts.Log,
	}

	fbBytes := 3 * totalPixels
	sbBytes := stripCount * (r.pixelsPerStrip*bytesPerLed + 1)
	if maxAlloc > 0 && fbBytes+sbBytes > maxAlloc {
		return nil, fmt.Errorf("render: %d bytes exceeds ceiling of %d", fbBytes+sbBytes, maxAlloc)
	}

	r.framebuffer = make([]RGB, totalPixels)
	r.stripBuf = make([]byte, sbBytes)
	r.initEncodeTbl()
	if err := r.initColorMap(opts.ColorOrder); err != nil {
		return nil, err
	}
	r.initGammaTbl(opts.Gamma)

	r.log.Debug().
		Int("pixels", totalPixels).
		Int("strips", stripCount).
		Int("pixels_per_strip", r.pixelsPerStrip).
		Int("framebuffer_bytes", fbBytes).
		Int("stripbuffer_bytes", sbBytes).
		Msg("renderer buffers allocated")

	r.ready = true
	return r, nil
}

// Ready reports whether the pipeline is initialized.
func (r *Renderer) Ready() bool { return r.ready }

// TotalPixels returns the logical pixel count.
func (r *Renderer) TotalPixels() int { return r.pixelsTotal }

// PixelsPerStrip returns the per-channel pixel capacity.
func (r *Renderer) PixelsPerStrip() int { return r.pixelsPerStrip }

// Shutdown waits out in-flight transfers and releases the buffers. The
// pixel API becomes a no-op until a new renderer is built.
func (r *Renderer) Shutdown() {
	r.waitAllIdle()
	r.ready = false
	r.framebuffer = nil
	r.stripBuf = nil
}

// SetAll overwrites every pixel with the same color.
func (r *Renderer) SetAll(red, green, blue uint8) {
	if !r.ready {
		return
	}
	for i := range r.framebuffer {
		r.framebuffer[i] = RGB{red, green, blue}
	}
}

// SetPixel overwrites one pixel. No-op when not ready or out of range.
func (r *Renderer) SetPixel(idx int, red, green, blue uint8) {
	if !r.ready || idx < 0 || idx >= r.pixelsTotal {
		return
	}
	r.framebuffer[idx] = RGB{red, green, blue}
}

// qadd8 adds with saturation at 255.
func qadd8(a, b uint8) uint8 {
	s := a + b
	if s < a { // wraparound
		return 255
	}
	return s
}

// qsub8 subtracts with saturation at 0.
func qsub8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return 0
}

// AddPixel adds to one pixel per channel, clamping at 255.
func (r *Renderer) AddPixel(idx int, red, green, blue uint8) {
	if !r.ready || idx < 0 || idx >= r.pixelsTotal {
		return
	}
	c := &r.framebuffer[idx]
	c.R = qadd8(c.R, red)
	c.G = qadd8(c.G, green)
	c.B = qadd8(c.B, blue)
}

// SubtractPixel subtracts from one pixel per channel, flooring at 0.
func (r *Renderer) SubtractPixel(idx int, red, green, blue uint8) {
	if !r.ready || idx < 0 || idx >= r.pixelsTotal {
		return
	}
	c := &r.framebuffer[idx]
	c.R = qsub8(c.R, red)
	c.G = qsub8(c.G, green)
	c.B = qsub8(c.B, blue)
}

// Pixel returns the current framebuffer color of idx.
func (r *Renderer) Pixel(idx int) RGB {
	if !r.ready || idx < 0 || idx >= r.pixelsTotal {
		return RGB{}
	}
	return r.framebuffer[idx]
}

// Snapshot appends the framebuffer as packed R,G,B triples to dst, for
// preview drawers.
func (r *Renderer) Snapshot(dst []byte) []byte {
	for _, c := range r.framebuffer {
		dst = append(dst, c.R, c.G, c.B)
	}
	return dst
}

// waitAllIdle polls every channel until no transfer is in flight. This is
// the pipeline's only blocking operation; it keeps frame N's bytes intact
// until the hardware has consumed them.
func (r *Renderer) waitAllIdle() {
	for {
		allReady := true
		for _, ch := range r.channels {
			if ch.Busy() {
				allReady = false
				break
			}
		}
		if allReady {
			return
		}
		runtime.Gosched()
	}
}

// expandLed writes the 9 encoded bytes for one physical pixel into the
// correct strip region of the transfer buffer.
func (r *Renderer) expandLed(physIdx int, c RGB) {
	if physIdx >= r.stripCnt*r.pixelsPerStrip {
		// write-time bounds should make this unreachable
		r.log.Debug().Int("phys", physIdx).Msg("expand dropped out-of-range pixel")
		return
	}

	stripIdx := physIdx / r.pixelsPerStrip
	led := physIdx % r.pixelsPerStrip
	frameBytes := r.pixelsPerStrip*bytesPerLed + 1
	offset := stripIdx*frameBytes + led*bytesPerLed

	scaled := [3]uint8{
		r.gammaTbl[c.R],
		r.gammaTbl[c.G],
		r.gammaTbl[c.B],
	}

	dst := r.stripBuf[offset:]
	for ch := 0; ch < 3; ch++ {
		bits := r.encodeTbl[scaled[r.colorMap[ch]]]
		dst[ch*3+0] = byte(bits >> 16)
		dst[ch*3+1] = byte(bits >> 8)
		dst[ch*3+2] = byte(bits)
	}
}

// UpdateLeds flushes the framebuffer to the strips: it blocks until every
// channel's previous transfer finished, re-encodes the whole frame into the
// transfer buffer, and starts one asynchronous transfer per channel. The
// final byte of each channel's region stays zero as the inter-frame latch
// gap.
func (r *Renderer) UpdateLeds() error {
	if !r.ready {
		return fmt.Errorf("render: not initialized")
	}

	r.waitAllIdle()

	for i := range r.stripBuf {
		r.stripBuf[i] = 0
	}
	for i := 0; i < r.pixelsTotal; i++ {
		r.expandLed(i, r.framebuffer[i])
	}

	frameBytes := r.pixelsPerStrip*bytesPerLed + 1
	for s, ch := range r.channels {
		if err := ch.Transmit(r.stripBuf[s*frameBytes : (s+1)*frameBytes]); err != nil {
			return fmt.Errorf("render: strip %d: %w", s, err)
		}
	}
	return nil
}

// initEncodeTbl builds the strip protocol table: each input byte expands
// bit by bit, most significant first, a 0 bit to 0b100 and a 1 bit to
// 0b110, packed into 24 bits written as 3 bytes.
func (r *Renderer) initEncodeTbl() {
	for v := 0; v < 256; v++ {
		out := uint32(0)
		for b := 7; b >= 0; b-- {
			out <<= 3
			if (v>>b)&1 == 1 {
				out |= 0b110
			} else {
				out |= 0b100
			}
		}
		r.encodeTbl[v] = out
	}
}

// initColorMap resolves the configured output order to internal channel
// indices (0=R, 1=G, 2=B).
func (r *Renderer) initColorMap(order string) error {
	if len(order) != 3 {
		return fmt.Errorf("render: color order %q must have 3 channels", order)
	}
	for i := 0; i < 3; i++ {
		switch order[i] {
		case 'R':
			r.colorMap[i] = 0
		case 'G':
			r.colorMap[i] = 1
		case 'B':
			r.colorMap[i] = 2
		default:
			return fmt.Errorf("render: invalid color order %q", order)
		}
	}
	return nil
}

// initGammaTbl builds the 256-entry correction curve
// out = round(255 * (in/255)^gamma).
func (r *Renderer) initGammaTbl(gamma float64) {
	for i := 0; i < 256; i++ {
		r.gammaTbl[i] = uint8(math.Pow(float64(i)/255.0, gamma)*255.0 + 0.5)
	}
}
