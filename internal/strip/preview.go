package strip

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

// Preview renders the logical framebuffer somewhere visible: an NRZ LED
// device when an SPI port exists, or an ANSI terminal strip when it does
// not. It works on raw framebuffer RGB, before gamma and bit encoding, so
// it shows what the animation wrote rather than the wire bytes.
type Preview struct {
	drawer display.Drawer
	hw     bool
}

// NewPreview builds a preview for numPixels pixels. With no SPI port
// available it falls back to the console.
func NewPreview(numPixels int) *Preview {
	port, err := spireg.Open("")
	if err != nil {
		return &Preview{drawer: screen.New(numPixels)}
	}
	d, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: numPixels,
		Channels:  3,
		Freq:      2500 * physic.KiloHertz,
	})
	if err != nil {
		_ = port.Close()
		return &Preview{drawer: screen.New(numPixels)}
	}
	return &Preview{drawer: d, hw: true}
}

// Hardware reports whether the preview found a real output device.
func (p *Preview) Hardware() bool { return p.hw }

// Draw shows one frame. rgb holds packed R,G,B triples, one per pixel.
func (p *Preview) Draw(rgb []byte) error {
	n := len(rgb) / 3
	im := image.NewNRGBA(image.Rect(0, 0, n, 1))
	for x := 0; x < n; x++ {
		im.SetNRGBA(x, 0, color.NRGBA{
			R: rgb[x*3+0],
			G: rgb[x*3+1],
			B: rgb[x*3+2],
			A: 255,
		})
	}
	return p.drawer.Draw(p.drawer.Bounds(), im, image.Point{})
}
