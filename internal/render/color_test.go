package render_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Contomo/Infinity-Polyhedra/internal/render"
)

var TestRainbowBandStarts = []struct {
	Hue     uint8
	R, G, B uint8
}{
	{0x00, 255, 0, 0},   // red
	{0x20, 171, 85, 0},  // orange
	{0x40, 171, 170, 0}, // yellow
	{0x60, 0, 255, 0},   // green
	{0x80, 0, 171, 85},  // aqua
	{0xA0, 0, 0, 255},   // blue
	{0xC0, 85, 0, 171},  // purple
	{0xE0, 170, 0, 85},  // pink
}

func TestRainbowBands(t *testing.T) {
	for k, v := range TestRainbowBandStarts {
		t.Run("Band"+strconv.Itoa(k), func(t *testing.T) {
			r, g, b := render.HSVToRGBRainbow(v.Hue, 255, 255)
			assert.Equal(t, v.R, r)
			assert.Equal(t, v.G, g)
			assert.Equal(t, v.B, b)
		})
	}
}

func TestRainbowSatValExtremes(t *testing.T) {
	r, g, b := render.HSVToRGBRainbow(100, 0, 255)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b}, "zero saturation is white")

	r, g, b = render.HSVToRGBRainbow(100, 255, 0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b}, "zero value is black")
}

func TestRainbowVideoScalingKeepsChannelsAlive(t *testing.T) {
	// any channel lit at full value must stay lit when dimmed
	for _, hue := range []uint8{0, 0x20, 0x40, 0x60, 0x80, 0xA0, 0xC0, 0xE0} {
		fr, fg, fb := render.HSVToRGBRainbow(hue, 255, 255)
		dr, dg, db := render.HSVToRGBRainbow(hue, 255, 1)
		if fr > 0 {
			assert.Positive(t, dr, "hue %d red", hue)
		}
		if fg > 0 {
			assert.Positive(t, dg, "hue %d green", hue)
		}
		if fb > 0 {
			assert.Positive(t, db, "hue %d blue", hue)
		}
	}
}

func TestHSVRegions(t *testing.T) {
	r, g, b := render.HSVToRGB(0, 255, 255)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	r, g, b = render.HSVToRGB(0, 0, 77)
	assert.Equal(t, [3]uint8{77, 77, 77}, [3]uint8{r, g, b}, "zero saturation is gray")

	// each region boundary keeps one channel at full value
	for hue := 0; hue < 256; hue += 43 {
		r, g, b = render.HSVToRGB(uint8(hue), 255, 255)
		max := r
		if g > max {
			max = g
		}
		if b > max {
			max = b
		}
		assert.Equal(t, uint8(255), max, "hue %d", hue)
	}
}

func TestHueDiffShortestPath(t *testing.T) {
	assert.Equal(t, 10, render.HueDiff(0, 10))
	assert.Equal(t, -10, render.HueDiff(10, 0))
	assert.Equal(t, 11, render.HueDiff(250, 5))
	assert.Equal(t, -11, render.HueDiff(5, 250))
	assert.Equal(t, 128, render.HueDiff(0, 128))
	assert.Equal(t, 0, render.HueDiff(42, 42))
}
