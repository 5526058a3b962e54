package render

import "math/rand"

// scale8 scales i by frac/256.
func scale8(i, frac uint8) uint8 {
	return uint8((uint16(i) * uint16(frac)) >> 8)
}

// scale8video is like scale8 but never drops a nonzero input to zero.
func scale8video(i, frac uint8) uint8 {
	if i == 0 {
		return 0
	}
	v := uint8(uint16(i) * uint16(frac) >> 8)
	if frac != 0 {
		v++
	}
	return v
}

// HSVToRGB converts hue, saturation and value (all 0..255) to RGB using
// the classic 6-region piecewise-linear spectrum. Hue regions are 43
// counts wide; the result is fully saturated primaries at region
// boundaries.
func HSVToRGB(hue, sat, val uint8) (r, g, b uint8) {
	if sat == 0 {
		return val, val, val
	}

	region := hue / 43
	remainder := (hue - region*43) * 6

	p := scale8(val, 255-sat)
	q := scale8(val, 255-scale8(sat, remainder))
	t := scale8(val, 255-scale8(sat, 255-remainder))

	switch region {
	case 0:
		return val, t, p
	case 1:
		return q, val, p
	case 2:
		return p, val, t
	case 3:
		return p, q, val
	case 4:
		return t, p, val
	default:
		return val, p, q
	}
}

// HSVToRGBRainbow converts HSV to RGB with a visually balanced rainbow:
// the hue circle is split into 8 bands of 32 counts so yellow gets as
// much room as the primaries. Saturation and value use video scaling, so
// nonzero inputs never collapse to black.
func HSVToRGBRainbow(hue, sat, val uint8) (r, g, b uint8) {
	offset8 := (hue & 0x1F) << 3
	third := scale8(offset8, 85)

	if hue&0x80 == 0 {
		if hue&0x40 == 0 {
			if hue&0x20 == 0 {
				// red -> orange
				r, g, b = 255-third, third, 0
			} else {
				// orange -> yellow
				r, g, b = 171, 85+third, 0
			}
		} else {
			if hue&0x20 == 0 {
				// yellow -> green
				twothird := scale8(offset8, 170)
				r, g, b = 171-twothird, 170+third, 0
			} else {
				// green -> aqua
				r, g, b = 0, 255-third, third
			}
		}
	} else {
		if hue&0x40 == 0 {
			if hue&0x20 == 0 {
				// aqua -> blue
				twothird := scale8(offset8, 170)
				r, g, b = 0, 171-twothird, 85+twothird
			} else {
				// blue -> purple
				r, g, b = third, 0, 255-third
			}
		} else {
			if hue&0x20 == 0 {
				// purple -> pink
				r, g, b = 85+third, 0, 171-third
			} else {
				// pink -> red
				r, g, b = 170+third, 0, 85-third
			}
		}
	}

	if sat != 255 {
		if sat == 0 {
			r, g, b = 255, 255, 255
		} else {
			desat := scale8video(255-sat, 255-sat)
			satscale := 255 - desat
			if satscale != 0 {
				if r != 0 {
					r = scale8video(r, satscale)
				}
				if g != 0 {
					g = scale8video(g, satscale)
				}
				if b != 0 {
					b = scale8video(b, satscale)
				}
			} else {
				r, g, b = 0, 0, 0
			}
			r += desat
			g += desat
			b += desat
		}
	}

	if val != 255 {
		if val == 0 {
			return 0, 0, 0
		}
		if r != 0 {
			r = scale8video(r, val)
		}
		if g != 0 {
			g = scale8video(g, val)
		}
		if b != 0 {
			b = scale8video(b, val)
		}
	}
	return r, g, b
}

// HueDiff returns the signed shortest distance from hue a to hue b on the
// 256-count circle, in the range [-128, 127].
func HueDiff(a, b uint8) int {
	d := int(b) - int(a)
	if d > 128 {
		d -= 256
	} else if d < -128 {
		d += 256
	}
	return d
}

// RandomHue picks a uniformly random hue.
func RandomHue() uint8 {
	return uint8(rand.Intn(256))
}
