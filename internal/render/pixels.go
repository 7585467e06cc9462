package render

import "layerpaint/internal/layer"

// fillRGBA converts composited cell colors into opaque RGBA pixels in buf.
func fillRGBA(buf []byte, colors []layer.Color) {
	for i, c := range colors {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 0xff
	}
}

// highlightRGBA blends the brush footprint cells towards white so the cursor
// stays visible on any background. idx are row-major cell indices.
func highlightRGBA(buf []byte, idx []int) {
	for _, i := range idx {
		base := i * 4
		if base < 0 || base+3 >= len(buf) {
			continue
		}
		for ch := 0; ch < 3; ch++ {
			buf[base+ch] = uint8((int(buf[base+ch]) + 255) / 2)
		}
	}
}
