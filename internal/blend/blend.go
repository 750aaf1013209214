// Package blend implements straight-alpha source-over compositing on RGBA8
// pixel rows.
//
// Pixels are 4 bytes, R G B A, not premultiplied (the layout of
// image.NRGBA). Source pixels with zero alpha are skipped entirely, so
// fully transparent regions of a layer never touch the destination.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Over composites a single source pixel over a destination pixel in place.
// Both slices must hold at least 4 bytes.
func Over(dst, src []byte) {
	sa := src[3]
	switch sa {
	case 0:
		return
	case 255:
		copy(dst[:4], src[:4])
		return
	}

	fa := float32(sa) / 255
	ba := float32(dst[3]) / 255
	inv := 1 - fa

	outA := fa + ba*inv
	if outA == 0 {
		return
	}

	dst[0] = channel(src[0], dst[0], fa, ba, inv, outA)
	dst[1] = channel(src[1], dst[1], fa, ba, inv, outA)
	dst[2] = channel(src[2], dst[2], fa, ba, inv, outA)
	dst[3] = toByte(outA)
}

// OverRow composites a row of source pixels over a row of destination
// pixels. Only min(len(dst), len(src))/4 pixels are processed.
func OverRow(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		if src[i+3] == 0 {
			continue
		}
		Over(dst[i:i+4], src[i:i+4])
	}
}

// channel computes one straight-alpha color channel of source-over.
func channel(s, d byte, fa, ba, inv, outA float32) byte {
	fs := float32(s) / 255
	fd := float32(d) / 255
	return toByte((fs*fa + fd*ba*inv) / outA)
}

// toByte maps [0,1] to [0,255] with rounding and clamping.
func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
