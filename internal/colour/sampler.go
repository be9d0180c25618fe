package colour

// Sampling filter thresholds. Near-transparent pixels carry little colour
// information; near-white and near-black pixels are usually paper, borders
// or shadows rather than subject colours.
const (
	sampleAlphaMin = 160
	nearWhiteMin   = 250
	nearBlackMax   = 10
)

// sampleStride picks the grid step from the pixel count. Larger inputs get a
// wider stride so the sample set stays roughly constant in size.
func sampleStride(pixels int) int {
	switch {
	case pixels > 800_000:
		return 6
	case pixels > 400_000:
		return 4
	case pixels > 150_000:
		return 3
	default:
		return 2
	}
}

// samplePixels walks the buffer at an adaptive stride on both axes and
// collects the RGB triples of pixels that pass the alpha and extreme-neutral
// filters. Returns ErrEmptyInput when nothing survives.
func samplePixels(buf *PixelBuffer) ([]RGB, error) {
	stride := sampleStride(buf.pixelCount())

	samples := make([]RGB, 0, buf.pixelCount()/(stride*stride)+1)
	for y := 0; y < buf.Height; y += stride {
		for x := 0; x < buf.Width; x += stride {
			r, g, b, a := buf.at(x, y)
			if a < sampleAlphaMin {
				continue
			}
			if r > nearWhiteMin && g > nearWhiteMin && b > nearWhiteMin {
				continue
			}
			if r < nearBlackMax && g < nearBlackMax && b < nearBlackMax {
				continue
			}
			samples = append(samples, RGB{R: r, G: g, B: b})
		}
	}

	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	return samples, nil
}
