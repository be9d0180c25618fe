package colour

// quantStep is the channel rounding granularity applied before
// deduplication. Coarse quantization bounds the clustering cost without
// visibly changing which colours dominate.
const quantStep = 8

// quantizeChannel rounds one channel to the nearest multiple of quantStep,
// clamped to [0, 255].
func quantizeChannel(c uint8) uint8 {
	q := (int(c) + quantStep/2) / quantStep * quantStep
	if q > 255 {
		q = 255
	}
	return uint8(q)
}

// quantize rounds a triple channel-wise to the quantization grid.
func quantize(rgb RGB) RGB {
	return RGB{
		R: quantizeChannel(rgb.R),
		G: quantizeChannel(rgb.G),
		B: quantizeChannel(rgb.B),
	}
}

// dedupColors reduces the samples to one representative per quantization
// bucket. The representative is the quantized value itself, not any original
// sample. Returns ErrNoColorsRemain when the input is empty.
func dedupColors(samples []RGB) ([]RGB, error) {
	seen := make(map[RGB]bool, len(samples))
	unique := make([]RGB, 0, 64)
	for _, rgb := range samples {
		q := quantize(rgb)
		if seen[q] {
			continue
		}
		seen[q] = true
		unique = append(unique, q)
	}

	if len(unique) == 0 {
		return nil, ErrNoColorsRemain
	}
	return unique, nil
}
