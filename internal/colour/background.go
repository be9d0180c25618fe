package colour

// Background detection thresholds. Only the four border lines of the buffer
// are inspected; a border is considered uniform when at least 60% of its
// qualifying pixels sit within DeltaE00 6 of the border's mean Lab colour.
const (
	borderAlphaMin        = 200
	borderMinPixels       = 20
	borderUniformDeltaE   = 6.0
	borderUniformFraction = 0.6
	backgroundRemoveDelta = 8.0
)

// detectBackground inspects the border of the buffer and reports whether the
// image has a uniform background. When it does, the returned colour is the
// most frequent exact RGB triple among the border pixels, not the mean.
func detectBackground(buf *PixelBuffer) (RGB, bool) {
	border := borderPixels(buf)
	if len(border) < borderMinPixels {
		return RGB{}, false
	}

	labs := make([]Lab, len(border))
	var sum Lab
	for i, rgb := range border {
		labs[i] = RGBToLab(rgb)
		sum.L += labs[i].L
		sum.A += labs[i].A
		sum.B += labs[i].B
	}
	mean := Lab{
		L: sum.L / float64(len(labs)),
		A: sum.A / float64(len(labs)),
		B: sum.B / float64(len(labs)),
	}

	within := 0
	for _, lab := range labs {
		if DeltaE00(lab, mean) <= borderUniformDeltaE {
			within++
		}
	}
	if float64(within)/float64(len(border)) < borderUniformFraction {
		return RGB{}, false
	}

	return mostFrequentRGB(border), true
}

// borderPixels collects the opaque pixels of the top row, bottom row, left
// column and right column. Corners are visited once per line they belong to;
// duplicate corner counts do not affect the uniformity statistics enough to
// matter.
func borderPixels(buf *PixelBuffer) []RGB {
	if buf.Width == 0 || buf.Height == 0 {
		return nil
	}

	pixels := make([]RGB, 0, 2*(buf.Width+buf.Height))
	collect := func(x, y int) {
		r, g, b, a := buf.at(x, y)
		if a < borderAlphaMin {
			return
		}
		pixels = append(pixels, RGB{R: r, G: g, B: b})
	}

	for x := 0; x < buf.Width; x++ {
		collect(x, 0)
		if buf.Height > 1 {
			collect(x, buf.Height-1)
		}
	}
	for y := 0; y < buf.Height; y++ {
		collect(0, y)
		if buf.Width > 1 {
			collect(buf.Width-1, y)
		}
	}
	return pixels
}

// mostFrequentRGB returns the most common exact triple, ties broken by the
// lexicographically smallest colour.
func mostFrequentRGB(pixels []RGB) RGB {
	counts := make(map[RGB]int, len(pixels))
	for _, rgb := range pixels {
		counts[rgb]++
	}

	var best RGB
	bestCount := -1
	for rgb, count := range counts {
		if count > bestCount || (count == bestCount && rgb.less(best)) {
			best = rgb
			bestCount = count
		}
	}
	return best
}

// removeBackground filters out every sample within DeltaE00 8 of the
// detected background colour.
func removeBackground(samples []RGB, background RGB) []RGB {
	bgLab := RGBToLab(background)
	kept := make([]RGB, 0, len(samples))
	for _, rgb := range samples {
		if DeltaE00(RGBToLab(rgb), bgLab) <= backgroundRemoveDelta {
			continue
		}
		kept = append(kept, rgb)
	}
	return kept
}
