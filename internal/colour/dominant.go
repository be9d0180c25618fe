package colour

import (
	"image"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
)

// DominantExtractor wraps the dominantcolor library as an alternative,
// fixed-count algorithm. Unlike the kmeans pipeline it does not guarantee
// that emitted colours are exact pixel values.
type DominantExtractor struct {
	count int
}

// NewDominantExtractor creates a DominantExtractor emitting at most count
// colours.
func NewDominantExtractor(count int) *DominantExtractor {
	if count < 1 {
		count = 1
	}
	return &DominantExtractor{count: count}
}

// Extract ranks the buffer's colours by weight and returns the top entries.
func (e *DominantExtractor) Extract(buf *PixelBuffer) (*Palette, error) {
	if buf == nil || len(buf.Pix) < buf.pixelCount()*4 {
		return nil, ErrDecodeUnavailable
	}

	img := &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * 4,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}

	weighted := dominantcolor.FindWeight(img, e.count)
	if len(weighted) == 0 {
		return nil, ErrNoColorsRemain
	}

	totalWeight := 0.0
	for _, c := range weighted {
		if c.Weight > 0 {
			totalWeight += c.Weight
		}
	}
	if totalWeight == 0 {
		totalWeight = 1
	}

	entries := make([]Entry, 0, len(weighted))
	for _, c := range weighted {
		share := c.Weight / totalWeight
		if share < 0 {
			share = 0
		}
		rgb := RGB{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B}
		entries = append(entries, Entry{
			RGB:        rgb,
			Hex:        rgb.Hex(),
			Population: int(math.Round(share * float64(buf.pixelCount()))),
			Share:      share,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Population > entries[j].Population
	})
	if len(entries) > e.count {
		entries = entries[:e.count]
	}

	return NewPalette(entries), nil
}
