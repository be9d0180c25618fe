package colour

import (
	"math/rand"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Pipeline runs the full extraction: sampling, background suppression,
// quantization, clustering, merging and palette selection. It is synchronous
// and single-threaded once invoked; each call owns its buffers exclusively
// and nothing persists between calls.
type Pipeline struct {
	rng    *rand.Rand
	logger hclog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRand injects the random source used by k-means++ seeding. Pass a
// seeded generator for reproducible palettes; the default source is
// time-seeded and output will vary between runs on the same image.
func WithRand(rng *rand.Rand) Option {
	return func(p *Pipeline) { p.rng = rng }
}

// WithLogger attaches a logger for per-stage debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// NewPipeline creates a Pipeline with the given options.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract produces the dominant-colour palette for the buffer, ordered by
// descending cluster population. On success the palette has at least one
// entry and every entry's RGB equals some sampled pixel's exact value. Any
// stage failure aborts the whole run; no partial palette is returned.
func (p *Pipeline) Extract(buf *PixelBuffer) (*Palette, error) {
	if buf == nil || len(buf.Pix) < buf.pixelCount()*4 {
		return nil, ErrDecodeUnavailable
	}

	samples, err := samplePixels(buf)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("sampled pixels", "count", len(samples), "stride", sampleStride(buf.pixelCount()))

	if background, ok := detectBackground(buf); ok {
		before := len(samples)
		samples = removeBackground(samples, background)
		p.logger.Debug("background removed", "colour", background.Hex(), "dropped", before-len(samples))
	} else {
		p.logger.Debug("no uniform background")
	}

	unique, err := dedupColors(samples)
	if err != nil {
		return nil, err
	}

	points := make([]Lab, len(unique))
	for i, rgb := range unique {
		points[i] = RGBToLab(rgb)
	}

	k := clusterCount(len(points))
	centroids := runKMeans(points, k, p.rng)
	p.logger.Debug("clustered", "unique", len(unique), "k", k)

	labelled := make([]sample, len(samples))
	for i, rgb := range samples {
		labelled[i] = sample{rgb: rgb, lab: RGBToLab(rgb)}
	}

	clusters := buildClusters(labelled, centroids)
	clusters = mergeClusters(clusters)
	clusters = applyNoiseFloor(clusters)
	p.logger.Debug("merged clusters", "count", len(clusters))

	return NewPalette(selectEntries(clusters)), nil
}

// Result is the outcome delivered by ExtractAsync.
type Result struct {
	Palette *Palette
	Err     error
}

// ExtractAsync runs Extract on its own goroutine and delivers the outcome on
// the returned channel. There is no cancellation: once started the run goes
// to completion and a caller may only ignore the result. The channel is
// buffered so an abandoned result does not leak the goroutine.
func (p *Pipeline) ExtractAsync(buf *PixelBuffer) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		palette, err := p.Extract(buf)
		done <- Result{Palette: palette, Err: err}
	}()
	return done
}

// selectEntries picks each cluster's representative colour and orders the
// entries by descending population.
func selectEntries(clusters []cluster) []Entry {
	total := 0
	for _, c := range clusters {
		total += len(c.members)
	}

	entries := make([]Entry, 0, len(clusters))
	for _, c := range clusters {
		rgb := representativeRGB(c.members)
		entries = append(entries, Entry{
			RGB:        rgb,
			Hex:        rgb.Hex(),
			Population: len(c.members),
			Share:      float64(len(c.members)) / float64(total),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Population > entries[j].Population
	})
	return entries
}

// representativeRGB returns the most frequent exact original triple among
// the cluster's members, ties broken by the lexicographically smallest
// colour.
func representativeRGB(members []sample) RGB {
	pixels := make([]RGB, len(members))
	for i, m := range members {
		pixels[i] = m.rgb
	}
	return mostFrequentRGB(pixels)
}
