package colour

import "fmt"

// Extractor produces a palette from a decoded pixel buffer.
type Extractor interface {
	Extract(buf *PixelBuffer) (*Palette, error)
}

// Algorithm selects the extraction strategy.
type Algorithm string

const (
	// AlgorithmKMeans is the perceptual pipeline: Lab-space adaptive-k
	// k-means++ with background suppression. The palette size adapts to the
	// image; every emitted colour is an exact sampled pixel value.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDominant ranks colours by frequency-weighted buckets using
	// the dominantcolor library. Faster and fixed-count, but emitted colours
	// are bucket averages rather than exact pixel values.
	AlgorithmDominant Algorithm = "dominant"
)

// ValidAlgorithms returns the recognised algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans, AlgorithmDominant}
}

// IsValidAlgorithm checks whether the given algorithm name is recognised.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// ExtractorConfig holds extraction settings shared by the CLI.
type ExtractorConfig struct {
	Algorithm Algorithm

	// ColorCount bounds the palette size for AlgorithmDominant. The kmeans
	// pipeline sizes its palette adaptively and ignores this.
	ColorCount int
}

// DefaultExtractorConfig returns the default extraction settings.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmKMeans,
		ColorCount: 8,
	}
}

// Validate checks the configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s (valid algorithms: %v)", c.Algorithm, ValidAlgorithms())
	}
	if c.ColorCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.ColorCount)
	}
	if c.ColorCount > 64 {
		return fmt.Errorf("colour count too large: %d (maximum: 64)", c.ColorCount)
	}
	return nil
}

// NewExtractor creates an Extractor for the configured algorithm. Options
// apply to the kmeans pipeline only.
func NewExtractor(config ExtractorConfig, opts ...Option) (Extractor, error) {
	switch config.Algorithm {
	case AlgorithmKMeans:
		return NewPipeline(opts...), nil
	case AlgorithmDominant:
		return NewDominantExtractor(config.ColorCount), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", config.Algorithm, ValidAlgorithms())
	}
}
