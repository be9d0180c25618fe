package colour

import "errors"

// Pipeline failures. All are terminal for the invocation: no retries, no
// partial palettes.
var (
	// ErrDecodeUnavailable indicates the pixel buffer could not be obtained
	// from the source image. It originates in the image loading boundary and
	// is surfaced as-is.
	ErrDecodeUnavailable = errors.New("pixel buffer unavailable")

	// ErrEmptyInput indicates sampling produced zero usable pixels, e.g. a
	// fully transparent or fully near-white/near-black image.
	ErrEmptyInput = errors.New("no usable pixels in image")

	// ErrNoColorsRemain indicates deduplication produced zero unique colours
	// after background and extreme-neutral filtering.
	ErrNoColorsRemain = errors.New("no colours remain after filtering")
)
