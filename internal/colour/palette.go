package colour

import (
	"encoding/json"
	"fmt"
)

// RGB is an 8-bit-per-channel sRGB triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the colour in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as an uppercase hex string (e.g. "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// less orders triples lexicographically by (R, G, B). Used as the
// deterministic tie-break when two colours are equally frequent.
func (rgb RGB) less(other RGB) bool {
	if rgb.R != other.R {
		return rgb.R < other.R
	}
	if rgb.G != other.G {
		return rgb.G < other.G
	}
	return rgb.B < other.B
}

// Entry is one palette colour. RGB is always an exact pixel value that
// occurred in the sampled image, never an average.
type Entry struct {
	RGB        RGB     `json:"rgb"`
	Hex        string  `json:"hex"`
	Population int     `json:"population"`
	Share      float64 `json:"share"`
}

// Palette is an ordered list of extracted colours, most dominant first.
type Palette struct {
	Entries []Entry
}

// NewPalette creates a Palette from the given entries.
func NewPalette(entries []Entry) *Palette {
	return &Palette{Entries: entries}
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.Entries)
}

// ToHex returns the entries as uppercase hex strings, dominance order.
func (p *Palette) ToHex() []string {
	hexes := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		hexes[i] = e.Hex
	}
	return hexes
}

// paletteJSON is the JSON output envelope.
type paletteJSON struct {
	Count   int     `json:"count"`
	Entries []Entry `json:"entries"`
}

// ToJSON serialises the palette with entry counts and shares.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(paletteJSON{
		Count:   len(p.Entries),
		Entries: p.Entries,
	}, "", "  ")
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	if len(p.Entries) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Entries))
	for i, e := range p.Entries {
		result += fmt.Sprintf("  %2d: %s (%s) %.1f%%\n", i+1, e.Hex, e.RGB.String(), e.Share*100)
	}
	return result
}
