package colour

import (
	"errors"
	"testing"
)

func TestDominantExtractorNilBuffer(t *testing.T) {
	e := NewDominantExtractor(4)
	if _, err := e.Extract(nil); !errors.Is(err, ErrDecodeUnavailable) {
		t.Errorf("Extract(nil) error = %v, want ErrDecodeUnavailable", err)
	}
}

func TestDominantExtractorTwoColours(t *testing.T) {
	buf := solidBuffer(64, 64, 200, 30, 30, 255)
	fillRect(buf, 32, 0, 64, 64, 30, 60, 200)

	palette, err := NewDominantExtractor(4).Extract(buf)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if palette.Len() == 0 {
		t.Fatal("empty palette")
	}
	if palette.Len() > 4 {
		t.Errorf("got %d entries, want at most 4", palette.Len())
	}
	for i := 1; i < palette.Len(); i++ {
		if palette.Entries[i].Population > palette.Entries[i-1].Population {
			t.Errorf("entries not ordered by population: %+v", palette.Entries)
		}
	}
}

func TestDominantExtractorCountClamp(t *testing.T) {
	e := NewDominantExtractor(0)
	buf := solidBuffer(32, 32, 60, 120, 180, 255)

	palette, err := e.Extract(buf)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if palette.Len() != 1 {
		t.Errorf("got %d entries, want 1", palette.Len())
	}
}
