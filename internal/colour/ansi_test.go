package colour

import (
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	got := ColourPreview(RGB{200, 30, 30}, 4)
	if !strings.HasPrefix(got, "\033[48;2;200;30;30m") {
		t.Errorf("preview %q missing background escape", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("preview %q missing reset", got)
	}
	if !strings.Contains(got, "    ") {
		t.Errorf("preview %q missing 4-wide block", got)
	}
}

func TestColourPreviewDefaultWidth(t *testing.T) {
	got := ColourPreview(RGB{0, 0, 0}, 0)
	if !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("preview %q does not use the default width", got)
	}
}

func TestFormatEntryWithPreview(t *testing.T) {
	e := Entry{RGB: RGB{200, 30, 30}, Hex: "#C81E1E", Share: 0.625}
	got := FormatEntryWithPreview(e, 2)
	if !strings.Contains(got, "#C81E1E") || !strings.Contains(got, "62.5%") {
		t.Errorf("formatted entry = %q", got)
	}
}
