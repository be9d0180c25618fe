package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolour terminal previews.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns a solid ANSI-coloured block for a colour.
// Width specifies how many characters wide the block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// FormatEntryWithPreview formats a palette entry with its preview block, hex
// code and share.
func FormatEntryWithPreview(e Entry, width int) string {
	return fmt.Sprintf("%s %s %5.1f%%", ColourPreview(e.RGB, width), e.Hex, e.Share*100)
}
