// Pigment - dominant colour extraction for images
//
// Pigment samples an image, suppresses uniform backgrounds and clusters the
// remaining colours perceptually to produce the palette a person would call
// the image's dominant colours.
package main

import (
	"pigment/internal/cli"
)

func main() {
	cli.Execute()
}
