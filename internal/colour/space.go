// Package colour implements the dominant-colour extraction pipeline:
// sampling, background suppression, CIE Lab conversion, adaptive k-means
// clustering and palette selection. All perceptual distance work happens in
// Lab under the D65 illuminant.
package colour

import "math"

// D65 reference white in XYZ.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// Lab is a point in CIE L*a*b* space. L is lightness in [0, 100]; A and B
// are the chromatic axes, unbounded in principle but roughly [-128, 127] for
// sRGB input.
type Lab struct {
	L float64
	A float64
	B float64
}

// srgbToLinear undoes the sRGB transfer curve for a channel in [0, 1].
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB applies the sRGB transfer curve to a linear channel in [0, 1].
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// labF is the cube-root compression used by the XYZ to Lab mapping, with the
// CIE linear segment below the 216/24389 threshold.
func labF(t float64) float64 {
	const threshold = 216.0 / 24389.0
	if t > threshold {
		return math.Cbrt(t)
	}
	return (841.0/108.0)*t + 4.0/29.0
}

// labFInv inverts labF.
func labFInv(t float64) float64 {
	const threshold = 6.0 / 29.0
	if t > threshold {
		return t * t * t
	}
	return (108.0 / 841.0) * (t - 4.0/29.0)
}

// RGBToLab converts an 8-bit sRGB triple to CIE Lab (D65).
func RGBToLab(rgb RGB) Lab {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	// sRGB D65 matrix.
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LabToRGB converts CIE Lab back to 8-bit sRGB, clamping out-of-gamut
// values channel-wise.
func LabToRGB(lab Lab) RGB {
	fy := (lab.L + 16.0) / 116.0
	fx := fy + lab.A/500.0
	fz := fy - lab.B/200.0

	x := whiteX * labFInv(fx)
	y := whiteY * labFInv(fy)
	z := whiteZ * labFInv(fz)

	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return RGB{
		R: encodeChannel(r),
		G: encodeChannel(g),
		B: encodeChannel(b),
	}
}

// encodeChannel gamma-encodes a linear channel and quantizes it to 8 bits.
func encodeChannel(c float64) uint8 {
	v := linearToSRGB(c)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255.0))
}
