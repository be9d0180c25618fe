package colour

import "math"

// pow25to7 is 25^7, a constant in the CIEDE2000 chroma correction.
const pow25to7 = 6103515625.0

// DeltaE76 is the original CIE76 colour difference: plain Euclidean distance
// in Lab. Used for k-means assignment and convergence, where only relative
// ordering matters.
func DeltaE76(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE00 is the CIEDE2000 colour difference. It corrects CIE76's known
// non-uniformities in the blue region and at low chroma. Used wherever a
// perceptual threshold is compared against, never inside the clustering
// inner loop.
func DeltaE00(lab1, lab2 Lab) float64 {
	c1 := math.Sqrt(lab1.A*lab1.A + lab1.B*lab1.B)
	c2 := math.Sqrt(lab2.A*lab2.A + lab2.B*lab2.B)
	cMean := (c1 + c2) / 2.0

	cMean7 := math.Pow(cMean, 7)
	g := 0.5 * (1.0 - math.Sqrt(cMean7/(cMean7+pow25to7)))

	a1p := (1.0 + g) * lab1.A
	a2p := (1.0 + g) * lab2.A

	c1p := math.Sqrt(a1p*a1p + lab1.B*lab1.B)
	c2p := math.Sqrt(a2p*a2p + lab2.B*lab2.B)

	h1p := hueAngle(lab1.B, a1p)
	h2p := hueAngle(lab2.B, a2p)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dHp := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2.0)

	lMean := (lab1.L + lab2.L) / 2.0
	cpMean := (c1p + c2p) / 2.0

	var hpMean float64
	switch {
	case c1p*c2p == 0:
		hpMean = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hpMean = (h1p + h2p) / 2.0
	case h1p+h2p < 360:
		hpMean = (h1p + h2p + 360) / 2.0
	default:
		hpMean = (h1p + h2p - 360) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(radians(hpMean-30)) +
		0.24*math.Cos(radians(2*hpMean)) +
		0.32*math.Cos(radians(3*hpMean+6)) -
		0.20*math.Cos(radians(4*hpMean-63))

	lMean50 := (lMean - 50) * (lMean - 50)
	sl := 1.0 + 0.015*lMean50/math.Sqrt(20.0+lMean50)
	sc := 1.0 + 0.045*cpMean
	sh := 1.0 + 0.015*cpMean*t

	cpMean7 := math.Pow(cpMean, 7)
	rc := 2.0 * math.Sqrt(cpMean7/(cpMean7+pow25to7))
	dTheta := 30.0 * math.Exp(-((hpMean-275.0)/25.0)*((hpMean-275.0)/25.0))
	rt := -math.Sin(radians(2*dTheta)) * rc

	lTerm := dLp / sl
	cTerm := dCp / sc
	hTerm := dHp / sh

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// hueAngle returns atan2(b, a) in degrees, normalised to [0, 360).
func hueAngle(b, a float64) float64 {
	if b == 0 && a == 0 {
		return 0
	}
	deg := math.Atan2(b, a) * 180.0 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
