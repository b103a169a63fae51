package mapgen

import "math"

// Template math. Bias functions take the per-tile jitter draw as an explicit
// parameter so the geometry is testable without a random source.

// ellipticFactor is a squared-distance-like measure from the ellipse with
// semi-axes a (longitude) and b (latitude): 0 at the center, 1 near the
// ellipse boundary, growing outside. The cross term squares off the
// diagonals so continents read less like perfect ellipses.
func ellipticFactor(longitude, latitude, a, b float64) float64 {
	x := math.Abs(longitude)
	y := math.Abs(latitude)
	return (x*x)/(a*a) + (y*y)/(b*b) + (x*y)/(a*b)
}

// ellipticBias maps an elliptic factor to an elevation bias: 0.3 inside the
// ellipse, decaying steeply outside it.
func ellipticBias(factor, jitter float64) float64 {
	return math.Min(0.3, 1-(5*factor*factor+jitter)/3)
}

// separatorBias maps a distance-from-splitting-line factor to an elevation
// bias, capped at 0.2. Tiles on the splitting line (factor 0) end up near -1.
func separatorBias(factor, exponent, jitter float64) float64 {
	return math.Min(0.2, -1+(5*math.Pow(factor, exponent)+jitter)/3)
}

// cornersBias is the inverted variant used by fourCorners: bias grows with
// factor, so land collects where the factor is large.
func cornersBias(factor, jitter float64) float64 {
	d := 1 - factor
	return 1 - (5*d*d+jitter)/3
}

// foldAtSeam mirrors a separator factor across the world seam so wrapped
// maps get the same water separation at the seam as at the map center.
// The gain constants (1.1 and 1.5) are tuned per template and deliberately
// not unified.
func foldAtSeam(factor, longitude, maxLongitude, gain float64) float64 {
	return math.Min(factor, (maxLongitude-math.Abs(longitude))/maxLongitude) * gain
}
