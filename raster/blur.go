package raster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"math"
)

// gaussianKernel returns normalised 1D Gaussian weights spanning radius
// pixels either side of the centre, with sigma at half the radius
func gaussianKernel(radius float64) []float64 {

	r := int(math.Ceil(radius))
	if r < 1 {
		return []float64{1}
	}

	dist := distuv.Normal{Mu: 0, Sigma: math.Max(radius/2, 0.5)}
	kernel := make([]float64, 2*r+1)

	for i := range kernel {
		kernel[i] = dist.Prob(float64(i - r))
	}

	floats.Scale(1/floats.Sum(kernel), kernel)

	return kernel
}

// blurWeights applies a separable blur to a w x h grid of weights.  Values
// beyond the grid are treated as zero.
func blurWeights(src []float64, w, h int, kernel []float64) []float64 {

	r := len(kernel) / 2
	tmp := make([]float64, len(src))
	out := make([]float64, len(src))

	// horizontal pass
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var sum float64
			for k, kw := range kernel {
				px := x + k - r
				if px < 0 || px >= w {
					continue
				}
				sum += src[row+px] * kw
			}
			tmp[row+x] = sum
		}
	}

	// vertical pass
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k, kw := range kernel {
				py := y + k - r
				if py < 0 || py >= h {
					continue
				}
				sum += tmp[py*w+x] * kw
			}
			out[y*w+x] = sum
		}
	}

	return out
}
