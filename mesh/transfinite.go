package mesh

import (
	"github.com/gofvm/gofvm/utils"
)

/*
	Transfinite generates a structured grid of physical coordinates inside four
	boundary curves by Coons-patch interpolation:

		P(xi,eta) = (1-xi) L(eta) + xi R(eta) + (1-eta) B(xi) + eta T(xi)
		          - (1-xi)(1-eta) B(0) - (1-xi) eta T(0)
		          - xi (1-eta) B(1) - xi eta T(1)

	The subtracted terms remove the corner contributions counted twice by the
	two linear blends. The construction reproduces the four curves exactly on
	the grid edges.

	The returned matrices have shape numXi x numEta and are freshly allocated;
	the input curves are never mutated.
*/
// uniformParam samples [0,1] with n points, degenerating to 0 for n == 1.
func uniformParam(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func Transfinite(left, bottom, right, top BoundaryCurve, numXi, numEta int) (X, Y utils.Matrix) {
	var (
		xb0, yb0 = bottom(0)
		xb1, yb1 = bottom(1)
		xt0, yt0 = top(0)
		xt1, yt1 = top(1)
	)
	X, Y = utils.NewMatrix(numXi, numEta), utils.NewMatrix(numXi, numEta)
	for i := 0; i < numXi; i++ {
		xi := uniformParam(i, numXi)
		xb, yb := bottom(xi)
		xt, yt := top(xi)
		for j := 0; j < numEta; j++ {
			eta := uniformParam(j, numEta)
			xl, yl := left(eta)
			xr, yr := right(eta)

			X.Set(i, j,
				(1-xi)*xl+xi*xr+
					(1-eta)*xb+eta*xt-
					(1-xi)*(1-eta)*xb0-(1-xi)*eta*xt0-
					xi*(1-eta)*xb1-xi*eta*xt1)
			Y.Set(i, j,
				(1-xi)*yl+xi*yr+
					(1-eta)*yb+eta*yt-
					(1-xi)*(1-eta)*yb0-(1-xi)*eta*yt0-
					xi*(1-eta)*yb1-xi*eta*yt1)
		}
	}
	return
}
