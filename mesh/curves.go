package mesh

import (
	"math"
)

// BoundaryCurve is a parametrized boundary map from [0,1] to physical
// coordinates. The four curves bounding a patch must agree at the corners;
// the generator does not validate that precondition.
type BoundaryCurve func(s float64) (x, y float64)

// NewLine returns the straight segment from (x0,y0) to (x1,y1).
func NewLine(x0, y0, x1, y1 float64) BoundaryCurve {
	return func(s float64) (x, y float64) {
		x = x0 + s*(x1-x0)
		y = y0 + s*(y1-y0)
		return
	}
}

// NewCircleArc returns the arc of a circle centered at (xc,yc), swept from
// angle theta0 to theta1 (radians) as the parameter goes 0 to 1.
func NewCircleArc(xc, yc, radius, theta0, theta1 float64) BoundaryCurve {
	return func(s float64) (x, y float64) {
		theta := theta0 + s*(theta1-theta0)
		x = xc + radius*math.Cos(theta)
		y = yc + radius*math.Sin(theta)
		return
	}
}
