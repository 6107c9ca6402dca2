package mesh

import (
	"fmt"
	"math"

	"github.com/gofvm/gofvm/utils"
)

// FaceDirection identifies one of the four faces of a quadrilateral cell.
type FaceDirection int

const (
	Left FaceDirection = iota
	Bottom
	Right
	Top
)

var FaceDirections = [4]FaceDirection{Left, Bottom, Right, Top}

func (d FaceDirection) String() string {
	return []string{"Left", "Bottom", "Right", "Top"}[int(d)]
}

/*
Structured is the cell-level geometry of a structured quadrilateral grid
built from node coordinate matrices, typically the output of Transfinite.
It supplies the finite-volume scheme with everything it needs per face:
outward unit normals, face surface lengths, cell volumes and periodic
neighbour indexing in both directions.

Cells are indexed k = i + j*Kx with i running over xi and j over eta.
*/
type Structured struct {
	X, Y       utils.Matrix // node coordinates, NumXi x NumEta
	Kx, Ky     int          // cell counts per direction
	CentroidX  []float64
	CentroidY  []float64
	Volumes    []float64
	normals    [4][][2]float64
	surfaces   [4][]float64
	neighbours [4][]int
}

// NewStructured computes cell geometry from node coordinate grids. Both
// matrices must share their dimensions and describe at least one cell in each
// direction.
func NewStructured(X, Y utils.Matrix) (*Structured, error) {
	var (
		nxi, neta   = X.Dims()
		nxiY, netaY = Y.Dims()
	)
	if nxi != nxiY || neta != netaY {
		return nil, fmt.Errorf("coordinate grids disagree: %dx%d vs %dx%d",
			nxi, neta, nxiY, netaY)
	}
	if nxi < 2 || neta < 2 {
		return nil, fmt.Errorf("grid of %dx%d nodes has no cells", nxi, neta)
	}
	var (
		kx, ky = nxi - 1, neta - 1
		nCells = kx * ky
		m      = &Structured{
			X: X, Y: Y, Kx: kx, Ky: ky,
			CentroidX: make([]float64, nCells),
			CentroidY: make([]float64, nCells),
			Volumes:   make([]float64, nCells),
		}
	)
	for d := range m.normals {
		m.normals[d] = make([][2]float64, nCells)
		m.surfaces[d] = make([]float64, nCells)
		m.neighbours[d] = make([]int, nCells)
	}
	for j := 0; j < ky; j++ {
		for i := 0; i < kx; i++ {
			k := i + j*kx
			// Corners in counterclockwise order
			x00, y00 := X.At(i, j), Y.At(i, j)
			x10, y10 := X.At(i+1, j), Y.At(i+1, j)
			x11, y11 := X.At(i+1, j+1), Y.At(i+1, j+1)
			x01, y01 := X.At(i, j+1), Y.At(i, j+1)

			m.CentroidX[k] = 0.25 * (x00 + x10 + x11 + x01)
			m.CentroidY[k] = 0.25 * (y00 + y10 + y11 + y01)
			// Shoelace area of the quadrilateral
			m.Volumes[k] = 0.5 * math.Abs(
				x00*y10-x10*y00+
					x10*y11-x11*y10+
					x11*y01-x01*y11+
					x01*y00-x00*y01)

			m.setFace(Bottom, k, x00, y00, x10, y10)
			m.setFace(Right, k, x10, y10, x11, y11)
			m.setFace(Top, k, x11, y11, x01, y01)
			m.setFace(Left, k, x01, y01, x00, y00)

			m.neighbours[Left][k] = (i-1+kx)%kx + j*kx
			m.neighbours[Right][k] = (i+1)%kx + j*kx
			m.neighbours[Bottom][k] = i + ((j-1+ky)%ky)*kx
			m.neighbours[Top][k] = i + ((j+1)%ky)*kx
		}
	}
	return m, nil
}

// setFace stores the outward unit normal and length of the edge from (xa,ya)
// to (xb,yb), traversed counterclockwise around the cell.
func (m *Structured) setFace(d FaceDirection, k int, xa, ya, xb, yb float64) {
	var (
		dx, dy = xb - xa, yb - ya
		length = math.Sqrt(dx*dx + dy*dy)
	)
	if length == 0 {
		panic(fmt.Errorf("degenerate %s face on cell %d", d, k))
	}
	m.normals[d][k] = [2]float64{dy / length, -dx / length}
	m.surfaces[d][k] = length
}

func (m *Structured) NumCells() int { return m.Kx * m.Ky }

// Normals returns the per-cell outward unit normals for one face direction.
func (m *Structured) Normals(d FaceDirection) [][2]float64 { return m.normals[d] }

// Surfaces returns the per-cell face lengths for one face direction.
func (m *Structured) Surfaces(d FaceDirection) []float64 { return m.surfaces[d] }

// Neighbours returns the periodic neighbour cell index across each cell's
// face in the given direction.
func (m *Structured) Neighbours(d FaceDirection) []int { return m.neighbours[d] }
