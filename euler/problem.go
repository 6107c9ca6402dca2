package euler

import (
	"github.com/gofvm/gofvm/state"
)

// Problem carries the EOS closure and supplies the conservative flux tensor
// of the 2D Euler system.
type Problem struct {
	EOS EOS
}

func NewProblem(eos EOS) Problem {
	return Problem{EOS: eos}
}

/*
Flux returns the 4x2 flux tensor at one sample, one row per conserved
variable, columns for the x and y directions:

	| rho u          rho v          |
	| rho u^2 + p    rho u v        |
	| rho v u        rho v^2 + p    |
	| (rhoE + p) u   (rhoE + p) v   |

The auxiliary fields U, V, p must be current, see EOS.Update.
*/
func (pr Problem) Flux(q *state.State, sample int) (F [4][2]float64) {
	var (
		rhoU = q.At(sample, RhoU)
		rhoV = q.At(sample, RhoV)
		rhoE = q.At(sample, RhoE)
		u    = q.At(sample, U)
		v    = q.At(sample, V)
		p    = q.At(sample, P)
	)
	F[0][0], F[0][1] = rhoU, rhoV
	F[1][0], F[1][1] = rhoU*u+p, rhoU*v
	F[2][0], F[2][1] = rhoV*u, rhoV*v+p
	F[3][0], F[3][1] = (rhoE+p)*u, (rhoE+p)*v
	return
}
