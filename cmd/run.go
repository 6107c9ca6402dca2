package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gofvm/gofvm/InputParameters"
	"github.com/gofvm/gofvm/euler"
	"github.com/gofvm/gofvm/mesh"
	"github.com/gofvm/gofvm/scheme"
	"github.com/gofvm/gofvm/solver"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single-phase Euler simulation on a generated structured grid",
	Long:  `Run a single-phase Euler simulation on a generated structured grid`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		inputFile, _ := cmd.Flags().GetString("inputFile")
		sp := processInput(inputFile)
		if err = Run(sp); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().StringP("inputFile", "I", "", "YAML input parameters file")
}

func processInput(inputFile string) (sp *InputParameters.SimulationParameters) {
	var (
		err  error
		data []byte
	)
	if len(inputFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputFile)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Uniform Flow"
CFL: 0.5
Gamma: 1.4
NumXi: 41
NumEta: 5
FinalTime: 1.
MaxSteps: 1000
Rho: 1.
U: 1.
V: 0.
P: 1.
########################################
`
		fmt.Printf("example input file contents:%s", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(inputFile); err != nil {
		fmt.Printf("unable to read input file %s: %s\n", inputFile, err.Error())
		os.Exit(1)
	}
	sp = &InputParameters.SimulationParameters{}
	if err = sp.Parse(data); err != nil {
		fmt.Printf("unable to parse input file %s: %s\n", inputFile, err.Error())
		os.Exit(1)
	}
	sp.Print()
	return
}

// Run integrates a uniform initial condition on the unit square with periodic
// boundaries until FinalTime or MaxSteps.
func Run(sp *InputParameters.SimulationParameters) error {
	var (
		left   = mesh.NewLine(0, 0, 0, 1)
		bottom = mesh.NewLine(0, 0, 1, 0)
		right  = mesh.NewLine(1, 0, 1, 1)
		top    = mesh.NewLine(0, 1, 1, 1)
	)
	X, Y := mesh.Transfinite(left, bottom, right, top, sp.NumXi, sp.NumEta)
	grid, err := mesh.NewStructured(X, Y)
	if err != nil {
		return err
	}
	var (
		eos = euler.NewEOS(sp.Gamma)
		sol = solver.New(grid, scheme.New(euler.NewRusanov(eos), nil), euler.Fields())
	)
	sol.Update = eos.Update
	err = sol.Init(func(x, y float64) []float64 {
		q := make([]float64, euler.NumFields)
		q[euler.Rho] = sp.Rho
		q[euler.RhoU] = sp.Rho * sp.U
		q[euler.RhoV] = sp.Rho * sp.V
		q[euler.RhoE] = eos.TotalEnergy(sp.Rho, sp.U, sp.V, sp.P)
		return q
	})
	if err != nil {
		return err
	}

	fmt.Printf("solving on %d cells\n", grid.NumCells())
	var (
		start   = time.Now()
		elapsed time.Duration
		simTime float64
		steps   int
	)
	for simTime < sp.FinalTime && (sp.MaxSteps == 0 || steps < sp.MaxSteps) {
		dt, err := sol.MaxDT(sp.CFL)
		if err != nil {
			return err
		}
		if math.IsInf(dt, 1) {
			return fmt.Errorf("unbounded time step: no wave speed anywhere in the field")
		}
		if simTime+dt > sp.FinalTime {
			dt = sp.FinalTime - simTime
		}
		prev := sol.Q.Copy()
		if err = sol.Step(dt); err != nil {
			return err
		}
		simTime += dt
		steps++
		if steps%100 == 0 || simTime >= sp.FinalTime {
			fmt.Printf("step %6d time %11.4e dt %11.4e residual %11.4e\n",
				steps, simTime, dt, solver.Residual(prev, sol.Q))
		}
	}
	elapsed = time.Since(start)
	rate := float64(elapsed.Microseconds()) / (float64(steps * grid.NumCells()))
	fmt.Printf("%s elapsed, %d steps, %8.5f us/cell-step\n", elapsed.String(), steps, rate)
	return nil
}
