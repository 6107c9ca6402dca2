package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimulationParameters struct {
	Title     string  `yaml:"Title"`
	CFL       float64 `yaml:"CFL"`
	Gamma     float64 `yaml:"Gamma"`
	NumXi     int     `yaml:"NumXi"`
	NumEta    int     `yaml:"NumEta"`
	FinalTime float64 `yaml:"FinalTime"`
	MaxSteps  int     `yaml:"MaxSteps"`
	// Uniform initial condition in primitive variables
	Rho float64 `yaml:"Rho"`
	U   float64 `yaml:"U"`
	V   float64 `yaml:"V"`
	P   float64 `yaml:"P"`
}

func (sp *SimulationParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, sp); err != nil {
		return err
	}
	return sp.Validate()
}

func (sp *SimulationParameters) Validate() error {
	if sp.CFL <= 0 {
		return fmt.Errorf("CFL must be positive, got %v", sp.CFL)
	}
	if sp.Gamma <= 1 {
		return fmt.Errorf("Gamma must be greater than 1, got %v", sp.Gamma)
	}
	if sp.NumXi < 2 || sp.NumEta < 2 {
		return fmt.Errorf("grid needs at least 2 points per direction, got %dx%d",
			sp.NumXi, sp.NumEta)
	}
	if sp.Rho <= 0 {
		return fmt.Errorf("initial density must be positive, got %v", sp.Rho)
	}
	if sp.P <= 0 {
		return fmt.Errorf("initial pressure must be positive, got %v", sp.P)
	}
	return nil
}

func (sp *SimulationParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", sp.CFL)
	fmt.Printf("%8.5f\t\t= Gamma\n", sp.Gamma)
	fmt.Printf("%8.5f\t\t= FinalTime\n", sp.FinalTime)
	fmt.Printf("[%d x %d]\t\t= Grid Points\n", sp.NumXi, sp.NumEta)
	fmt.Printf("[%d]\t\t\t= Max Steps\n", sp.MaxSteps)
	fmt.Printf("rho,u,v,p = %v, %v, %v, %v = Initial Condition\n", sp.Rho, sp.U, sp.V, sp.P)
}
