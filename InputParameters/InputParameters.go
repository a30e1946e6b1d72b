package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title          string  `yaml:"Title"`
	CFL            float64 `yaml:"CFL"`
	Gamma          float64 `yaml:"Gamma"`
	Nx             int     `yaml:"Nx"`
	Ny             int     `yaml:"Ny"`
	Lx             float64 `yaml:"Lx"`
	Ly             float64 `yaml:"Ly"`
	Cx             float64 `yaml:"Cx"` // Obstacle center
	Cy             float64 `yaml:"Cy"`
	Radius         float64 `yaml:"Radius"`
	Rho0           float64 `yaml:"Rho0"` // Free-stream primitive state
	U0             float64 `yaml:"U0"`
	V0             float64 `yaml:"V0"`
	P0             float64 `yaml:"P0"`
	NSteps         int     `yaml:"NSteps"`
	ReportInterval int     `yaml:"ReportInterval"`
}

// NewInputParameters2D returns parameters reproducing the reference
// cylinder-in-channel run: 200x100 cells over a 2x1 domain, cylinder at
// (0.5,0.5) with radius 0.1, unit free stream moving in +x.
func NewInputParameters2D() *InputParameters2D {
	return &InputParameters2D{
		Title:          "Cylinder in channel",
		CFL:            0.5,
		Gamma:          1.4,
		Nx:             200,
		Ny:             100,
		Lx:             2.0,
		Ly:             1.0,
		Cx:             0.5,
		Cy:             0.5,
		Radius:         0.1,
		Rho0:           1.0,
		U0:             1.0,
		V0:             0.0,
		P0:             1.0,
		NSteps:         2000,
		ReportInterval: 50,
	}
}

func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%d x %d]\t\t= Grid\n", ip.Nx, ip.Ny)
	fmt.Printf("[%4.2f x %4.2f]\t\t= Domain\n", ip.Lx, ip.Ly)
	fmt.Printf("(%4.2f,%4.2f) r=%4.2f\t= Obstacle\n", ip.Cx, ip.Cy, ip.Radius)
	fmt.Printf("[%4.2f,%4.2f,%4.2f,%4.2f]\t= Free stream rho,u,v,p\n",
		ip.Rho0, ip.U0, ip.V0, ip.P0)
	fmt.Printf("[%d]\t\t\t= NSteps\n", ip.NSteps)
	fmt.Printf("[%d]\t\t\t= ReportInterval\n", ip.ReportInterval)
}
