package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestRun2D(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
CFL: 0.4
Gamma: 1.4
Nx: 40
Ny: 20
Lx: 2.0
Ly: 1.0
Cx: 0.5
Cy: 0.5
Radius: 0.1
Rho0: 1.0
U0: 1.0
V0: 0.0
P0: 1.0
NSteps: 100
ReportInterval: 10
`)
	m2d := &Model2D{}
	ip := processInput(m2d)
	// Defaults reproduce the reference cylinder run
	assert.Equal(t, ip.Nx, 200)
	assert.Equal(t, ip.NSteps, 2000)
	if err = ip.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, ip.CFL, 0.4)
	assert.Equal(t, ip.Nx, 40)
	assert.Equal(t, ip.Radius, 0.1)
	assert.Equal(t, ip.NSteps, 100)
	ip.Print()
	assert.Equal(t, ip.ReportInterval, 10)
}
