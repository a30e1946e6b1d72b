package EulerLF2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFluxConsistency(t *testing.T) {
	fs := NewFreeStream(1.0, 1.0, 0.0, 1.0, 1.4)
	{ // No cross-coupling when the transverse momentum is zero
		Fx, _ := fs.FluxCalc([4]float64{1.2, 0.7, 0, 2.5})
		assert.Equal(t, 0., Fx[2])
		_, Fy := fs.FluxCalc([4]float64{1.2, 0, 0.7, 2.5})
		assert.Equal(t, 0., Fy[1])
	}
	{ // At rest, only the pressure terms survive
		q := [4]float64{1.0, 0, 0, 2.5}
		p := fs.GetFlowFunctionQQ(q, StaticPressure)
		Fx, Fy := fs.FluxCalc(q)
		assert.Equal(t, [4]float64{0, p, 0, 0}, Fx)
		assert.Equal(t, [4]float64{0, 0, p, 0}, Fy)
	}
}

func TestPressureRoundTrip(t *testing.T) {
	var (
		Rho0, U0, V0, P0 = 1.0, 1.0, 0.0, 1.0
		fs               = NewFreeStream(Rho0, U0, V0, P0, 1.4)
	)
	// E0 is constructed from p0, so the recovery must be exact
	assert.Equal(t, P0, fs.GetFlowFunctionQQ(fs.Qinf, StaticPressure))
	assert.Equal(t, P0, fs.Pinf)
}

func TestFlowFunctions(t *testing.T) {
	fs := NewFreeStream(1.0, 1.0, 0.0, 1.0, 1.4)
	q := [4]float64{2.0, 4.0, -2.0, 20.0}
	assert.Equal(t, 2.0, fs.GetFlowFunctionQQ(q, Density))
	assert.Equal(t, 4.0, fs.GetFlowFunctionQQ(q, XMomentum))
	assert.Equal(t, -2.0, fs.GetFlowFunctionQQ(q, YMomentum))
	assert.Equal(t, 20.0, fs.GetFlowFunctionQQ(q, Energy))
	assert.Equal(t, 2.0, fs.GetFlowFunctionQQ(q, XVelocity))
	assert.Equal(t, -1.0, fs.GetFlowFunctionQQ(q, YVelocity))
	// kinetic = 0.5*rho*(u^2+v^2) = 5, p = 0.4*(20-5) = 6
	assert.True(t, near(6.0, fs.GetFlowFunctionQQ(q, StaticPressure), 1.e-12))
	assert.True(t, near(5.0, fs.GetFlowFunctionQQ(q, DynamicPressure), 1.e-12))
}
