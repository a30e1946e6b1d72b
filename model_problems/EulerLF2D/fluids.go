package EulerLF2D

import "math"

type FlowFunction uint8

func (pf FlowFunction) String() string {
	strings := []string{
		"Density",
		"XMomentum",
		"YMomentum",
		"Energy",
		"Mach",
		"Static Pressure",
		"Dynamic Pressure",
		"Sound Speed",
		"Velocity",
		"XVelocity",
		"YVelocity",
	}
	return strings[int(pf)]
}

const (
	Density FlowFunction = iota
	XMomentum
	YMomentum
	Energy
	Mach            // 4
	StaticPressure  // 5
	DynamicPressure // 6
	SoundSpeed      // 7
	Velocity        // 8
	XVelocity       // 9
	YVelocity       // 10
)

// FreeStream carries the reference state used for the inflow boundary
// and for seeding fluid cells, along with derived reference quantities
type FreeStream struct {
	Gamma      float64
	Qinf       [4]float64 // Conservative free-stream state [rho, rhoU, rhoV, E]
	Pinf, Cinf float64    // Free-stream static pressure and sound speed
}

func NewFreeStream(Rho0, U0, V0, P0, Gamma float64) (fs *FreeStream) {
	var (
		E0 = P0/(Gamma-1.) + 0.5*Rho0*(U0*U0+V0*V0)
	)
	fs = &FreeStream{
		Gamma: Gamma,
		Qinf:  [4]float64{Rho0, Rho0 * U0, Rho0 * V0, E0},
	}
	fs.Pinf = fs.GetFlowFunctionQQ(fs.Qinf, StaticPressure)
	fs.Cinf = fs.GetFlowFunctionQQ(fs.Qinf, SoundSpeed)
	return
}

func (fs *FreeStream) GetFlowFunctionQQ(Q [4]float64, pf FlowFunction) (f float64) {
	return fs.GetFlowFunctionBase(Q[0], Q[1], Q[2], Q[3], pf)
}

// GetFlowFunctionBase derives primitive and reference quantities from a
// conservative state. Density must be nonzero, there is no guard here.
func (fs *FreeStream) GetFlowFunctionBase(rho, rhoU, rhoV, E float64, pf FlowFunction) (f float64) {
	var (
		Gamma = fs.Gamma
		GM1   = Gamma - 1.
		oorho = 1. / rho
		q, p  float64
	)
	// Calculate q if needed
	switch pf {
	case StaticPressure, SoundSpeed, Mach:
		q = 0.5 * (rhoU*rhoU + rhoV*rhoV) * oorho
	}
	// Calculate p if needed
	switch pf {
	case SoundSpeed, Mach:
		p = GM1 * (E - q)
	}

	switch pf {
	case Density:
		f = rho
	case XMomentum:
		f = rhoU
	case YMomentum:
		f = rhoV
	case Energy:
		f = E
	case StaticPressure:
		f = GM1 * (E - q)
	case DynamicPressure:
		f = 0.5 * (rhoU*rhoU + rhoV*rhoV) * oorho
	case SoundSpeed:
		f = math.Sqrt(math.Abs(Gamma * p * oorho))
	case Velocity:
		f = math.Sqrt((rhoU*rhoU + rhoV*rhoV)) * oorho
	case XVelocity:
		f = rhoU * oorho
	case YVelocity:
		f = rhoV * oorho
	case Mach:
		C := math.Sqrt(math.Abs(Gamma * p * oorho))
		U := math.Sqrt((rhoU*rhoU + rhoV*rhoV)) * oorho
		f = U / C
	}
	return
}
