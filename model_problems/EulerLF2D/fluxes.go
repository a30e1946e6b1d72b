package EulerLF2D

// FluxCalc computes the x and y direction Euler flux vectors from a
// conservative state vector:
//
//	Fx = [rhoU, rhoU*u+p, rhoV*u, u*(E+p)]
//	Fy = [rhoV, rhoU*v, rhoV*v+p, v*(E+p)]
//
// Pure function of q, recomputed from neighbor state every step.
func (fs *FreeStream) FluxCalc(q [4]float64) (Fx, Fy [4]float64) {
	var (
		rho, rhoU, rhoV, E = q[0], q[1], q[2], q[3]
		oorho              = 1. / rho
		u                  = rhoU * oorho
		v                  = rhoV * oorho
		p                  = fs.GetFlowFunctionQQ(q, StaticPressure)
	)
	Fx, Fy =
		[4]float64{rhoU, rhoU*u + p, rhoV * u, u * (E + p)},
		[4]float64{rhoV, rhoU * v, rhoV*v + p, v * (E + p)}
	return
}

// GetQ gathers the four conservative variables at flat offset ind
func (c *Euler) GetQ(ind int) (q [4]float64) {
	q = [4]float64{c.Q[0][ind], c.Q[1][ind], c.Q[2][ind], c.Q[3][ind]}
	return
}
