package EulerLF2D

// ApplyBoundaryConditions rewrites the ghost layer at the start of each
// step. The pass order is fixed: inflow/outflow columns first, then the
// reflective rows, so the four corner ghosts end up holding the
// reflective rule's value. Corners are never read by the interior
// stencil, but the order is kept explicit.
func (c *Euler) ApplyBoundaryConditions() {
	c.InflowOutflowBC()
	c.ReflectiveBC()
}

// InflowOutflowBC sets the left ghost column to the free-stream state
// (Dirichlet inflow) and copies the right ghost column from the
// adjacent interior column (zero-gradient outflow).
func (c *Euler) InflowOutflowBC() {
	var (
		g            = c.Grid
		stride       = g.Stride()
		Qinf         = c.FS.Qinf
		indR         = (g.Nx + 1) * stride // Right ghost column base
		indRInterior = g.Nx * stride
	)
	c.ParallelForIndex(g.Ny+2, func(jMin, jMax int) {
		for j := jMin; j < jMax; j++ {
			for n := 0; n < 4; n++ {
				c.Q[n][j] = Qinf[n] // Left ghost column, i = 0
				c.Q[n][indR+j] = c.Q[n][indRInterior+j]
			}
		}
	})
}

// ReflectiveBC mirrors the bottom and top ghost rows against the
// adjacent interior rows: rho, rhoU and E copy through, the normal
// momentum rhoV is negated, enforcing zero normal velocity at the slip
// walls.
func (c *Euler) ReflectiveBC() {
	var (
		g      = c.Grid
		stride = g.Stride()
		jTop   = g.Ny + 1
	)
	c.ParallelForIndex(g.Nx+2, func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			var (
				indB = i * stride // Bottom ghost, j = 0
				indT = i*stride + jTop
			)
			for n := 0; n < 4; n++ {
				c.Q[n][indB] = c.Q[n][indB+1]
				c.Q[n][indT] = c.Q[n][indT-1]
			}
			c.Q[2][indB] = -c.Q[2][indB+1]
			c.Q[2][indT] = -c.Q[2][indT-1]
		}
	})
}
