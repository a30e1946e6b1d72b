package EulerLF2D

// Obstacle is a rigid circular body embedded in the grid. Cells whose
// centers fall inside it are excluded from the flux update and frozen
// in place.
type Obstacle struct {
	Cx, Cy, Radius float64
}

// Contains reports whether the point (x,y) lies within the body,
// boundary inclusive
func (ob Obstacle) Contains(x, y float64) bool {
	var (
		dx, dy = x - ob.Cx, y - ob.Cy
	)
	return dx*dx+dy*dy <= ob.Radius*ob.Radius
}

// InitializeSolution allocates the state arrays and the obstacle mask
// and seeds every cell, ghosts included. Solid cells are seeded with an
// at-rest gas patch so their values are defined for readers, fluid
// cells with the free-stream state. The pass is data parallel: the
// classification of each cell depends only on its own center.
func (c *Euler) InitializeSolution() {
	var (
		g      = c.Grid
		stride = g.Stride()
		fs     = c.FS
		// At-rest seed for solid cells: density, zero momentum,
		// internal energy only
		qSolid = [4]float64{fs.Qinf[0], 0, 0, fs.Pinf / (fs.Gamma - 1.)}
	)
	for n := 0; n < 4; n++ {
		c.Q[n] = make([]float64, g.TotalSize())
	}
	c.Solid = make([]bool, g.TotalSize())

	c.ParallelForIndex(g.Nx+2, func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			for j := 0; j < g.Ny+2; j++ {
				var (
					ind  = i*stride + j
					x, y = g.CellCenter(i, j)
				)
				if c.Obstacle.Contains(x, y) {
					c.Solid[ind] = true
					for n := 0; n < 4; n++ {
						c.Q[n][ind] = qSolid[n]
					}
				} else {
					for n := 0; n < 4; n++ {
						c.Q[n][ind] = fs.Qinf[n]
					}
				}
			}
		}
	})
}
