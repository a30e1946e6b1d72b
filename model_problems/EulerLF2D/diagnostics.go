package EulerLF2D

import (
	"gonum.org/v1/gonum/floats"
)

// TotalKineticEnergy sums 0.5*rho*(u*u+v*v) over the interior cells.
// Solid cells are included: their at-rest seed carries zero momentum,
// so they contribute nothing to the total. Each partition accumulates
// its own partial, which keeps the reduction order fixed for a given
// parallel degree.
func (c *Euler) TotalKineticEnergy() (ke float64) {
	return c.reduceInterior(func(ind int) float64 {
		var (
			oorho = 1. / c.Q[0][ind]
			u     = c.Q[1][ind] * oorho
			v     = c.Q[2][ind] * oorho
		)
		return 0.5 * c.Q[0][ind] * (u*u + v*v)
	})
}

// TotalMass sums density over the interior cells
func (c *Euler) TotalMass() (mass float64) {
	return c.reduceInterior(func(ind int) float64 {
		return c.Q[0][ind]
	})
}

func (c *Euler) reduceInterior(cell func(ind int) float64) (total float64) {
	var (
		g        = c.Grid
		stride   = g.Stride()
		partials = make([]float64, c.ParallelDegree)
	)
	c.RunParallel(func(np int) {
		var sum float64
		iMin, iMax := c.Partitions.GetBucketRange(np)
		for i := iMin + 1; i <= iMax; i++ {
			for j := 1; j <= g.Ny; j++ {
				sum += cell(i*stride + j)
			}
		}
		partials[np] = sum
	})
	total = floats.Sum(partials)
	return
}
