package EulerLF2D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/gofd/utils"
)

type SolverState uint8

const (
	Uninitialized SolverState = iota
	Running
	Finished
)

func (s SolverState) String() string {
	return []string{"Uninitialized", "Running", "Finished"}[int(s)]
}

/*
	Explicit Lax-Friedrichs finite difference solver for the 2D
	compressible Euler equations on a structured grid with one ghost
	layer per side and a circular immersed obstacle. Solid cells are
	held frozen, fluid cells are advanced with the classical four-point
	neighbor-average scheme. The time step is fixed for the whole run,
	set once from the CFL condition on the free-stream state.
*/
type Euler struct {
	// Input parameters
	Grid           *Grid
	FS             *FreeStream
	Obstacle       Obstacle
	CFL            float64
	DT             float64 // Global time step, fixed for the run
	NSteps         int
	ReportInterval int
	State          SolverState
	ParallelDegree int                 // Number of go routines to use for parallel execution
	Partitions     *utils.PartitionMap // Buckets over the interior i range
	// Conservative state [rho, rhoU, rhoV, E], flat ghost-padded arrays
	Q     [4][]float64
	Solid []bool // Obstacle mask, fixed after initialization
}

func NewEuler(Nx, Ny int, Lx, Ly float64, ob Obstacle,
	Rho0, U0, V0, P0, Gamma, CFL float64,
	nSteps, reportInterval, ProcLimit int, verbose bool) (c *Euler) {
	c = &Euler{
		Grid:           NewGrid(Nx, Ny, Lx, Ly),
		FS:             NewFreeStream(Rho0, U0, V0, P0, Gamma),
		Obstacle:       ob,
		CFL:            CFL,
		NSteps:         nSteps,
		ReportInterval: reportInterval,
		State:          Uninitialized,
	}
	if nSteps < 1 {
		err := fmt.Errorf("step count must be positive, have %d", nSteps)
		panic(err)
	}
	if reportInterval < 1 {
		c.ReportInterval = 50
	}
	c.SetParallelDegree(ProcLimit)

	c.InitializeSolution()

	// Time step from the CFL condition on the free-stream state
	c.DT = CFL * math.Min(c.Grid.Dx, c.Grid.Dy) / (math.Abs(U0) + c.FS.Cinf) / 2.

	c.State = Running
	if verbose {
		fmt.Printf("Euler Equations in 2 Dimensions, Lax-Friedrichs Finite Difference\n")
		fmt.Printf("Using %d go routines in parallel\n", c.ParallelDegree)
		fmt.Printf("Mach Infinity = %8.5f, Gamma = %8.5f\n",
			c.FS.GetFlowFunctionQQ(c.FS.Qinf, Mach), Gamma)
		fmt.Printf("CFL = %8.4f, dt = %8.6f, Num Steps = %d\n",
			CFL, c.DT, nSteps)
		fmt.Printf("Grid %d x %d, dx = %8.6f, dy = %8.6f, obstacle at (%4.2f,%4.2f) radius %4.2f\n\n",
			Nx, Ny, c.Grid.Dx, c.Grid.Dy, ob.Cx, ob.Cy, ob.Radius)
	}
	return
}

func (c *Euler) Solve() {
	if c.State != Running {
		err := fmt.Errorf("solver state is %v, must be Running to Solve", c.State)
		panic(err)
	}
	c.PrintInitialization()

	lf := c.NewLaxFriedrichs()

	start := time.Now()
	for n := 0; n < c.NSteps; n++ {
		lf.Step(c)
		if n%c.ReportInterval == 0 {
			c.PrintUpdate(n)
		}
	}
	elapsed := time.Since(start)
	c.State = Finished
	c.PrintFinal(elapsed)
}

// LaxFriedrichs holds the next-step buffer for the double-buffered
// update. The buffer is written only by the interior pass and read only
// by the commit pass, never aliased with the current state within a step.
type LaxFriedrichs struct {
	Qn [4][]float64
}

func (c *Euler) NewLaxFriedrichs() (lf *LaxFriedrichs) {
	lf = &LaxFriedrichs{}
	for n := 0; n < 4; n++ {
		lf.Qn[n] = make([]float64, c.Grid.TotalSize())
	}
	return
}

// Step advances the solution by one time step. The three passes are
// separated by full barriers: ghost values must be in place before the
// interior pass reads them, and the interior pass must complete
// everywhere before commit copies the next buffer back.
func (lf *LaxFriedrichs) Step(c *Euler) {
	c.ApplyBoundaryConditions()
	lf.UpdateInterior(c)
	lf.Commit(c)
}

// UpdateInterior computes the Lax-Friedrichs update for every interior
// cell into the next buffer. Fluid cells are replaced by the four-point
// neighbor average corrected by the centered flux divergence; the
// cell's own old value is never read. Solid cells copy through
// unchanged.
func (lf *LaxFriedrichs) UpdateInterior(c *Euler) {
	var (
		g      = c.Grid
		stride = g.Stride()
		dtdx   = c.DT / (2. * g.Dx)
		dtdy   = c.DT / (2. * g.Dy)
	)
	c.RunParallel(func(np int) {
		iMin, iMax := c.Partitions.GetBucketRange(np)
		for i := iMin + 1; i <= iMax; i++ { // Bucket [iMin,iMax) covers interior rows [iMin+1,iMax]
			for j := 1; j <= g.Ny; j++ {
				ind := i*stride + j
				if c.Solid[ind] {
					for n := 0; n < 4; n++ {
						lf.Qn[n][ind] = c.Q[n][ind]
					}
					continue
				}
				var (
					qE = c.GetQ(ind + stride)
					qW = c.GetQ(ind - stride)
					qN = c.GetQ(ind + 1)
					qS = c.GetQ(ind - 1)
				)
				FxE, _ := c.FS.FluxCalc(qE)
				FxW, _ := c.FS.FluxCalc(qW)
				_, FyN := c.FS.FluxCalc(qN)
				_, FyS := c.FS.FluxCalc(qS)
				for n := 0; n < 4; n++ {
					lf.Qn[n][ind] = 0.25*(qE[n]+qW[n]+qN[n]+qS[n]) -
						dtdx*(FxE[n]-FxW[n]) - dtdy*(FyN[n]-FyS[n])
				}
			}
		}
	})
}

// Commit copies the next buffer into the current state for interior
// cells only. Ghost cells are rewritten by the boundary pass at the
// start of the following step.
func (lf *LaxFriedrichs) Commit(c *Euler) {
	var (
		g      = c.Grid
		stride = g.Stride()
	)
	c.RunParallel(func(np int) {
		iMin, iMax := c.Partitions.GetBucketRange(np)
		for i := iMin + 1; i <= iMax; i++ {
			for j := 1; j <= g.Ny; j++ {
				ind := i*stride + j
				for n := 0; n < 4; n++ {
					c.Q[n][ind] = lf.Qn[n][ind]
				}
			}
		}
	})
}

func (c *Euler) PrintInitialization() {
	fmt.Printf("Solving for %d steps on a %d x %d grid\n",
		c.NSteps, c.Grid.Nx, c.Grid.Ny)
	fmt.Printf("    iter    KineticEnergy\n")
}

func (c *Euler) PrintUpdate(steps int) {
	fmt.Printf("%8d      %11.4e\n", steps, c.TotalKineticEnergy())
}

func (c *Euler) PrintFinal(elapsed time.Duration) {
	cells := c.Grid.Nx * c.Grid.Ny
	rate := float64(elapsed.Microseconds()) / (float64(cells) * float64(c.NSteps))
	fmt.Printf("\nSimulation time: %8.3f ms\n", float64(elapsed.Microseconds())/1000.)
	fmt.Printf("Rate of execution = %8.5f us/(cell*iteration) over %d iterations\n",
		rate, c.NSteps)
}
