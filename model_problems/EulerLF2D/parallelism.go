package EulerLF2D

import (
	"runtime"
	"sync"

	"github.com/notargets/gofd/utils"
)

func (c *Euler) SetParallelDegree(ProcLimit int) {
	if ProcLimit != 0 {
		c.ParallelDegree = ProcLimit
	} else {
		c.ParallelDegree = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(runtime.NumCPU())
	if c.ParallelDegree > c.Grid.Nx {
		c.ParallelDegree = 1
	}
	c.Partitions = utils.NewPartitionMap(c.ParallelDegree, c.Grid.Nx)
}

// RunParallel fans one goroutine out per partition and blocks until all
// complete. Every pass of the solver runs behind this barrier, which is
// the only synchronization the scheme needs: within a pass each cell is
// independent.
func (c *Euler) RunParallel(work func(np int)) {
	var (
		wg = sync.WaitGroup{}
	)
	for np := 0; np < c.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			work(np)
			wg.Done()
		}(np)
	}
	wg.Wait()
}

// ParallelForIndex fans the half-open range [0,iMax) out over the
// solver's parallel degree, for passes whose index space differs from
// the interior row partitioning (ghost strips, full-grid sweeps).
func (c *Euler) ParallelForIndex(iMax int, work func(iMin, iMax int)) {
	pm := utils.NewPartitionMap(c.ParallelDegree, iMax)
	c.RunParallel(func(np int) {
		min, max := pm.GetBucketRange(np)
		work(min, max)
	})
}
