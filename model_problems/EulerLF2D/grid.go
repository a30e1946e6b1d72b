package EulerLF2D

import "fmt"

// Grid is the structured, ghost-padded index space shared by every field
// array. Interior cells run i in [1,Nx], j in [1,Ny]; one ghost layer
// surrounds them at i in {0,Nx+1} and j in {0,Ny+1}. Immutable after
// construction.
type Grid struct {
	Nx, Ny int     // Interior cell counts
	Lx, Ly float64 // Physical domain lengths
	Dx, Dy float64 // Cell sizes
}

func NewGrid(Nx, Ny int, Lx, Ly float64) (g *Grid) {
	if Nx < 1 || Ny < 1 || Lx <= 0 || Ly <= 0 {
		err := fmt.Errorf("invalid grid, have Nx[%d], Ny[%d], Lx[%8.5f], Ly[%8.5f]",
			Nx, Ny, Lx, Ly)
		panic(err)
	}
	g = &Grid{
		Nx: Nx, Ny: Ny,
		Lx: Lx, Ly: Ly,
		Dx: Lx / float64(Nx),
		Dy: Ly / float64(Ny),
	}
	return
}

// TotalSize is the flat length of a field array, ghost layer included
func (g *Grid) TotalSize() int {
	return (g.Nx + 2) * (g.Ny + 2)
}

// Stride is the flat-index distance between (i,j) and (i+1,j)
func (g *Grid) Stride() int {
	return g.Ny + 2
}

// Ind maps a ghost-inclusive coordinate to the flat offset used by every
// field array. The mapping is total and injective over i in [0,Nx+1],
// j in [0,Ny+1] and is the single indexing convention in this package.
func (g *Grid) Ind(i, j int) int {
	return i*(g.Ny+2) + j
}

// CellCenter returns the physical coordinates of the center of cell
// (i,j). Ghost cells share the same convention, so their centers lie
// half a cell outside the domain.
func (g *Grid) CellCenter(i, j int) (x, y float64) {
	x = (float64(i) - 0.5) * g.Dx
	y = (float64(j) - 0.5) * g.Dy
	return
}
