package geometry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Cell is a unit cube addressed by its integer coordinates
type Cell struct {
	X, Y, Z int
}

func (cell Cell) Translate(dx, dy, dz int) Cell {
	return Cell{cell.X + dx, cell.Y + dy, cell.Z + dz}
}

func (cell Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", cell.X, cell.Y, cell.Z)
}

// Compare orders cells lexicographically by x, then y, then z
func Compare(a, b Cell) int {
	if a.X != b.X {
		return a.X - b.X
	} else if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.Z - b.Z
}

// Shape is an ordered collection of cells (a polycube or a set of offsets)
type Shape []Cell

func (shape Shape) Translate(dx, dy, dz int) Shape {
	return lo.Map(shape, func(cell Cell, _ int) Cell { return cell.Translate(dx, dy, dz) })
}

// Sorted returns a copy of the shape in lexicographic order
func (shape Shape) Sorted() Shape {
	sorted := slices.Clone(shape)
	slices.SortFunc(sorted, Compare)
	return sorted
}

// Canonical translates the shape so the minimum coordinate along each axis is zero and sorts its cells
func (shape Shape) Canonical() Shape {
	if len(shape) == 0 {
		return Shape{}
	}
	minX := lo.MinBy(shape, func(a, b Cell) bool { return a.X < b.X }).X
	minY := lo.MinBy(shape, func(a, b Cell) bool { return a.Y < b.Y }).Y
	minZ := lo.MinBy(shape, func(a, b Cell) bool { return a.Z < b.Z }).Z
	return shape.Translate(-minX, -minY, -minZ).Sorted()
}

// Equal compares two shapes as ordered sequences
func (shape Shape) Equal(other Shape) bool {
	return slices.Equal(shape, other)
}

// Key returns a stable encoding of the shape's cell set, suitable as a map key
func (shape Shape) Key() string {
	var builder strings.Builder
	for _, cell := range shape.Sorted() {
		fmt.Fprintf(&builder, "%d,%d,%d;", cell.X, cell.Y, cell.Z)
	}
	return builder.String()
}

// Bounds is a box-shaped volume with edge lengths X, Y and Z, anchored at the origin
type Bounds struct {
	X, Y, Z int
}

// Cube returns the n×n×n volume
func Cube(n int) Bounds {
	return Bounds{n, n, n}
}

func (bounds Bounds) Contains(cell Cell) bool {
	return 0 <= cell.X && cell.X < bounds.X &&
		0 <= cell.Y && cell.Y < bounds.Y &&
		0 <= cell.Z && cell.Z < bounds.Z
}

// ContainsAll checks whether every cell of the shape lies inside the volume
func (bounds Bounds) ContainsAll(shape Shape) bool {
	return lo.EveryBy(shape, bounds.Contains)
}

func (bounds Bounds) Volume() int {
	return bounds.X * bounds.Y * bounds.Z
}

// Cells lists every cell of the volume, x-major, then y, then z
func (bounds Bounds) Cells() []Cell {
	cells := make([]Cell, 0, bounds.Volume())
	for x := range bounds.X {
		for y := range bounds.Y {
			for z := range bounds.Z {
				cells = append(cells, Cell{x, y, z})
			}
		}
	}
	return cells
}
