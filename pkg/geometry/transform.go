package geometry

import "github.com/samber/lo"

// Transform maps a shape onto a new shape without modifying its input
type Transform func(Shape) Shape

// Identity returns a copy of the shape
func Identity(shape Shape) Shape {
	return lo.Map(shape, func(cell Cell, _ int) Cell { return cell })
}

// RotateX rotates a quarter turn about the x axis: (x,y,z) -> (x,z,-y)
func RotateX(shape Shape) Shape {
	return lo.Map(shape, func(cell Cell, _ int) Cell { return Cell{cell.X, cell.Z, -cell.Y} })
}

// RotateY rotates a quarter turn about the y axis: (x,y,z) -> (z,y,-x)
func RotateY(shape Shape) Shape {
	return lo.Map(shape, func(cell Cell, _ int) Cell { return Cell{cell.Z, cell.Y, -cell.X} })
}

// RotateZ rotates a quarter turn about the z axis: (x,y,z) -> (-y,x,z)
func RotateZ(shape Shape) Shape {
	return lo.Map(shape, func(cell Cell, _ int) Cell { return Cell{-cell.Y, cell.X, cell.Z} })
}

// Transforms holds the generating set in enumeration order. The order fixes orientation discovery order and therefore variable numbering
var Transforms = []Transform{Identity, RotateX, RotateY, RotateZ}
