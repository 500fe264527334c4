package model

import (
	"github.com/limaJavier/somacube/pkg/geometry"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// verify checks that the assignments cover the volume exactly once and that each piece appears exactly once in one of its orientations
func verify(solution []CellAssignment, input PuzzleInput) bool {
	cells := input.Bounds.Cells()

	// Every assignment must lie inside the volume and name a known piece
	if len(solution) != len(cells) || !lo.EveryBy(solution, func(assignment CellAssignment) bool {
		return input.Bounds.Contains(assignment.Cell) && 0 <= assignment.Piece && assignment.Piece < len(input.Pieces)
	}) {
		return false
	}

	// A perfect matching between cells and assignments exists if and only if no cell is covered twice or left empty
	neighbors := func(cellAny any, assignmentAny any) (bool, error) {
		return cellAny.(geometry.Cell) == assignmentAny.(CellAssignment).Cell, nil
	}
	cellsAny := lo.Map(cells, func(cell geometry.Cell, _ int) any { return cell })
	assignmentsAny := lo.Map(solution, func(assignment CellAssignment, _ int) any { return assignment })

	graph, err := bipartitegraph.NewBipartiteGraph(cellsAny, assignmentsAny, neighbors)
	if err != nil {
		return false
	}
	if len(graph.LargestMatching()) != len(cells) {
		return false
	}

	// Each piece occupies one of its orientations, translated
	occupied := lo.GroupBy(solution, func(assignment CellAssignment) int { return assignment.Piece })
	for piece := range input.Pieces {
		shape := geometry.Shape(lo.Map(occupied[piece], func(assignment CellAssignment, _ int) geometry.Cell { return assignment.Cell }))
		if len(shape) != len(input.Pieces[piece].Cells) {
			return false
		}
		key := shape.Canonical().Key()
		if !lo.SomeBy(geometry.Orientations(input.Pieces[piece].Cells), func(orientation geometry.Shape) bool {
			return orientation.Key() == key
		}) {
			return false
		}
	}
	return true
}
