package model

import (
	"fmt"

	"github.com/limaJavier/somacube/pkg/geometry"
)

// EmptyGroupError reports a piece or cell without any candidate placement. The formula would be
// unsatisfiable for a reason unrelated to the puzzle, so encoding stops instead
type EmptyGroupError struct {
	Group string
}

func (err EmptyGroupError) Error() string {
	return fmt.Sprintf("no placement is available for %v", err.Group)
}

type constraintState struct {
	input       PuzzleInput
	pieceGroups [][]int64
	cellGroups  map[geometry.Cell][]int64
}

// exactlyOne states that exactly one of the variables is true: one at-least-one clause and a pairwise at-most-one clause per pair
func exactlyOne(variables []int64) [][]int64 {
	if len(variables) == 0 {
		return nil
	}

	clauses := make([][]int64, 0, 1+len(variables)*(len(variables)-1)/2)
	atLeastOne := make([]int64, len(variables))
	copy(atLeastOne, variables)
	clauses = append(clauses, atLeastOne)

	for i := range len(variables) - 1 {
		for j := i + 1; j < len(variables); j++ {
			clauses = append(clauses, []int64{-variables[i], -variables[j]})
		}
	}
	return clauses
}

// Each piece is placed exactly once
func pieceConstraints(state constraintState) ([][]int64, error) {
	clauses := make([][]int64, 0)
	for piece, variables := range state.pieceGroups {
		if len(variables) == 0 {
			return nil, EmptyGroupError{Group: fmt.Sprintf("piece %q", state.input.Pieces[piece].Name)}
		}
		clauses = append(clauses, exactlyOne(variables)...)
	}
	return clauses, nil
}

// Each cell of the volume is covered exactly once
func cellConstraints(state constraintState) ([][]int64, error) {
	clauses := make([][]int64, 0)
	for _, cell := range state.input.Bounds.Cells() {
		variables := state.cellGroups[cell]
		if len(variables) == 0 {
			return nil, EmptyGroupError{Group: fmt.Sprintf("cell %v", cell)}
		}
		clauses = append(clauses, exactlyOne(variables)...)
	}
	return clauses, nil
}
