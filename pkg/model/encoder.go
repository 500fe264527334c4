package model

import (
	"slices"

	"github.com/limaJavier/somacube/pkg/geometry"
	"github.com/limaJavier/somacube/pkg/sat"
	"golang.org/x/sync/errgroup"
)

// Encoding is the exact-cover formula of a puzzle together with the indexes relating variables to placements
type Encoding struct {
	Input    PuzzleInput
	Instance sat.SAT

	indexer     indexer
	pieceGroups [][]int64
	cellGroups  map[geometry.Cell][]int64
	names       map[int64]string
}

// Encode enumerates every placement of every piece and builds the clauses requiring each piece and each cell to be used exactly once
func Encode(input PuzzleInput) (*Encoding, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	index := enumeratePlacements(input)
	state := constraintState{
		input:       input,
		pieceGroups: index.byPiece,
		cellGroups:  index.byCell,
	}

	// Piece constraints precede cell constraints
	instance, err := buildSat(index.indexer.Variables(), []func(state constraintState) ([][]int64, error){
		pieceConstraints,
		cellConstraints,
	}, state)
	if err != nil {
		return nil, err
	}

	return &Encoding{
		Input:       input,
		Instance:    instance,
		indexer:     index.indexer,
		pieceGroups: index.byPiece,
		cellGroups:  index.byCell,
		names:       index.names,
	}, nil
}

func buildSat(variables uint64, constraints []func(state constraintState) ([][]int64, error), state constraintState) (sat.SAT, error) {
	// Constraint families are independent, each goroutine writes its own slot so the clause order stays fixed
	results := make([][][]int64, len(constraints))
	var group errgroup.Group
	for i, constraint := range constraints {
		group.Go(func() error {
			clauses, err := constraint(state)
			results[i] = clauses
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return sat.SAT{}, err
	}

	return sat.SAT{
		Variables: variables,
		Clauses:   slices.Concat(results...),
	}, nil
}

// Variable returns the variable of a placement
func (encoding *Encoding) Variable(key PlacementKey) (int64, bool) {
	return encoding.indexer.Variable(key)
}

// Placement returns the placement bound to a variable
func (encoding *Encoding) Placement(variable int64) (Placement, bool) {
	return encoding.indexer.Attributes(variable)
}

// Placements lists every placement, the placement of variable v at position v-1
func (encoding *Encoding) Placements() []Placement {
	placements := make([]Placement, 0, encoding.Instance.Variables)
	for variable := int64(1); variable <= int64(encoding.Instance.Variables); variable++ {
		placement, _ := encoding.indexer.Attributes(variable)
		placements = append(placements, placement)
	}
	return placements
}

// PieceGroup returns the variables placing the piece anywhere, in ascending order
func (encoding *Encoding) PieceGroup(piece int) []int64 {
	if piece < 0 || piece >= len(encoding.pieceGroups) {
		return nil
	}
	return slices.Clone(encoding.pieceGroups[piece])
}

// CellGroup returns the variables whose placement covers the cell, in ascending order
func (encoding *Encoding) CellGroup(cell geometry.Cell) []int64 {
	return slices.Clone(encoding.cellGroups[cell])
}

// Name returns the documentation name of a variable, P_{xyzi} with the 1-indexed anchor and piece
func (encoding *Encoding) Name(variable int64) (string, bool) {
	name, ok := encoding.names[variable]
	return name, ok
}
