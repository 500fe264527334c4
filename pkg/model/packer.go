package model

import (
	"context"
	"slices"

	"github.com/limaJavier/somacube/pkg/geometry"
	"github.com/limaJavier/somacube/pkg/sat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CellAssignment is one rendered cell of a solution
type CellAssignment struct {
	Cell  geometry.Cell
	Piece int
	Color string
}

type Packer interface {
	// Returns up to limit distinct solutions (all of them when limit is 0), an empty result means the puzzle has none
	Build(
		ctx context.Context,
		input PuzzleInput,
	) (solutions [][]CellAssignment, variables uint64, clauses uint64, err error)

	Verify(
		solution []CellAssignment,
		input PuzzleInput,
	) bool
}

// Enumeration progress is reported at info level for the first solution and then once every progressInterval solutions
const progressInterval = 100

type satPacker struct {
	solver sat.SATSolver
	limit  int
	logger logrus.FieldLogger
}

func NewSatPacker(solver sat.SATSolver, limit int, logger logrus.FieldLogger) Packer {
	return &satPacker{
		solver: solver,
		limit:  limit,
		logger: logger,
	}
}

func (packer *satPacker) Build(ctx context.Context, input PuzzleInput) ([][]CellAssignment, uint64, uint64, error) {
	//** Build SAT instance
	encoding, err := Encode(input)
	if err != nil {
		return nil, 0, 0, err
	}
	variables, clauses := encoding.Instance.Variables, uint64(len(encoding.Instance.Clauses))
	packer.logger.WithFields(logrus.Fields{"variables": variables, "clauses": clauses}).Info("formula built")

	//** Enumerate models
	solver, err := sat.NewIncrementalSolver(packer.solver, encoding.Instance)
	if err != nil {
		return nil, variables, clauses, errors.Wrap(err, "cannot load formula into solver")
	}

	solutions := make([][]CellAssignment, 0)
	var decodeErr error
	_, err = sat.Enumerate(ctx, solver, packer.limit, func(rank int, solution sat.SATSolution) bool {
		progress := packer.logger.WithField("solutions", rank)
		if rank == 1 || rank%progressInterval == 0 {
			progress.Info("solutions found so far")
		} else {
			progress.Debug("solutions found so far")
		}
		assignments, err := encoding.Decode(solution)
		if err != nil {
			decodeErr = err
			return false
		}
		solutions = append(solutions, assignments)
		return true
	})
	if err == nil {
		err = decodeErr
	}
	if err != nil {
		return solutions, variables, clauses, err
	}

	packer.logger.WithField("solutions", len(solutions)).Info("enumeration finished")
	return solutions, variables, clauses, nil
}

func (packer *satPacker) Verify(solution []CellAssignment, input PuzzleInput) bool {
	return verify(solution, input)
}

// Decode marks the cells covered by every placement the solution sets to true, ordered by cell
func (encoding *Encoding) Decode(solution sat.SATSolution) ([]CellAssignment, error) {
	assignments := make([]CellAssignment, 0, encoding.Input.Bounds.Volume())
	for _, variable := range solution.True() {
		placement, ok := encoding.Placement(variable)
		if !ok {
			return nil, errors.Errorf("variable %d is not bound to any placement", variable)
		}
		piece := encoding.Input.Pieces[placement.Piece]
		for _, cell := range placement.Cells {
			assignments = append(assignments, CellAssignment{Cell: cell, Piece: placement.Piece, Color: piece.Color})
		}
	}

	slices.SortStableFunc(assignments, func(a, b CellAssignment) int { return geometry.Compare(a.Cell, b.Cell) })
	return assignments, nil
}
