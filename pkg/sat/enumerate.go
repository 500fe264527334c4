package sat

import (
	"context"

	"github.com/pkg/errors"
)

// Enumerate finds distinct models of the loaded formula one at a time, blocking each model before searching for the next.
// onModel receives every model together with its 1-based rank and may return false to stop early.
// A limit of 0 enumerates every model. Returns the number of models found
func Enumerate(ctx context.Context, solver IncrementalSolver, limit int, onModel func(rank int, solution SATSolution) bool) (int, error) {
	found := 0
	for limit == 0 || found < limit {
		if err := ctx.Err(); err != nil {
			return found, err
		}

		solution, err := solver.Solve()
		if err != nil {
			return found, errors.Wrapf(err, "cannot solve after %d models", found)
		} else if solution == nil {
			break
		}

		found++
		if onModel != nil && !onModel(found, solution) {
			break
		}

		blocking := BlockingClause(solution)
		if len(blocking) == 0 { // A formula without variables has a single model
			break
		}
		if err := solver.AddClause(blocking); err != nil {
			return found, errors.Wrap(err, "cannot add blocking clause")
		}
	}
	return found, nil
}
