package sat

import "github.com/pkg/errors"

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// IncrementalSolver keeps a formula loaded between calls so that clauses can be appended after each model
type IncrementalSolver interface {
	AddClause(clause []int64) error
	Solve() (SATSolution, error) // Same contract as SATSolver.Solve
}

// restartingSolver turns any SATSolver into an IncrementalSolver by re-solving an owned copy of the formula
type restartingSolver struct {
	solver   SATSolver
	instance SAT
}

// NewIncrementalSolver loads the instance into solver. In-process engines keep it loaded, external ones are restarted on every Solve
func NewIncrementalSolver(solver SATSolver, instance SAT) (IncrementalSolver, error) {
	if loader, ok := solver.(interface {
		Load(SAT) (IncrementalSolver, error)
	}); ok {
		return loader.Load(instance)
	}
	return &restartingSolver{solver: solver, instance: instance.Copy()}, nil
}

func (solver *restartingSolver) AddClause(clause []int64) error {
	solver.instance.Clauses = append(solver.instance.Clauses, clause)
	return nil
}

func (solver *restartingSolver) Solve() (SATSolution, error) {
	return solver.solver.Solve(solver.instance)
}

// checkRange rejects literals naming no variable in [1, variables]
func checkRange(clause []int64, variables uint64) error {
	for _, literal := range clause {
		if literal == 0 || uint64(max(literal, -literal)) > variables {
			return errors.Errorf("literal %d is out of range [1, %d]", literal, variables)
		}
	}
	return nil
}
