package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// giniSolver runs the formula in-process through gini and supports incremental clause addition
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	instance, err := solver.Load(sat)
	if err != nil {
		return nil, err
	}
	return instance.Solve()
}

// Load teaches every clause of sat to a fresh gini instance
func (solver *giniSolver) Load(sat SAT) (IncrementalSolver, error) {
	instance := &giniInstance{
		g:         gini.NewVc(int(sat.Variables), len(sat.Clauses)),
		variables: sat.Variables,
	}
	for i, clause := range sat.Clauses {
		if err := instance.AddClause(clause); err != nil {
			return nil, errors.Wrapf(err, "cannot load clause %d", i)
		}
	}
	return instance, nil
}

type giniInstance struct {
	g         *gini.Gini
	variables uint64
}

func (instance *giniInstance) AddClause(clause []int64) error {
	if err := checkRange(clause, instance.variables); err != nil {
		return err
	}
	for _, literal := range clause {
		instance.g.Add(z.Dimacs2Lit(int(literal)))
	}
	instance.g.Add(z.LitNull) // Terminate the clause
	return nil
}

func (instance *giniInstance) Solve() (SATSolution, error) {
	switch instance.g.Solve() {
	case satisfiable:
	case unsatisfiable:
		return nil, nil
	default:
		return nil, errors.New("gini could not decide the instance")
	}

	maxVar := instance.g.MaxVar()
	solution := make(SATSolution, 0, instance.variables)
	for variable := int64(1); variable <= int64(instance.variables); variable++ {
		// Variables absent from every clause are unconstrained, report them as false
		if z.Var(variable) <= maxVar && instance.g.Value(z.Var(variable).Pos()) {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution, nil
}
