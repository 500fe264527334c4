package sat

import (
	"github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// gophersatSolver runs the formula in-process through gophersat and supports incremental clause addition
type gophersatSolver struct{}

func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (gophersat *gophersatSolver) Solve(sat SAT) (SATSolution, error) {
	instance, err := gophersat.Load(sat)
	if err != nil {
		return nil, err
	}
	return instance.Solve()
}

// Load builds a gophersat problem declaring every variable of sat, even those absent from its clauses
func (gophersat *gophersatSolver) Load(sat SAT) (IncrementalSolver, error) {
	clauses := make([][]int, 0, len(sat.Clauses)+1)
	for i, clause := range sat.Clauses {
		if err := checkRange(clause, sat.Variables); err != nil {
			return nil, errors.Wrapf(err, "cannot load clause %d", i)
		}
		clauses = append(clauses, lo.Map(clause, func(literal int64, _ int) int { return int(literal) }))
	}
	if sat.Variables > 0 {
		// The tautology fixes the variable count of the problem to sat.Variables
		clauses = append(clauses, []int{int(sat.Variables), -int(sat.Variables)})
	}

	return &gophersatInstance{
		s:         solver.New(solver.ParseSlice(clauses)),
		variables: sat.Variables,
	}, nil
}

type gophersatInstance struct {
	s         *solver.Solver
	variables uint64
}

func (instance *gophersatInstance) AddClause(clause []int64) error {
	if err := checkRange(clause, instance.variables); err != nil {
		return err
	}
	literals := lo.Map(clause, func(literal int64, _ int) solver.Lit { return solver.IntToLit(int32(literal)) })
	instance.s.AppendClause(solver.NewClause(literals))
	return nil
}

func (instance *gophersatInstance) Solve() (SATSolution, error) {
	switch instance.s.Solve() {
	case solver.Sat:
	case solver.Unsat:
		return nil, nil
	default:
		return nil, errors.New("gophersat could not decide the instance")
	}

	model := instance.s.Model()
	solution := make(SATSolution, 0, instance.variables)
	for variable := int64(1); variable <= int64(instance.variables); variable++ {
		if int(variable) <= len(model) && model[variable-1] {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution, nil
}
