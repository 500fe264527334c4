package sat

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// SATSolution is a satisfying assignment given as signed literals, positive literals are true
type SATSolution []int64

// True returns the variables assigned to true
func (solution SATSolution) True() []int64 {
	return lo.Filter(solution, func(literal int64, _ int) bool { return literal > 0 })
}

// SAT is a CNF formula: the variable count and the clauses over variables 1..Variables
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// Copy returns a formula that can be extended without affecting the receiver
func (s SAT) Copy() SAT {
	return SAT{
		Variables: s.Variables,
		Clauses:   lo.Map(s.Clauses, func(clause []int64, _ int) []int64 { return slices.Clone(clause) }),
	}
}

// Satisfies checks that the solution is consistent (no variable both true and false) and makes every clause true
func (s SAT) Satisfies(solution SATSolution) bool {
	literals := make(map[int64]bool)
	for _, literal := range solution {
		if literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	return lo.EveryBy(s.Clauses, func(clause []int64) bool {
		return lo.SomeBy(clause, func(literal int64) bool { return literals[literal] })
	})
}

// Excerpt returns one representative clause for each of the smallest distinct clause widths, up to widths of them.
// Duplicate literals are removed from each representative while preserving their order
func (s SAT) Excerpt(widths int) [][]int64 {
	lengths := lo.Uniq(lo.Map(s.Clauses, func(clause []int64, _ int) int { return len(clause) }))
	slices.Sort(lengths)
	if len(lengths) > widths {
		lengths = lengths[:widths]
	}

	excerpt := make([][]int64, 0, len(lengths))
	for _, length := range lengths {
		clause, _ := lo.Find(s.Clauses, func(clause []int64) bool { return len(clause) == length })
		excerpt = append(excerpt, lo.Uniq(clause))
	}
	return excerpt
}

// BlockingClause forbids the exact sign pattern of the solution
func BlockingClause(solution SATSolution) []int64 {
	return lo.Map(solution, func(literal int64, _ int) int64 { return -literal })
}
