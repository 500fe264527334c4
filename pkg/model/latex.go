package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// FormulaExcerpt renders one representative clause for each of the smallest clause widths as a LaTeX aligned block
func FormulaExcerpt(encoding *Encoding, widths int) string {
	name := func(variable int64) string {
		if name, ok := encoding.Name(variable); ok {
			return name
		}
		return fmt.Sprintf("P_{%d}", variable)
	}

	clauses := lo.Map(encoding.Instance.Excerpt(widths), func(clause []int64, _ int) string {
		literals := lo.Map(clause, func(literal int64, _ int) string {
			if literal > 0 {
				return name(literal)
			}
			return `\neg ` + name(-literal)
		})
		return "(" + strings.Join(literals, ` \vee `) + ")"
	})

	var builder strings.Builder
	builder.WriteString("Puzzle: Find an assignment of truth values (0's and 1's) to all the $P_{xyzi}$ variables such that the entire formula $\\Phi$ evaluates to true (1).\n")
	builder.WriteString("\n$$\n")
	builder.WriteString("\\begin{aligned}\n")
	builder.WriteString("\\Phi= & " + strings.Join(clauses, ` \wedge `) + ` \wedge \ldots` + "\n")
	builder.WriteString("\\end{aligned}\n")
	builder.WriteString("$$\n")
	return builder.String()
}
