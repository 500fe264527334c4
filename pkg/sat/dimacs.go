package sat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS reads a formula in DIMACS-CNF format
func ParseDIMACS(reader io.Reader) (SAT, error) {
	var sat SAT
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var clause []int64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "%") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p") {
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return SAT{}, errors.Errorf("invalid problem line: %s", line)
			}
			vars, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, errors.Wrap(err, "invalid variable count")
			}
			sat.Variables = vars
			continue
		}

		// Clauses may span several lines and are terminated by 0
		for _, litStr := range strings.Fields(line) {
			lit, err := strconv.ParseInt(litStr, 10, 64)
			if err != nil {
				return SAT{}, errors.Wrapf(err, "invalid literal '%s'", litStr)
			}
			if lit == 0 {
				if len(clause) > 0 {
					sat.Clauses = append(sat.Clauses, clause)
				}
				clause = nil
				continue
			}
			if uint64(max(lit, -lit)) > sat.Variables {
				return SAT{}, errors.Errorf("literal %d exceeds the declared variable count %d", lit, sat.Variables)
			}
			clause = append(clause, lit)
		}
	}
	if len(clause) > 0 {
		sat.Clauses = append(sat.Clauses, clause)
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, errors.Wrap(err, "error reading DIMACS input")
	}

	return sat, nil
}
