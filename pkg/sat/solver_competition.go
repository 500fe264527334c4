package sat

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Exit statuses of the SAT competition output format
const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

// competitionSolver runs an engine that reads DIMACS from standard input and prints "s"/"v" lines
type competitionSolver struct {
	name string
	path func(Config) string
	args []string
}

func NewKissatSolver() SATSolver {
	return &competitionSolver{
		name: "kissat",
		path: func(config Config) string { return config.KissatPath },
		args: []string{"-q", "--relaxed"},
	}
}

func NewCadicalSolver() SATSolver {
	return &competitionSolver{
		name: "cadical",
		path: func(config Config) string { return config.CadicalPath },
		args: []string{"-q"},
	}
}

func (solver *competitionSolver) Solve(sat SAT) (SATSolution, error) {
	cmd := exec.Command(getExecutablePath(solver.path), solver.args...)
	cmd.Stdin = strings.NewReader(sat.ToDIMACS())

	var stdOut, stdErr bytes.Buffer
	cmd.Stdout = &stdOut
	cmd.Stderr = &stdErr

	err := cmd.Run()
	switch cmd.ProcessState.ExitCode() {
	case exitSatisfiable:
		return parseSolution(stdOut.String()), nil
	case exitUnsatisfiable:
		return nil, nil
	default:
		if err == nil {
			err = errors.New("unexpected exit status")
		}
		return nil, errors.Wrapf(err, "%v failed: %v", solver.name, stdErr.String())
	}
}
