package sat

import (
	"bytes"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// minisatSolver exchanges the formula and the model through files, since minisat writes no model to standard output
type minisatSolver struct {
	logger logrus.FieldLogger
}

func NewMinisatSolver(logger logrus.FieldLogger) SATSolver {
	return &minisatSolver{logger: logger}
}

func (solver *minisatSolver) Solve(sat SAT) (SATSolution, error) {
	directory, err := os.MkdirTemp("", "minisat-*")
	if err != nil {
		return nil, errors.Wrap(err, "cannot create working directory")
	}
	defer func() {
		if err := os.RemoveAll(directory); err != nil {
			solver.logger.WithError(err).Warnf("cannot remove working directory %v", directory)
		}
	}()

	inputPath, outputPath := filepath.Join(directory, "formula.cnf"), filepath.Join(directory, "model.txt")
	if err := os.WriteFile(inputPath, []byte(sat.ToDIMACS()), 0o600); err != nil {
		return nil, errors.Wrap(err, "cannot write formula")
	}

	minisatPath := getExecutablePath(func(config Config) string { return config.MinisatPath })
	cmd := exec.Command(minisatPath, "-verb=0", inputPath, outputPath)
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err = cmd.Run()
	switch cmd.ProcessState.ExitCode() {
	case exitSatisfiable:
	case exitUnsatisfiable:
		return nil, nil
	default:
		if err == nil {
			err = errors.New("unexpected exit status")
		}
		return nil, errors.Wrapf(err, "minisat failed: %v", stdErr.String())
	}

	output, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read model")
	}
	solution := parseMinisatModel(string(output))
	if solution == nil {
		return nil, errors.Errorf("minisat reported SAT but wrote no model to %v", outputPath)
	}
	return solution, nil
}

// parseMinisatModel reads the result file: "SAT" on the first line, the 0-terminated model on the second.
// Returns nil when the file holds no model
func parseMinisatModel(output string) SATSolution {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "SAT" {
		return nil
	}
	solution := lo.Map(strings.Fields(lines[1]), func(valueStr string, _ int) int64 {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			log.Panicf("invalid literal in minisat model: %v", err)
		}
		return value
	})
	return lo.Filter(solution, func(value int64, _ int) bool { return value != 0 })
}
