package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path"
	"slices"
	"strings"

	"github.com/limaJavier/somacube/pkg/model"
	"github.com/limaJavier/somacube/pkg/sat"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes follow the SAT competition convention
const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

var (
	logger = logrus.New()

	inputPath  string
	configPath string
	logLevel   string

	solvers = map[string]func() sat.SATSolver{
		"gini":      sat.NewGiniSolver,
		"gophersat": sat.NewGophersatSolver,
		"kissat":    sat.NewKissatSolver,
		"cadical":   sat.NewCadicalSolver,
		"minisat":   func() sat.SATSolver { return sat.NewMinisatSolver(logger) },
	}
)

// exitStatus ends a command with a process status once its deferred calls have run
type exitStatus int

func (status exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(status))
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		var status exitStatus
		if errors.As(err, &status) {
			os.Exit(int(status))
		}
		logger.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "soma",
		Short:         "Encode the Soma cube as a SAT instance and enumerate its solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			logger.SetOutput(os.Stderr)
			setConfigPath()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&inputPath, "file", "", "Path to a puzzle JSON file; if empty, the Soma cube is used")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to the solvers' config.json; if empty, the one next to the executable is used")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (panic, fatal, error, warn, info, debug, trace)")

	root.AddCommand(newEncodeCommand(), newSolveCommand(), newExcerptCommand())
	return root
}

func newEncodeCommand() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Write the exact-cover formula in DIMACS-CNF format",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoding, err := encode()
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"variables": encoding.Instance.Variables,
				"clauses":   len(encoding.Instance.Clauses),
			}).Info("formula built")

			return write(outFile, []byte(encoding.Instance.ToDIMACS()))
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "Path to the file where the formula will be written; if empty, it'll be written into the Standard Output")
	return cmd
}

func newSolveCommand() *cobra.Command {
	var (
		solverStr string
		limit     int
		outFile   string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Enumerate solutions and write them as (cell, color) assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			solverStr = strings.ToLower(solverStr)
			validSolvers := lo.Keys(solvers)
			slices.Sort(validSolvers)
			if !slices.Contains(validSolvers, solverStr) {
				return errors.Errorf("%v is not a valid solver, allowed values are: %v", solverStr, strings.Join(validSolvers, ", "))
			} else if limit < 0 {
				return errors.Errorf("limit must not be negative: %v", limit)
			}

			input, err := readInput()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return solve(ctx, solvers[solverStr](), solverStr, limit, input, outFile)
		},
	}
	cmd.Flags().StringVar(&solverStr, "solver", "gini", "SAT-Solver to use: gini, gophersat, kissat, cadical or minisat")
	cmd.Flags().IntVar(&limit, "limit", 1, "Maximum number of solutions to enumerate; 0 enumerates all of them")
	cmd.Flags().StringVar(&outFile, "out", "", "Path to the file where the solutions will be written as JSON; if empty, they'll be written into the Standard Output")
	return cmd
}

func newExcerptCommand() *cobra.Command {
	var widths int
	cmd := &cobra.Command{
		Use:   "excerpt",
		Short: "Print a LaTeX portion of the formula, one clause per smallest clause width",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoding, err := encode()
			if err != nil {
				return err
			}
			fmt.Print(model.FormulaExcerpt(encoding, widths))
			return nil
		},
	}
	cmd.Flags().IntVar(&widths, "widths", 3, "Number of distinct clause widths to show")
	return cmd
}

// solve enumerates up to limit solutions and writes them as JSON. An interrupted enumeration still writes the solutions found so far
func solve(ctx context.Context, solver sat.SATSolver, solverName string, limit int, input model.PuzzleInput, outFile string) error {
	packer := model.NewSatPacker(solver, limit, logger.WithField("solver", solverName))
	solutions, variables, clauses, err := packer.Build(ctx, input)
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return errors.Wrap(err, "an error occurred while solving the puzzle")
	}

	stats := logger.WithFields(logrus.Fields{"variables": variables, "clauses": clauses, "solutions": len(solutions)})
	if interrupted {
		if len(solutions) == 0 {
			return errors.Wrap(err, "interrupted before any solution was found")
		}
		stats.Warn("enumeration interrupted, writing the solutions found so far")
	} else if len(solutions) == 0 {
		stats.Info("puzzle is not satisfiable")
		return exitStatus(exitUnsatisfiable)
	}

	// Verify solutions' correctness
	for i, solution := range solutions {
		if !packer.Verify(solution, input) {
			return errors.Errorf("solution %d does not cover the volume exactly once", i+1)
		}
	}

	solutionsJson, err := json.Marshal(lo.Map(solutions, func(solution []model.CellAssignment, _ int) []map[string]any {
		return lo.Map(solution, func(assignment model.CellAssignment, _ int) map[string]any {
			return map[string]any{
				"x":     assignment.Cell.X,
				"y":     assignment.Cell.Y,
				"z":     assignment.Cell.Z,
				"piece": input.Pieces[assignment.Piece].Name,
				"color": assignment.Color,
			}
		})
	}))
	if err != nil {
		return errors.Wrap(err, "an error occurred while building output json")
	}
	if err := write(outFile, append(solutionsJson, '\n')); err != nil {
		return err
	}

	stats.Info("puzzle solved")
	return exitStatus(exitSatisfiable)
}

func readInput() (model.PuzzleInput, error) {
	if inputPath == "" {
		return model.DefaultInput(), nil
	}
	input, err := model.InputFromJson(inputPath)
	if err != nil {
		return model.PuzzleInput{}, errors.Wrap(err, "cannot parse input file")
	}
	return input, nil
}

func encode() (*model.Encoding, error) {
	input, err := readInput()
	if err != nil {
		return nil, err
	}
	return model.Encode(input)
}

func write(outFile string, content []byte) error {
	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if err := os.WriteFile(outFile, content, 0666); err != nil {
		return errors.Wrap(err, "an error occurred while writing to the output file")
	}
	return nil
}

func setConfigPath() {
	if configPath != "" {
		sat.ConfigPath = configPath
		return
	}

	execPath, err := os.Executable()
	if err != nil {
		logger.Warnf("cannot determine executable path: %v", err)
		return
	}
	execPath = path.Dir(execPath)

	// Verify config.json exists
	files, err := os.ReadDir(execPath)
	if err != nil {
		logger.Warnf("cannot read executable's directory: %v", err)
		return
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if !slices.Contains(fileNames, "config.json") {
		logger.Debug("config.json file was not found, default solver paths will be used")
		return
	}

	sat.ConfigPath = execPath + "/config.json"
}
