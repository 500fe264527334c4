package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	executablePath  = "../../bin/soma"
	puzzleDirectory = "../../test/puzzles"
	resultsFile     = "benchmark_results.csv"
	defaultPuzzle   = "soma"
)

var (
	// In-process engines are always available, the rest are looked up in PATH
	inProcessSolvers = []string{"gini", "gophersat"}
	externalSolvers  = []string{"kissat", "cadical", "minisat"}
	limits           = []int{1, 10, 100}

	logger = logrus.New()
)

type benchmarkCase struct {
	Solver string
	Puzzle string // Path to a puzzle file, empty for the built-in Soma cube
	Limit  int
}

// timeReport holds the figures of interest printed by GNU time in verbose mode
type timeReport struct {
	Duration      int64   // Milliseconds
	Memory        float32 // Megabytes
	CpuPercentage int64
}

type benchmarkResult struct {
	benchmarkCase
	timeReport
	Satisfiable bool
}

func main() {
	solvers := append(inProcessSolvers, lo.Filter(externalSolvers, func(solver string, _ int) bool {
		if _, err := exec.LookPath(solver); err != nil {
			logger.WithField("solver", solver).Warn("solver not found in PATH, skipping")
			return false
		}
		return true
	})...)

	cases := make([]benchmarkCase, 0)
	for _, puzzle := range puzzles() {
		for _, solver := range solvers {
			for _, limit := range limits {
				cases = append(cases, benchmarkCase{Solver: solver, Puzzle: puzzle, Limit: limit})
			}
		}
	}

	results := lo.Map(cases, func(benchmark benchmarkCase, _ int) benchmarkResult {
		logger.WithFields(logrus.Fields{
			"puzzle": benchmark.name(),
			"solver": benchmark.Solver,
			"limit":  benchmark.Limit,
		}).Info("benchmarking")
		return run(benchmark)
	})

	if err := writeCsv(resultsFile, results); err != nil {
		logger.Fatal(err)
	}
}

func puzzles() []string {
	files, err := filepath.Glob(filepath.Join(puzzleDirectory, "*.json"))
	if err != nil {
		logger.Fatal(err)
	}
	return append([]string{""}, files...)
}

func (benchmark benchmarkCase) name() string {
	if benchmark.Puzzle == "" {
		return defaultPuzzle
	}
	return strings.TrimSuffix(filepath.Base(benchmark.Puzzle), ".json")
}

func (benchmark benchmarkCase) args() []string {
	args := []string{
		"-v", executablePath, "solve",
		"--solver", benchmark.Solver,
		"--limit", strconv.Itoa(benchmark.Limit),
		"--out", os.DevNull,
		"--log-level", "warn",
	}
	if benchmark.Puzzle != "" {
		args = append(args, "--file", benchmark.Puzzle)
	}
	return args
}

func run(benchmark benchmarkCase) benchmarkResult {
	cmd := exec.Command("/usr/bin/time", benchmark.args()...)
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	_ = cmd.Run() // soma exits with 10 or 20 on success, so the error is judged by the exit code
	exitCode := cmd.ProcessState.ExitCode()
	if exitCode != 10 && exitCode != 20 {
		logger.Fatalf("soma failed on puzzle %q with solver %q and limit %d: %v", benchmark.name(), benchmark.Solver, benchmark.Limit, stdErr.String())
	}

	report, err := parseTimeReport(stdErr.String())
	if err != nil {
		logger.Fatal(err)
	}
	return benchmarkResult{benchmarkCase: benchmark, timeReport: report, Satisfiable: exitCode == 10}
}

// parseTimeReport extracts the wall clock, peak memory and CPU share from GNU time's verbose output
func parseTimeReport(output string) (timeReport, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		// Values follow the last ": ", the wall clock label itself contains colons
		if index := strings.LastIndex(line, ": "); index >= 0 {
			fields[strings.ToLower(strings.TrimSpace(line[:index]))] = strings.TrimSpace(line[index+2:])
		}
	}

	lookup := func(prefix string) (string, error) {
		for label, value := range fields {
			if strings.HasPrefix(label, prefix) {
				return value, nil
			}
		}
		return "", errors.Errorf("time output has no %q line", prefix)
	}

	var report timeReport
	wallClock, err := lookup("elapsed (wall clock)")
	if err != nil {
		return report, err
	}
	memory, err := lookup("maximum resident set size")
	if err != nil {
		return report, err
	}
	cpu, err := lookup("percent of cpu")
	if err != nil {
		return report, err
	}

	report.Duration = parseDuration(wallClock)
	report.Memory = float32(lo.Must(strconv.ParseFloat(memory, 32))) / 1024
	report.CpuPercentage = int64(lo.Must(strconv.Atoi(strings.TrimSuffix(cpu, "%"))))
	return report, nil
}

// parseDuration converts h:mm:ss.cc or m:ss.cc into milliseconds
func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	if len(parts) < 2 || len(parts) > 3 {
		logger.Fatalf("unexpected duration format: %v", durationStr)
	}

	secondsParts := strings.Split(parts[len(parts)-1], ".")
	milliseconds := int64(lo.Must(strconv.Atoi(secondsParts[0]))) * 1000
	if len(secondsParts) == 2 {
		milliseconds += int64(lo.Must(strconv.Atoi(secondsParts[1]))) * 10
	}

	// Hours and minutes, most significant first
	multiplier := int64(60 * 1000)
	for i := len(parts) - 2; i >= 0; i-- {
		milliseconds += int64(lo.Must(strconv.Atoi(parts[i]))) * multiplier
		multiplier *= 60
	}
	return milliseconds
}

func writeCsv(path string, results []benchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create CSV file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	records := [][]string{{"Solver", "Puzzle", "Limit", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}}
	for _, result := range results {
		records = append(records, []string{
			result.Solver,
			result.name(),
			strconv.Itoa(result.Limit),
			strconv.FormatInt(result.Duration, 10),
			fmt.Sprintf("%.1f", result.Memory),
			strconv.FormatInt(result.CpuPercentage, 10),
			lo.Ternary(result.Satisfiable, "solved", "unsatisfiable"),
		})
	}
	return writer.WriteAll(records)
}
