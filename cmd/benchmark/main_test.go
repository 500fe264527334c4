package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("00:01:01.12"))
	assert.Equal(t, int64(60*60*1000+60*1000+1000+120), parseDuration("01:01:01.12"))
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("1:01.12"))
	assert.Equal(t, int64(120), parseDuration("0:00.12"))
	assert.Equal(t, int64(120), parseDuration("00:00:00.12"))
}

func TestParseTimeReport(t *testing.T) {
	// Arrange
	output := "\tCommand being timed: \"../../bin/soma solve --solver gini\"\n" +
		"\tPercent of CPU this job got: 99%\n" +
		"\tElapsed (wall clock) time (h:mm:ss or m:ss): 0:02.50\n" +
		"\tMaximum resident set size (kbytes): 2048\n" +
		"\tExit status: 10\n"

	// Act
	report, err := parseTimeReport(output)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2500), report.Duration)
	assert.Equal(t, float32(2), report.Memory)
	assert.Equal(t, int64(99), report.CpuPercentage)
}

func TestParseTimeReportMissingLine(t *testing.T) {
	_, err := parseTimeReport("\tPercent of CPU this job got: 99%\n")
	assert.Error(t, err)
}

func TestBenchmarkCaseName(t *testing.T) {
	assert.Equal(t, "soma", benchmarkCase{}.name())
	assert.Equal(t, "tromino_slab", benchmarkCase{Puzzle: "../../test/puzzles/tromino_slab.json"}.name())
}
