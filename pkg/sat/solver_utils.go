package sat

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ConfigPath = "../../config.json"

// Config holds the executable paths of the external solvers
type Config struct {
	KissatPath  string `mapstructure:"kissatPath"`
	CadicalPath string `mapstructure:"cadicalPath"`
	MinisatPath string `mapstructure:"minisatPath"`
}

// Defaults used when config.json is missing or leaves a path empty
var defaultConfig = Config{
	KissatPath:  "kissat",
	CadicalPath: "cadical",
	MinisatPath: "minisat",
}

// LoadConfig reads the solver configuration stored at path
func LoadConfig(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot read config file %v", path)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, errors.Wrapf(err, "cannot parse config file %v", path)
	}

	config := defaultConfig
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return Config{}, errors.Wrap(err, "cannot decode solver config")
	}
	return config, nil
}

func getExecutablePath(selector func(Config) string) string {
	config, err := LoadConfig(ConfigPath)
	if err != nil {
		return selector(defaultConfig)
	}
	if path := selector(config); path != "" {
		return path
	}
	return selector(defaultConfig)
}

// parseSolution extracts the literals of every "v" line of a competition-format output
func parseSolution(solverOutput string) SATSolution {
	values := lo.Map(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 0 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Fields(line[1:])...)
			},
			[]string{},
		),
		func(valueStr string, _ int) int64 {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value
		},
	)
	return lo.Filter(values, func(value int64, _ int) bool { return value != 0 })
}
