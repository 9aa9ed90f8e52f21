// Package config loads the benchmark run plan from YAML, .env files and
// MAZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/search"
)

// ErrInvalidRun indicates a plan field that cannot be executed.
var ErrInvalidRun = errors.New("config: invalid run")

// Environment variables consulted by ApplyEnv.
const (
	EnvSeed     = "MAZE_SEED"
	EnvRepeats  = "MAZE_REPEATS"
	EnvLogLevel = "MAZE_LOG_LEVEL"
)

// DefaultWidth and DefaultHeight are the size of a fresh maze on startup.
const (
	DefaultWidth  = 25
	DefaultHeight = 19
)

// Run is one maze configuration: a size, a generator and the solvers to
// race on it.
type Run struct {
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Generator string   `yaml:"generator"`
	Solvers   []string `yaml:"solvers"`
}

// Plan is a full benchmark session.
type Plan struct {
	Seed     int64  `yaml:"seed"`
	Repeats  int    `yaml:"repeats"`
	LogLevel string `yaml:"log_level"`
	Runs     []Run  `yaml:"runs"`
}

// Default returns one 25×19 run per generator, each raced by every solver.
func Default() Plan {
	solvers := make([]string, 0, 5)
	for _, s := range search.Algorithms() {
		solvers = append(solvers, string(s))
	}
	p := Plan{Seed: 1, Repeats: 5, LogLevel: "info"}
	for _, g := range generate.Algorithms() {
		p.Runs = append(p.Runs, Run{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Generator: string(g),
			Solvers:   append([]string(nil), solvers...),
		})
	}
	return p
}

// Load reads a plan file. An empty path yields Default(). Fields missing
// from the file keep their default values, except runs, which replace the
// defaults when present.
func Load(path string) (*Plan, error) {
	p := Default()
	if path == "" {
		return &p, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if err := Decode(file, &p); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &p, nil
}

// Decode reads YAML from r into p.
func Decode(r io.Reader, p *Plan) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadDotEnv loads the given .env files (".env" when none) into the process
// environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides seed, repeats and log level from MAZE_* variables.
func (p *Plan) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidRun, EnvSeed, v)
		}
		p.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvRepeats); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidRun, EnvRepeats, v)
		}
		p.Repeats = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		p.LogLevel = v
	}
	return nil
}

// Level parses LogLevel; an empty value means info.
func (p Plan) Level() (zapcore.Level, error) {
	if p.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(p.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: log_level %q", ErrInvalidRun, p.LogLevel)
	}
	return lvl, nil
}

// Validate checks repeats, the log level and every run.
func (p Plan) Validate() error {
	if p.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be positive, got %d", ErrInvalidRun, p.Repeats)
	}
	if _, err := p.Level(); err != nil {
		return err
	}
	if len(p.Runs) == 0 {
		return fmt.Errorf("%w: no runs", ErrInvalidRun)
	}
	for i, r := range p.Runs {
		if _, _, err := r.Resolve(); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	return nil
}

// Resolve validates the run and returns its parsed algorithms.
func (r Run) Resolve() (generate.Algorithm, []search.Algorithm, error) {
	if r.Width < generate.MinSize || r.Height < generate.MinSize || r.Width%2 == 0 || r.Height%2 == 0 {
		return "", nil, fmt.Errorf("%w: size %dx%d must be odd and at least %d",
			ErrInvalidRun, r.Width, r.Height, generate.MinSize)
	}
	gen, err := generate.ParseAlgorithm(r.Generator)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidRun, err)
	}
	if len(r.Solvers) == 0 {
		return "", nil, fmt.Errorf("%w: no solvers for %s", ErrInvalidRun, gen)
	}
	solvers := make([]search.Algorithm, 0, len(r.Solvers))
	for _, name := range r.Solvers {
		s, err := search.ParseAlgorithm(name)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrInvalidRun, err)
		}
		solvers = append(solvers, s)
	}
	return gen, solvers, nil
}
