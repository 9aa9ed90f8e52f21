package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/search"
)

func TestDefault(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Validate())
	assert.Len(t, p.Runs, len(generate.Algorithms()))
	for _, r := range p.Runs {
		assert.Equal(t, 25, r.Width)
		assert.Equal(t, 19, r.Height)
		assert.Len(t, r.Solvers, len(search.Algorithms()))
	}
}

const planYAML = `
seed: 99
repeats: 2
log_level: debug
runs:
  - width: 11
    height: 9
    generator: Binary_Tree
    solvers: [BFS, A_star]
`

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planYAML), 0o600))

	p, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, int64(99), p.Seed)
	assert.Equal(t, 2, p.Repeats)
	require.Len(t, p.Runs, 1)

	gen, solvers, err := p.Runs[0].Resolve()
	require.NoError(t, err)
	assert.Equal(t, generate.BinaryTree, gen)
	assert.Equal(t, []search.Algorithm{search.BFS, search.AStar}, solvers)

	lvl, err := p.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoad_EmptyPath(t *testing.T) {
	p, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *p)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_UnknownField(t *testing.T) {
	p := config.Default()
	err := config.Decode(strings.NewReader("seeds: 3\n"), &p)
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	p := config.Default()
	require.NoError(t, config.Decode(strings.NewReader(""), &p))
	assert.Equal(t, config.Default(), p)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*config.Plan)
	}{
		{"ZeroRepeats", func(p *config.Plan) { p.Repeats = 0 }},
		{"BadLevel", func(p *config.Plan) { p.LogLevel = "loud" }},
		{"NoRuns", func(p *config.Plan) { p.Runs = nil }},
		{"EvenWidth", func(p *config.Plan) { p.Runs[0].Width = 10 }},
		{"TooSmall", func(p *config.Plan) { p.Runs[0].Height = 3 }},
		{"BadGenerator", func(p *config.Plan) { p.Runs[0].Generator = "Eller" }},
		{"BadSolver", func(p *config.Plan) { p.Runs[0].Solvers = []string{"IDA*"} }},
		{"NoSolvers", func(p *config.Plan) { p.Runs[0].Solvers = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := config.Default()
			tc.mut(&p)
			assert.ErrorIs(t, p.Validate(), config.ErrInvalidRun)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(config.EnvSeed, "1234")
	t.Setenv(config.EnvRepeats, "7")
	t.Setenv(config.EnvLogLevel, "warn")

	p := config.Default()
	require.NoError(t, p.ApplyEnv())
	assert.Equal(t, int64(1234), p.Seed)
	assert.Equal(t, 7, p.Repeats)
	assert.Equal(t, "warn", p.LogLevel)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv(config.EnvRepeats, "many")
	p := config.Default()
	assert.ErrorIs(t, p.ApplyEnv(), config.ErrInvalidRun)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAZE_SEED=77\n"), 0o600))
	t.Setenv(config.EnvSeed, "")
	require.NoError(t, os.Unsetenv(config.EnvSeed))

	require.NoError(t, config.LoadDotEnv(envFile))
	p := config.Default()
	require.NoError(t, p.ApplyEnv())
	assert.Equal(t, int64(77), p.Seed)

	assert.NoError(t, config.LoadDotEnv(filepath.Join(dir, "missing.env")))
}
