package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/samples"
	"github.com/katalvlaran/pipeloop/trace"
)

// execute runs a fresh root command with args and captures its output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeFile stores content in a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolve_BuiltInSample(t *testing.T) {
	out, errOut, err := execute(t, "solve")
	require.NoError(t, err)
	assert.Equal(t, "farthest=8\n", out)
	assert.Contains(t, errOut, `"level":"warn"`)
	assert.Contains(t, errOut, "built-in sample")

	out, _, err = execute(t, "solve", "--part2")
	require.NoError(t, err)
	assert.Equal(t, "interior=1\n", out)
}

func TestSolve_File(t *testing.T) {
	path := writeFile(t, "dense.txt", samples.Dense)

	out, errOut, err := execute(t, "solve", "-o", path, "--part2")
	require.NoError(t, err)
	assert.Equal(t, "interior=10\n", out)
	assert.NotContains(t, errOut, "built-in sample")

	out, _, err = execute(t, "solve", "--open", writeFile(t, "squeeze.txt", samples.Squeeze))
	require.NoError(t, err)
	assert.Equal(t, "farthest=22\n", out)
}

func TestSolve_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "solve", "-o", filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open input")
	})

	t.Run("invalid symbol", func(t *testing.T) {
		_, _, err := execute(t, "solve", "-o", writeFile(t, "bad.txt", samples.Invalid))
		assert.True(t, errors.Is(err, gridgraph.ErrInvalidTile), "error = %v", err)
	})

	t.Run("ambiguous entry", func(t *testing.T) {
		_, _, err := execute(t, "solve", "-o", writeFile(t, "amb.txt", samples.Ambiguous))
		assert.True(t, errors.Is(err, trace.ErrAmbiguousEntry), "error = %v", err)
	})

	t.Run("broken loop", func(t *testing.T) {
		out, _, err := execute(t, "solve", "-o", writeFile(t, "broken.txt", samples.Broken))
		assert.True(t, errors.Is(err, trace.ErrMalformedLoop), "error = %v", err)
		assert.Empty(t, out)
	})

	t.Run("unexpected argument", func(t *testing.T) {
		_, _, err := execute(t, "solve", "extra")
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := execute(t, "solve", "--log-level", "loud")
		var ve config.ValidationError
		require.True(t, errors.As(err, &ve), "error = %v", err)
		assert.Equal(t, "log_level", ve.Field)
	})
}

func TestSolve_Verbose(t *testing.T) {
	_, errOut, err := execute(t, "solve", "-v")
	require.NoError(t, err)
	assert.Equal(t, 16, strings.Count(errOut, `"message":"visit"`))
	assert.Contains(t, errOut, `"message":"loop traced"`)
	assert.Contains(t, errOut, `"message":"solved"`)
}

func TestSolve_SampleNoticeFollowsLogLevel(t *testing.T) {
	out, errOut, err := execute(t, "solve", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "farthest=8\n", out)
	assert.Empty(t, errOut)
}

func TestSolve_QuietByDefault(t *testing.T) {
	_, errOut, err := execute(t, "solve", "-o", writeFile(t, "square.txt", samples.Square))
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestSolve_ConfigFile(t *testing.T) {
	grid := writeFile(t, "large.txt", samples.Large)
	cfgPath := writeFile(t, "pipeloop.yaml", "input: "+grid+"\npart: 2\n")

	out, _, err := execute(t, "solve", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "interior=8\n", out)

	// an explicit flag wins over the file
	out, _, err = execute(t, "solve", "--config", cfgPath, "-o", writeFile(t, "square.txt", samples.Square))
	require.NoError(t, err)
	assert.Equal(t, "interior=0\n", out)
}

func TestSolve_Environment(t *testing.T) {
	t.Setenv(config.EnvInput, writeFile(t, "simple.txt", samples.Simple))
	t.Setenv(config.EnvPart, "2")

	out, _, err := execute(t, "solve")
	require.NoError(t, err)
	assert.Equal(t, "interior=1\n", out)
}

func TestSolve_MaxSteps(t *testing.T) {
	t.Setenv(config.EnvMaxSteps, "10")
	_, _, err := execute(t, "solve")
	assert.True(t, errors.Is(err, trace.ErrMalformedLoop), "error = %v", err)
}

func TestRender(t *testing.T) {
	out, _, err := execute(t, "render", "-o", writeFile(t, "squeeze.txt", samples.Squeeze))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "O│II││II│O", lines[6])
	assert.Equal(t, "O││oooo││O", lines[3])

	out, _, err = execute(t, "render")
	require.NoError(t, err)
	assert.Equal(t, "OO┌┐O\nO┌┘│O\n┌┘I└┐\n│┌──┘\n└┘OOO\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "pipeloop version dev\n", out)
}
