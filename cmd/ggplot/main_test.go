package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/expr"
	"github.com/gogpu/ggplot/internal/config"
	"github.com/gogpu/ggplot/sample"
)

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdFs(fs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFunctionCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := execute(t, fs, "function", "x^2", "--xmin", "-2", "--xmax", "2")
	require.NoError(t, err)
	assert.Equal(t, "Function plotted successfully and saved as 'output.svg'\n", out)

	ok, err := afero.Exists(fs, "output.svg")
	require.NoError(t, err)
	assert.True(t, ok)

	out, err = execute(t, fs, "function", "x^2", "--legend", "lower left", "--color", "75")
	require.NoError(t, err)
	assert.Contains(t, out, "output_1.svg")
}

func TestEquationCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := execute(t, fs, "equation", "x^2 + y^2 = 1",
		"--xmin", "-2", "--xmax", "2", "--ymin", "-2", "--ymax", "2",
		"-f", "pdf", "-o", "circle", "--shade")
	require.NoError(t, err)
	assert.Contains(t, out, "saved as 'circle.pdf'")
}

func TestCommandErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := execute(t, fs, "function", "x^^2")
	assert.ErrorIs(t, err, expr.ErrInvalidExpression)

	_, err = execute(t, fs, "function", "x", "--xmin", "3", "--xmax", "1")
	assert.ErrorIs(t, err, sample.ErrInvalidRange)

	_, err = execute(t, fs, "function", "x", "--color", "blue")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, fs, "function", "x", "-f", "png")
	assert.ErrorIs(t, err, config.ErrInvalid)

	ok, err := afero.Exists(fs, "output.svg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfigInitAndShow(t *testing.T) {
	fs := afero.NewMemMapFs()
	const path = "/etc/ggplot.toml"

	out, err := execute(t, fs, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	_, err = execute(t, fs, "--config", path, "config", "init")
	assert.ErrorIs(t, err, config.ErrExists)

	out, err = execute(t, fs, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "format = 'svg'")
	assert.Contains(t, out, "legend = 'auto'")
}

func TestSyntaxRaw(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "syntax", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# Expression syntax")
	assert.Contains(t, out, "`sqrt`")
	assert.Contains(t, out, "`pi`")
}

func TestInteractiveEOF(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting...")
}
