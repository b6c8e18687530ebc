package shell

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/export"
	"github.com/gogpu/ggplot/plot"
)

func run(t *testing.T, fs afero.Fs, answers ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	p := plot.New(plot.WithExporter(export.New(export.WithFs(fs))))
	sh := New(NewLinePrompter(in, &out), &out, p)
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func exists(t *testing.T, fs afero.Fs, name string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, name)
	require.NoError(t, err)
	return ok
}

func TestFunctionSession(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := run(t, fs, "1", "x^2", "-2", "2", "1", "")

	assert.Contains(t, out, "Enter function f(x) = ")
	assert.Contains(t, out, "Enter output filename (default: output.svg): ")
	assert.Contains(t, out, "Function plotted successfully and saved as 'output.svg'")
	assert.True(t, exists(t, fs, "output.svg"))
}

func TestEquationSession(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := run(t, fs, "2", "x^2 + y^2 = 1", "-2", "2", "-2", "2", "2", "circle")

	assert.Contains(t, out, "Equation plotted successfully and saved as 'circle.pdf'")
	assert.True(t, exists(t, fs, "circle.pdf"))
}

func TestInvalidChoicesReprompt(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := run(t, fs, "3", "1", "x", "0", "1", "svg", "1", "")

	assert.Equal(t, 2, strings.Count(out, invalidChoice))
	assert.Contains(t, out, "saved as 'output.svg'")
}

func TestErrorsRestart(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := run(t, fs,
		"1", "x^^2",
		"1", "x", "5", "1",
		"1", "x", "abc",
		"1", "x", "0", "1", "1", "")

	assert.Equal(t, 3, strings.Count(out, "Please try again."))
	assert.Contains(t, out, `Error: expr: invalid expression "x^^2"`)
	assert.Contains(t, out, "minimum x value must be less than maximum x value")
	assert.Contains(t, out, `could not convert "abc" to a number`)
	assert.Contains(t, out, "saved as 'output.svg'")
}

func TestEOFExits(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := run(t, fs, "1", "x")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
	assert.False(t, exists(t, fs, "output.svg"))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sh := New(NewLinePrompter(strings.NewReader(""), io.Discard), io.Discard, plot.New())
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

func TestLinePrompterLastLine(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("  answer  "), &out)
	got, err := p.Prompt(context.Background(), "? ")
	require.NoError(t, err)
	assert.Equal(t, "answer", got)
	assert.Equal(t, "? ", out.String())

	_, err = p.Prompt(context.Background(), "? ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLinePrompterCanceledWhileReading(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewLinePrompter(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Prompt(ctx, "? ")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrInterrupted)
	case <-time.After(5 * time.Second):
		t.Fatal("Prompt did not return after cancel")
	}
}

func TestInterruptedSessionExits(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	var out bytes.Buffer
	sh := New(NewLinePrompter(r, &out), &out, plot.New())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, sh.Run(ctx))
	assert.True(t, strings.HasSuffix(out.String(), "Exiting...\n"))
}

func TestPromptModel(t *testing.T) {
	var m tea.Model = newPromptModel("f(x) = ")
	for _, r := range "x+1" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Contains(t, m.View(), "f(x) = ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	pm := m.(promptModel)
	assert.True(t, pm.done)
	assert.Equal(t, "x+1", pm.input.Value())
	assert.Empty(t, pm.View())

	m, _ = tea.Model(newPromptModel("? ")).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.(promptModel).interrupted)
}
