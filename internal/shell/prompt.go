package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrInterrupted is returned by a Prompter when the user cancels with
// Ctrl-C or Esc.
var ErrInterrupted = errors.New("shell: interrupted")

// Prompter asks for one line of input. It returns io.EOF when input ends
// and ErrInterrupted when the user cancels or ctx is done.
type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
}

// NewPrompter returns a TeaPrompter when in is a terminal and a
// LinePrompter otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return NewTeaPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads newline-terminated answers.
type LinePrompter struct {
	r     *bufio.Reader
	w     io.Writer
	start sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLinePrompter prompts on w and reads from r.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w, lines: make(chan lineResult)}
}

// Prompt writes label and returns the next line without surrounding
// whitespace. A final line without a newline is still returned. The read
// happens on a separate goroutine so that a done ctx ends the wait even
// when r blocks.
func (p *LinePrompter) Prompt(ctx context.Context, label string) (string, error) {
	p.start.Do(func() { go p.read() })
	fmt.Fprint(p.w, label)
	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return strings.TrimSpace(res.line), nil
			}
			return "", res.err
		}
		return strings.TrimSpace(res.line), nil
	}
}

// read feeds lines to Prompt until r fails. It blocks on each send, so at
// most one line is read ahead of the prompts.
func (p *LinePrompter) read() {
	defer close(p.lines)
	for {
		line, err := p.r.ReadString('\n')
		p.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// TeaPrompter edits each answer in a bubbles text input.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter runs its inputs on the given terminal streams.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Prompt shows label followed by an input field and returns the submitted
// text. The answered prompt is left on screen.
func (p *TeaPrompter) Prompt(ctx context.Context, label string) (string, error) {
	prog := tea.NewProgram(newPromptModel(label),
		tea.WithContext(ctx), tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	m := final.(promptModel)
	if m.interrupted {
		return "", ErrInterrupted
	}
	value := strings.TrimSpace(m.input.Value())
	fmt.Fprintln(p.out, label+value)
	return value, nil
}

type promptModel struct {
	label       string
	input       textinput.Model
	done        bool
	interrupted bool
}

func newPromptModel(label string) promptModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()
	return promptModel{label: label, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.interrupted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.interrupted {
		return ""
	}
	return m.label + m.input.View()
}
