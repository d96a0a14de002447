package controller

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mouse-blink/jsonreader/internal/domain"
	m "github.com/mouse-blink/jsonreader/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output   io.Writer
	input    io.Reader
	workflow domain.Workflow
	config   Config
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, wf domain.Workflow, options ...Option) *TUI {
	return &TUI{output: output, workflow: wf, config: newConfig(options...)}
}

// Run shows the window until the user quits. A non-empty path is loaded
// before the window opens.
func (t *TUI) Run(path m.Path) error {
	model := newWindowModel(t.workflow, t.config)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if path != "" {
		model = model.load(path)
	}

	return t.run(model)
}

func (t *TUI) run(model tea.Model) error {
	options := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.input != nil {
		options = append(options, tea.WithInput(t.input))
	}

	program := tea.NewProgram(model, options...)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
