package controller

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/jsonreader/internal/domain"
	m "github.com/mouse-blink/jsonreader/internal/model"
)

const windowTitle = "JSON Reader"

// Lines used around the output viewport: title, button, checkbox, help
// and the two border rows.
const windowChrome = 6

const (
	defaultWidth  = 80
	defaultHeight = 24
	minOutputRows = 3
)

var jsonTypes = []string{".json"}

var (
	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).
		Bold(true).
		Padding(0, 2)

	outputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6"))

	checkboxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type windowState int

const (
	stateIdle windowState = iota
	stateAwaitingFileChoice
)

// windowModel is the main window: a load button, a read-only output area
// and the clear-on-load checkbox.
type windowModel struct {
	workflow    domain.Workflow
	keys        keyMap
	help        help.Model
	picker      filepicker.Model
	output      viewport.Model
	state       windowState
	clearOnLoad bool
	allFiles    bool
	status      string
	width       int
	height      int
}

func newWindowModel(wf domain.Workflow, cfg Config) windowModel {
	keys := newKeyMap()

	picker := filepicker.New()
	picker.CurrentDirectory = cfg.startDir
	picker.AllowedTypes = jsonTypes
	picker.AutoHeight = true
	picker.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "back"),
	)

	wm := windowModel{
		workflow:    wf,
		keys:        keys,
		help:        help.New(),
		picker:      picker,
		output:      viewport.New(defaultWidth, defaultHeight),
		state:       stateIdle,
		clearOnLoad: cfg.clearOnLoad,
	}

	return wm.resize(defaultWidth, defaultHeight)
}

func (wm windowModel) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

func (wm windowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wm = wm.resize(msg.Width, msg.Height)

		var cmd tea.Cmd

		wm.picker, cmd = wm.picker.Update(msg)

		return wm, cmd

	case tea.KeyMsg:
		if key.Matches(msg, wm.keys.ForceQuit) {
			return wm, tea.Quit
		}

		if wm.state == stateAwaitingFileChoice {
			return wm.updatePicker(msg)
		}

		return wm.handleIdleKey(msg)
	}

	// directory listings and picker errors
	var cmd tea.Cmd

	wm.picker, cmd = wm.picker.Update(msg)

	return wm, cmd
}

func (wm windowModel) handleIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, wm.keys.Quit):
		return wm, tea.Quit

	case key.Matches(msg, wm.keys.Load):
		wm.state = stateAwaitingFileChoice
		wm.status = ""
		wm.picker.Path = ""

		return wm, wm.picker.Init()

	case key.Matches(msg, wm.keys.ToggleClear):
		wm.clearOnLoad = !wm.clearOnLoad

		return wm, nil
	}

	var cmd tea.Cmd

	wm.output, cmd = wm.output.Update(msg)

	return wm, cmd
}

func (wm windowModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, wm.keys.Cancel):
		wm.state = stateIdle
		wm.status = ""

		return wm, nil

	case key.Matches(msg, wm.keys.ToggleFilter):
		wm.allFiles = !wm.allFiles
		if wm.allFiles {
			wm.picker.AllowedTypes = nil
		} else {
			wm.picker.AllowedTypes = jsonTypes
		}

		return wm, nil
	}

	var cmd tea.Cmd

	wm.picker, cmd = wm.picker.Update(msg)

	if didSelect, path := wm.picker.DidSelectFile(msg); didSelect && path != "" {
		return wm.load(m.Path(path)), cmd
	}

	if didSelect, _ := wm.picker.DidSelectDisabledFile(msg); didSelect {
		wm.picker.Path = ""
		wm.status = "Not a JSON file, press tab to show all files"
	}

	return wm, cmd
}

// load runs the workflow with the clear toggle as it is right now and
// returns to the idle state.
func (wm windowModel) load(path m.Path) windowModel {
	wm.workflow.Load(path, wm.clearOnLoad)

	wm.output.SetContent(wm.workflow.Text())
	wm.output.GotoBottom()

	wm.picker.Path = ""
	wm.status = ""
	wm.state = stateIdle

	return wm
}

func (wm windowModel) resize(width, height int) windowModel {
	wm.width = width
	wm.height = height
	wm.help.Width = width

	wm.output.Width = max(width-2, 1)
	wm.output.Height = max(height-windowChrome, minOutputRows)

	return wm
}

func (wm windowModel) View() string {
	if wm.state == stateAwaitingFileChoice {
		return wm.pickerView()
	}

	checkbox := "[ ] Clear text on opening file"
	if wm.clearOnLoad {
		checkbox = "[x] Clear text on opening file"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(windowTitle),
		buttonStyle.Render("Load JSON"),
		outputStyle.Render(wm.output.View()),
		checkboxStyle.Render(checkbox),
		wm.help.ShortHelpView(wm.keys.idleHelp()),
	)
}

func (wm windowModel) pickerView() string {
	filter := "JSON Files (*.json)"
	if wm.allFiles {
		filter = "All Files (*.*)"
	}

	parts := []string{
		titleStyle.Render("Open JSON"),
		filterStyle.Render(filter) + "  " + wm.picker.CurrentDirectory,
		wm.picker.View(),
	}

	if wm.status != "" {
		parts = append(parts, statusStyle.Render(wm.status))
	}

	parts = append(parts, wm.help.ShortHelpView(wm.keys.pickerHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
