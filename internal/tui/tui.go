package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/tormodhaugland/pl/internal/model"
	"github.com/tormodhaugland/pl/internal/search"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	activePaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 1)

	editingInputStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))

	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle    = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("212")).Bold(true)
	itemStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

const (
	highlightSymbol = "> "
	inputBoxHeight  = 3 // one text row plus borders
)

// Mode is the input mode of the launcher.
type Mode int

const (
	ModeNavigation Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	default:
		return "navigation"
	}
}

// Result is what the launcher hands back once the program exits.
type Result struct {
	Project model.Project
	Open    bool // enter was pressed on Project in navigation mode
}

type Option func(*Model)

// WithPreviewStyle sets the glamour style used for READMEs ("dark",
// "light", "notty", ...).
func WithPreviewStyle(style string) Option {
	return func(m *Model) {
		m.preview.style = style
	}
}

// WithMode sets the starting input mode.
func WithMode(mode Mode) Option {
	return func(m *Model) {
		m.mode = mode
	}
}

// Model is the launcher state: the full project list, the filtered view
// with its selection, the filter input and the exit flags.
type Model struct {
	projects []model.Project
	scroller *projectScroller
	input    textinput.Model
	preview  *previewPane
	help     help.Model
	mode     Mode

	pendingG    bool // first half of the gg chord
	pendingOpen bool
	quitting    bool

	width  int
	height int
}

func New(projects []model.Project, opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "filter projects"
	ti.CharLimit = 256

	m := Model{
		projects: projects,
		scroller: newProjectScroller(search.Filter(projects, ""), 20),
		input:    ti,
		preview:  newPreviewPane("dark"),
		help:     help.New(),
		mode:     ModeEditing,
	}

	for _, opt := range opts {
		opt(&m)
	}

	if m.mode == ModeEditing {
		m.input.Focus()
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		switch m.mode {
		case ModeEditing:
			m, cmd = m.updateEditing(msg)
		default:
			m, cmd = m.updateNavigation(msg)
		}
		m.refreshPreview()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateNavigation handles keys in navigation mode. Unbound keys are
// ignored.
func (m Model) updateNavigation(msg tea.KeyMsg) (Model, tea.Cmd) {
	chord := m.pendingG
	m.pendingG = false

	switch {
	case key.Matches(msg, navKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, navKeys.Open):
		m.pendingOpen = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, navKeys.Filter):
		return m, m.startEditing()

	case key.Matches(msg, navKeys.Down):
		m.scroller.next()

	case key.Matches(msg, navKeys.Up):
		m.scroller.previous()

	case key.Matches(msg, navKeys.Bottom):
		m.scroller.last()

	case key.Matches(msg, navKeys.Top):
		if chord {
			m.scroller.first()
		} else {
			m.pendingG = true
		}

	case key.Matches(msg, navKeys.PreviewDown):
		m.preview.scrollDown()

	case key.Matches(msg, navKeys.PreviewUp):
		m.preview.scrollUp()
	}

	return m, nil
}

// updateEditing handles keys in editing mode. Keys that are not bound to
// navigation or leaving the mode go to the filter input, and the filter is
// recomputed.
func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, editKeys.Done), key.Matches(msg, editKeys.Accept):
		m.stopEditing()
		return m, nil

	case key.Matches(msg, editKeys.Next):
		m.scroller.next()
		return m, nil

	case key.Matches(msg, editKeys.Prev):
		m.scroller.previous()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) startEditing() tea.Cmd {
	m.mode = ModeEditing
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.mode = ModeNavigation
	m.input.Blur()
}

// applyFilter recomputes the filtered list from the input and resets the
// selection to its first item, or None when nothing matches.
func (m *Model) applyFilter() {
	m.scroller.setItems(search.Filter(m.projects, m.input.Value()))
}

func (m *Model) refreshPreview() {
	if m.width == 0 {
		return
	}
	m.preview.show(m.scroller.selected())
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	leftWidth, rightWidth := m.columnWidths()
	bodyHeight := m.bodyHeight()

	// Borders take two columns, padding two more, and textinput draws one
	// cell past its width for the cursor.
	m.input.Width = max(leftWidth-5, 1)
	// List pane: borders and the header row.
	m.scroller.setHeight(max(bodyHeight-inputBoxHeight-3, 0))
	m.preview.setSize(max(rightWidth-4, 0), max(bodyHeight-2, 0))
}

func (m Model) columnWidths() (left, right int) {
	left = m.width / 2
	return left, m.width - left
}

func (m Model) bodyHeight() int {
	return max(m.height-1, 0) // help line
}

// Mode returns the current input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Query returns the current filter text.
func (m Model) Query() string {
	return m.input.Value()
}

// Filtered returns the projects currently shown.
func (m Model) Filtered() []model.Project {
	return m.scroller.items
}

// Selection returns the highlighted row.
func (m Model) Selection() Selection {
	return m.scroller.selection
}

// Result reports whether a project should be opened, and which.
func (m Model) Result() Result {
	if !m.pendingOpen {
		return Result{}
	}
	p, ok := m.scroller.selected()
	if !ok {
		return Result{}
	}
	return Result{Project: p, Open: true}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	leftWidth, rightWidth := m.columnWidths()
	bodyHeight := m.bodyHeight()

	inputPane, listPane, previewPane := paneStyle, paneStyle, paneStyle
	if m.mode == ModeEditing {
		inputPane = activePaneStyle
	} else {
		listPane = activePaneStyle
	}

	inputContent := m.input.View()
	if m.mode == ModeEditing {
		inputContent = editingInputStyle.Width(max(leftWidth-4, 0)).Render(inputContent)
	}

	input := inputPane.Width(max(leftWidth-2, 0)).Render(inputContent)
	list := listPane.
		Width(max(leftWidth-2, 0)).
		Height(max(bodyHeight-inputBoxHeight-2, 0)).
		Render(m.renderList(max(leftWidth-4, 0)))
	preview := previewPane.
		Width(max(rightWidth-2, 0)).
		Height(max(bodyHeight-2, 0)).
		Render(m.preview.view())

	left := lipgloss.JoinVertical(lipgloss.Left, input, list)
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, preview)

	var bindings help.KeyMap = navKeys
	if m.mode == ModeEditing {
		bindings = editKeys
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.help.View(bindings))
}

// renderList renders the header and the visible rows of the filtered list.
func (m Model) renderList(width int) string {
	var sb strings.Builder

	header := "Projects"
	if n := m.scroller.len(); n > 0 {
		i, _ := m.scroller.selection.Index()
		header = fmt.Sprintf("Projects (%d/%d)", i+1, n)
	}
	sb.WriteString(headerStyle.Render(header))

	if m.scroller.len() == 0 {
		sb.WriteString("\n" + helpStyle.Render("No projects"))
		return sb.String()
	}

	nameWidth := max(width-runewidth.StringWidth(highlightSymbol), 1)

	start, end := m.scroller.visibleRange()
	for i := start; i < end; i++ {
		name := runewidth.Truncate(m.scroller.items[i].Name, nameWidth, "…")
		sb.WriteString("\n")
		if m.scroller.isSelected(i) {
			sb.WriteString(selectedStyle.Render(highlightSymbol + name))
		} else {
			sb.WriteString(itemStyle.Render(strings.Repeat(" ", len(highlightSymbol)) + name))
		}
	}

	return sb.String()
}

// Run starts the launcher on the alternate screen and blocks until the user
// quits or picks a project.
func Run(projects []model.Project) (Result, error) {
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stdout, termenv.WithColorCache(true)))

	// Detect the background before the program owns stdin.
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}

	m := New(projects, WithPreviewStyle(style))
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	return finalModel.(Model).Result(), nil
}
