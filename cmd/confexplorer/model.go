package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confkit-io/confkit/pkg/document"
)

// Pane represents which pane is focused
type Pane int

const (
	SectionPane Pane = iota
	SourcePane
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	FilterMode
)

// Model is the main application model
type Model struct {
	configPath string
	doc        *document.Document
	keys       KeyMap

	sections []string // all top-level section names, source order
	visible  []string // sections surviving the current filter
	cursor   int

	focusedPane Pane
	width       int
	height      int

	inputMode   InputMode
	filterQuery string

	source viewport.Model

	showHelp      bool
	statusMessage string

	err error
}

// NewModel creates a new TUI model. A load failure is carried on the model
// and rendered instead of the panes.
func NewModel(configPath string) Model {
	m := Model{
		configPath: configPath,
		keys:       DefaultKeyMap(),
		source:     viewport.New(0, 0),
	}
	m.reload()
	return m
}

// reload re-parses the file and rebuilds the section list, keeping the
// cursor on the same section name when it still exists.
func (m *Model) reload() {
	var selected string
	if m.cursor < len(m.visible) {
		selected = m.visible[m.cursor]
	}

	doc, err := document.Load(m.configPath)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.doc = doc
	m.sections = doc.SectionNames()
	m.applyFilter()

	m.cursor = 0
	for i, name := range m.visible {
		if name == selected {
			m.cursor = i
			break
		}
	}
	m.refreshSource()
}

// applyFilter rebuilds the visible list from the current query.
func (m *Model) applyFilter() {
	if m.filterQuery == "" {
		m.visible = m.sections
		return
	}
	query := strings.ToLower(m.filterQuery)
	m.visible = nil
	for _, name := range m.sections {
		if strings.Contains(strings.ToLower(name), query) {
			m.visible = append(m.visible, name)
		}
	}
}

// refreshSource re-renders the selected section into the source pane.
func (m *Model) refreshSource() {
	if m.doc == nil || m.cursor >= len(m.visible) {
		m.source.SetContent("")
		return
	}
	src, err := m.doc.SectionSource(m.visible[m.cursor])
	if err != nil {
		m.source.SetContent(errorStyle.Render(err.Error()))
		return
	}
	m.source.SetContent(src)
	m.source.GotoTop()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}
