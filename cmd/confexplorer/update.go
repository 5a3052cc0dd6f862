package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.source.Width = m.sourcePaneWidth()
		m.source.Height = m.paneHeight()
		return m, nil

	case tea.KeyMsg:
		if m.inputMode == FilterMode {
			return m.updateFilterMode(msg)
		}
		return m.updateNormalMode(msg)
	}
	return m, nil
}

func (m Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Esc):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.filterQuery != "" {
			m.filterQuery = ""
			m.applyFilter()
			m.cursor = 0
			m.refreshSource()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focusedPane == SectionPane {
			m.focusedPane = SourcePane
		} else {
			m.focusedPane = SectionPane
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.inputMode = FilterMode
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		m.statusMessage = "reloaded " + m.configPath
		return m, nil
	}

	if m.focusedPane == SourcePane {
		var cmd tea.Cmd
		m.source, cmd = m.source.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refreshSource()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.refreshSource()
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.refreshSource()
	case key.Matches(msg, m.keys.End):
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
			m.refreshSource()
		}
	}
	return m, nil
}

// updateFilterMode narrows the section list as the query is typed.
func (m Model) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = NormalMode
		m.filterQuery = ""
		m.applyFilter()
		m.cursor = 0
		m.refreshSource()
	case tea.KeyEnter:
		m.inputMode = NormalMode
	case tea.KeyBackspace:
		if len(m.filterQuery) > 0 {
			m.filterQuery = m.filterQuery[:len(m.filterQuery)-1]
			m.applyFilter()
			m.cursor = 0
			m.refreshSource()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filterQuery += string(msg.Runes)
		m.applyFilter()
		m.cursor = 0
		m.refreshSource()
	}
	return m, nil
}
