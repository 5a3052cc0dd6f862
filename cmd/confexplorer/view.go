package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sectionPaneWidth = 28

// Space taken by the header and status bar, including their margins.
const chromeHeight = 5

func (m Model) sourcePaneWidth() int {
	w := m.width - sectionPaneWidth - 6
	if w < 0 {
		w = 0
	}
	return w
}

func (m Model) paneHeight() int {
	h := m.height - chromeHeight
	if h < 0 {
		h = 0
	}
	return h
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\npress q to quit\n"
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSections(),
		m.renderSource(),
	)
	status := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, panes, status)
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("Config Explorer")
	path := pathStyle.Render(fmt.Sprintf("Config: %s", m.configPath))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", path)
}

func (m Model) renderSections() string {
	style := paneStyle
	if m.focusedPane == SectionPane {
		style = activePaneStyle
	}

	var b strings.Builder
	for i, name := range m.visible {
		line := truncate(name, sectionPaneWidth-2)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(mutedStyle.Render("(no sections)"))
	}

	return style.Width(sectionPaneWidth).Height(m.paneHeight()).Render(b.String())
}

func (m Model) renderSource() string {
	style := paneStyle
	if m.focusedPane == SourcePane {
		style = activePaneStyle
	}
	return style.Width(m.sourcePaneWidth()).Height(m.paneHeight()).Render(m.source.View())
}

func (m Model) renderStatusBar() string {
	if m.inputMode == FilterMode {
		return statusStyle.Render(searchPromptStyle.Render("filter: ") + m.filterQuery + "█")
	}

	count := statusCountStyle.Render(
		fmt.Sprintf("%d/%d sections", len(m.visible), len(m.sections)),
	)
	hints := helpStyle.Render("?: help  q: quit")
	parts := []string{count, hints}
	if m.statusMessage != "" {
		parts = append(parts, mutedStyle.Render(m.statusMessage))
	}
	return statusStyle.Render(strings.Join(parts, "  •  "))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, row := range m.keys.FullHelp() {
		for _, binding := range row {
			b.WriteString(helpKeyStyle.Render(binding.Help().Key))
			b.WriteString(helpDescStyle.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("press ? or esc to close"))
	return modalStyle.Render(b.String())
}
