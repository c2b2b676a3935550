// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusHeight is the number of lines below the viewport.
const statusHeight = 1

// Styles used for the status line.
type Styles struct {
	Title  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles creates the status line styles.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true),
	}
}

// Model is the bubbletea model of the pager.
type Model struct {
	title    string
	content  string
	lines    int
	viewport viewport.Model
	styles   *Styles
	ready    bool
	quitting bool
}

// NewModel creates a pager model for content. The viewport is sized by
// the first tea.WindowSizeMsg.
func NewModel(title, content string) *Model {
	return &Model{
		title:   title,
		content: content,
		lines:   strings.Count(content, "\n") + 1,
		styles:  NewStyles(),
	}
}

// Init implements bubbletea.Model.Init.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		height := max(msg.Height-statusHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true

			return m, nil
		}

		m.viewport.Width = msg.Width
		m.viewport.Height = height
		// re-clamp the offset to the new height
		m.viewport.SetYOffset(m.viewport.YOffset)

		return m, nil
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "loading..."
	}

	return m.viewport.View() + "\n" + m.statusLine()
}

// Range returns the first and last visible line, 1-based.
func (m *Model) Range() (first, last int) {
	first = m.viewport.YOffset + 1
	last = min(m.viewport.YOffset+m.viewport.Height, m.lines)

	return first, last
}

func (m *Model) statusLine() string {
	first, last := m.Range()

	parts := make([]string, 0, 3)
	if m.title != "" {
		parts = append(parts, m.styles.Title.Render(m.title))
	}

	parts = append(parts,
		m.styles.Status.Render(fmt.Sprintf("lines %d-%d of %d (%3.f%%)", first, last, m.lines, m.viewport.ScrollPercent()*100)),
		m.styles.Help.Render("↑/↓ scroll • g/G top/bottom • q quit"),
	)

	return strings.Join(parts, "  ")
}
