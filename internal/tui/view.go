package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const noResultsMessage = "No results found. Your filters might be too narrow."

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.mode == modeDetail {
		body = m.detailView()
	} else {
		body = m.listView()
	}

	return m.styles.app.Width(m.width).Render(body)
}

func (m Model) listView() string {
	s := m.styles
	sections := []string{
		s.header.Render("Book Connect"),
		m.filterView(),
	}

	if m.page.NoResults {
		sections = append(sections, s.message.Render(noResultsMessage))
	} else {
		sections = append(sections, m.itemsView())
	}

	button := s.button
	if m.page.Remaining <= 0 {
		button = s.disabled
	}
	sections = append(sections, button.Render(m.page.Label))

	if m.status != "" {
		sections = append(sections, s.message.Render(m.status))
	}

	var keys []string
	if m.mode == modeSearch {
		keys = help(m.keys.Submit, m.keys.Back)
	} else {
		keys = help(m.keys.Search, m.keys.Author, m.keys.Genre, m.keys.Reset, m.keys.More,
			m.keys.Open, m.keys.Theme, m.keys.Quit)
	}
	sections = append(sections, s.help.Render(strings.Join(keys, " • ")))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) filterView() string {
	s := m.styles
	title := m.title.View()
	if m.mode != modeSearch && m.title.Value() == "" {
		title = "Any"
	}

	fields := []string{
		s.label.Render("Title ") + s.field.Render(title),
		s.label.Render("Author ") + s.field.Render(m.authors[m.author].Label),
		s.label.Render("Genre ") + s.field.Render(m.genres[m.genre].Label),
	}
	return strings.Join(fields, "   ")
}

// itemsView renders the window of previews that fits the terminal around the cursor.
func (m Model) itemsView() string {
	s := m.styles
	visible := m.visibleRows()

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	rows := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		item := m.items[i]
		line := fmt.Sprintf("%s  %s", item.Title, s.author.Render(item.AuthorName))
		if i == m.cursor {
			rows = append(rows, s.selected.Render(item.Title+"  "+item.AuthorName))
			continue
		}
		rows = append(rows, s.item.Render(line))
	}
	rows = append(rows, s.label.Render(fmt.Sprintf("%d of %d", len(m.items), m.page.Total)))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) visibleRows() int {
	// header, filters, button, help and padding
	rows := m.height - 12
	if rows < 3 {
		return 3
	}
	return rows
}

func (m Model) detailView() string {
	s := m.styles
	d := m.detail

	sections := []string{
		s.title.Render(d.Title),
		s.subtitle.Render(d.Subtitle),
	}
	if len(d.Genres) > 0 {
		sections = append(sections, s.label.Render(strings.Join(d.Genres, ", ")))
	}

	width := m.width - 8
	if width < 20 {
		width = 20
	}
	sections = append(sections,
		s.item.UnsetPaddingLeft().Width(width).MarginTop(1).Render(d.Description),
		s.help.Render(strings.Join(help(m.keys.Back, m.keys.Theme, m.keys.Quit), " • ")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
