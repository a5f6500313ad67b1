// Package tui is the terminal front end of the catalog browser.
//
// The model owns a catalog.Browser and renders its pages with lipgloss using the
// colors of the active theme. Search state lives only in the running program.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/metrics"
	"github.com/mrlokans/bookshelf/internal/theme"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeDetail
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the bubbletea state of one terminal browsing session.
type Model struct {
	browser *catalog.Browser
	keys    keyMap
	styles  styles

	title   textinput.Model
	authors []catalog.Option
	genres  []catalog.Option
	author  int
	genre   int

	items  []catalog.PreviewItem
	page   catalog.Page
	cursor int

	mode   mode
	detail catalog.DetailView
	status string

	width    int
	height   int
	quitting bool
}

// NewModel starts on the first page of the whole catalog with the given theme.
func NewModel(browser *catalog.Browser, initial theme.Name) Model {
	input := textinput.New()
	input.Placeholder = "Any"
	input.Prompt = ""
	input.CharLimit = 120

	palette := browser.ApplyTheme(string(initial))

	m := Model{
		browser: browser,
		keys:    defaultKeyMap(),
		styles:  newStyles(palette),
		title:   input,
		authors: browser.Catalog().AuthorOptions(),
		genres:  browser.Catalog().GenreOptions(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.replace(browser.Search(catalog.MatchAll()))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		return m, m.title.Focus()

	case key.Matches(msg, m.keys.Author):
		m.author = (m.author + 1) % len(m.authors)
		m.search()

	case key.Matches(msg, m.keys.Genre):
		m.genre = (m.genre + 1) % len(m.genres)
		m.search()

	case key.Matches(msg, m.keys.Reset):
		m.title.SetValue("")
		m.author, m.genre = 0, 0
		m.search()

	case key.Matches(msg, m.keys.More):
		if m.page.Remaining > 0 {
			m.appendPage(m.browser.ShowMore())
			metrics.ShowMoreTotal.Inc()
		}

	case key.Matches(msg, m.keys.Open):
		if len(m.items) == 0 {
			return m, nil
		}
		detail, err := m.browser.Select(m.items[m.cursor].ID)
		metrics.ObserveDetail(err == nil)
		if err != nil {
			m.status = "Book not found"
			return m, nil
		}
		m.detail = detail
		m.mode = modeDetail

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.title.Blur()
		m.mode = modeList
		m.search()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.title.Blur()
		m.title.SetValue(m.browser.Filter().Title)
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Open):
		m.browser.ClearSelection()
		m.mode = modeList

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// search runs the current form values and replaces the list.
func (m *Model) search() {
	spec := catalog.FilterSpec{
		Title:  m.title.Value(),
		Author: m.authors[m.author].Value,
		Genre:  m.genres[m.genre].Value,
	}
	page := m.browser.Search(spec)
	if !spec.IsEmpty() {
		metrics.ObserveSearch(page.Total)
	}
	m.replace(page)
}

func (m *Model) replace(page catalog.Page) {
	m.page = page
	m.items = append([]catalog.PreviewItem(nil), page.Items...)
	m.cursor = 0
}

func (m *Model) appendPage(page catalog.Page) {
	m.page = page
	first := len(m.items)
	m.items = append(m.items, page.Items...)
	if first < len(m.items) {
		m.cursor = first
	}
}

func (m *Model) toggleTheme() {
	next := theme.Night
	if m.browser.Theme() == theme.Night {
		next = theme.Day
	}
	m.styles = newStyles(m.browser.ApplyTheme(string(next)))
	metrics.ObserveTheme(string(next))
}

// Theme returns the active theme.
func (m Model) Theme() theme.Name {
	return m.browser.Theme()
}

// Items returns every preview currently listed.
func (m Model) Items() []catalog.PreviewItem {
	return m.items
}
