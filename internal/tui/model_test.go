package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/theme"
)

// testCatalog holds 40 books alternating between two authors; book-01 is "Dune".
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	books := make([]catalog.Book, 0, 40)
	for i := 1; i <= 40; i++ {
		title := fmt.Sprintf("Book %02d", i)
		if i == 1 {
			title = "Dune"
		}
		author := "a-herbert"
		if i%2 == 0 {
			author = "a-leguin"
		}
		books = append(books, catalog.Book{
			ID:          fmt.Sprintf("book-%02d", i),
			Title:       title,
			Author:      author,
			Description: "About " + title,
			Published:   time.Date(1960+i, time.June, 1, 0, 0, 0, 0, time.UTC),
			Genres:      []string{"g-scifi"},
		})
	}

	cat, err := catalog.New(books,
		catalog.AuthorTable{"a-herbert": "Frank Herbert", "a-leguin": "Ursula K. Le Guin"},
		catalog.GenreTable{"g-scifi": "Science Fiction"},
	)
	require.NoError(t, err)
	return cat
}

func newTestModel(t *testing.T) Model {
	return NewModel(catalog.NewBrowser(testCatalog(t), catalog.DefaultPageSize), theme.Day)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestNewModelShowsFirstPage(t *testing.T) {
	m := newTestModel(t)

	assert.Len(t, m.Items(), 36)
	assert.Equal(t, "Show more (4)", m.page.Label)
	assert.Equal(t, theme.Day, m.Theme())
	assert.Contains(t, m.View(), "Show more (4)")
	assert.Contains(t, m.View(), "All Authors")
}

func TestShowMoreAppends(t *testing.T) {
	m := press(newTestModel(t), "m")

	require.Len(t, m.Items(), 40)
	assert.Equal(t, "book-37", m.Items()[36].ID)
	assert.Equal(t, 36, m.cursor)
	assert.Equal(t, "Show more (0)", m.page.Label)

	// Nothing left to reveal
	m = press(m, "m")
	assert.Len(t, m.Items(), 40)
	assert.Equal(t, 2, m.page.Page)
}

func TestTitleSearch(t *testing.T) {
	m := press(newTestModel(t), "/")
	assert.Equal(t, modeSearch, m.mode)

	m = press(m, "D", "u", "n", "e", "enter")

	assert.Equal(t, modeList, m.mode)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "Dune", m.Items()[0].Title)
	assert.Equal(t, "Show more (0)", m.page.Label)

	t.Run("letters go to the field while editing", func(t *testing.T) {
		m := press(m, "/", "q")
		assert.False(t, m.quitting)
		assert.Equal(t, "Duneq", m.title.Value())
	})

	t.Run("esc discards the edit", func(t *testing.T) {
		m := press(m, "/", "x", "esc")
		assert.Equal(t, "Dune", m.title.Value())
		assert.Len(t, m.Items(), 1)
	})
}

func TestSearchWithoutMatches(t *testing.T) {
	m := press(newTestModel(t), "/", "z", "z", "z", "enter")

	assert.Empty(t, m.Items())
	assert.True(t, m.page.NoResults)
	assert.Contains(t, m.View(), noResultsMessage)

	m = press(m, "x")
	assert.Len(t, m.Items(), 36)
	assert.Equal(t, "", m.title.Value())
}

func TestCycleAuthorAndGenre(t *testing.T) {
	m := press(newTestModel(t), "a")

	// Options are sorted by name after "All Authors"
	assert.Equal(t, "a-herbert", m.authors[m.author].Value)
	assert.Len(t, m.Items(), 20)
	for _, item := range m.Items() {
		assert.Equal(t, "Frank Herbert", item.AuthorName)
	}

	m = press(m, "a", "a")
	assert.Equal(t, catalog.Any, m.authors[m.author].Value)
	assert.Len(t, m.Items(), 36)

	m = press(m, "g")
	assert.Equal(t, "g-scifi", m.genres[m.genre].Value)
	assert.Equal(t, 40, m.page.Total)
}

func TestDetailAndBack(t *testing.T) {
	m := press(newTestModel(t), "down", "up", "enter")

	require.Equal(t, modeDetail, m.mode)
	assert.Equal(t, "book-01", m.detail.ID)
	assert.Contains(t, m.View(), "Frank Herbert (1961)")
	assert.Contains(t, m.View(), "About Dune")

	m = press(m, "esc")
	assert.Equal(t, modeList, m.mode)
	_, selected := m.browser.Selected()
	assert.False(t, selected)
}

func TestToggleTheme(t *testing.T) {
	m := press(newTestModel(t), "t")
	assert.Equal(t, theme.Night, m.Theme())

	m = press(m, "t")
	assert.Equal(t, theme.Day, m.Theme())
}

func TestUnknownInitialThemeFallsBackToDay(t *testing.T) {
	m := NewModel(catalog.NewBrowser(testCatalog(t), catalog.DefaultPageSize), theme.Name("sepia"))
	assert.Equal(t, theme.Day, m.Theme())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.True(t, updated.(Model).quitting)
	assert.Empty(t, updated.(Model).View())
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	m = updated.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 3, m.visibleRows())
}

func TestBrowse(t *testing.T) {
	original := runProgram
	defer func() { runProgram = original }()

	t.Run("returns after the program quits", func(t *testing.T) {
		runProgram = func(m tea.Model) (tea.Model, error) {
			return m, nil
		}
		assert.NoError(t, Browse(testCatalog(t), catalog.DefaultPageSize, theme.Night))
	})

	t.Run("wraps program errors", func(t *testing.T) {
		runProgram = func(m tea.Model) (tea.Model, error) {
			return nil, errors.New("no tty")
		}
		err := Browse(testCatalog(t), catalog.DefaultPageSize, theme.Day)
		assert.ErrorContains(t, err, "no tty")
	})
}
