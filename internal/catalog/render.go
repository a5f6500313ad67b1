package catalog

import "fmt"

// PreviewItem is the minimal projection of a Book needed for list display.
type PreviewItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AuthorName string `json:"author"`
	Image      string `json:"image"`
}

// Render projects a slice of books into preview items.
func Render(slice ResultSet, authors AuthorTable) []PreviewItem {
	items := make([]PreviewItem, 0, len(slice))
	for _, book := range slice {
		items = append(items, PreviewItem{
			ID:         book.ID,
			Title:      book.Title,
			AuthorName: authors[book.Author],
			Image:      book.Image,
		})
	}
	return items
}

// NoResults reports whether the "no results" message should be shown.
func NoResults(rs ResultSet) bool {
	return len(rs) == 0
}

// DetailView is what the detail dialog shows for a selected book.
type DetailView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	AuthorName  string   `json:"author"`
	Year        int      `json:"year"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Genres      []string `json:"genres,omitempty"`
}

// NewDetailView builds the detail projection. Genre ids are resolved through genres
// when given; unknown ids are skipped.
func NewDetailView(book *Book, authors AuthorTable, genres GenreTable) DetailView {
	author := authors[book.Author]
	year := book.Published.Year()

	var genreNames []string
	for _, id := range book.Genres {
		if name, ok := genres[id]; ok {
			genreNames = append(genreNames, name)
		}
	}

	return DetailView{
		ID:          book.ID,
		Title:       book.Title,
		AuthorName:  author,
		Year:        year,
		Subtitle:    fmt.Sprintf("%s (%d)", author, year),
		Description: book.Description,
		Image:       book.Image,
		Genres:      genreNames,
	}
}
