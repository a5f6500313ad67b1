package catalog

import "github.com/mrlokans/bookshelf/internal/theme"

// Page is what a UI needs to draw after one browser action.
type Page struct {
	Items     []PreviewItem `json:"items"`
	Append    bool          `json:"append"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
	Total     int           `json:"total"`
	Remaining int           `json:"remaining"`
	Label     string        `json:"label"`
	NoResults bool          `json:"no_results"`
}

// Browser is the application state of one catalog session: the current filter,
// its result set, the pagination cursor, the selected book and the theme.
// It is not safe for concurrent use; each UI controller owns its own Browser.
type Browser struct {
	catalog    *Catalog
	filter     FilterSpec
	results    ResultSet
	pagination Pagination
	selected   *Book
	theme      theme.State
}

// NewBrowser starts a session showing the whole catalog on page 1.
func NewBrowser(c *Catalog, pageSize int) *Browser {
	return &Browser{
		catalog:    c,
		filter:     MatchAll(),
		results:    c.Books(),
		pagination: NewPagination(pageSize),
		theme:      theme.NewState(theme.Day),
	}
}

// Catalog returns the catalog the browser reads from.
func (b *Browser) Catalog() *Catalog {
	return b.catalog
}

// Filter returns the normalized filter of the last search.
func (b *Browser) Filter() FilterSpec {
	return b.filter
}

// Results returns the current result set.
func (b *Browser) Results() ResultSet {
	return b.results
}

// Pagination returns the current cursor.
func (b *Browser) Pagination() Pagination {
	return b.pagination
}

// Search replaces the result set and resets to page 1. The returned page replaces
// whatever list the UI was showing.
func (b *Browser) Search(spec FilterSpec) Page {
	b.filter = spec.Normalize()
	b.results = Filter(b.catalog, b.filter)
	b.pagination = b.pagination.Reset()
	return b.page(b.pagination.VisibleSlice(b.results), false)
}

// ShowMore advances one page. The returned items are appended to the list.
func (b *Browser) ShowMore() Page {
	b.pagination = b.pagination.Advance()
	return b.page(b.pagination.VisibleSlice(b.results), true)
}

// Restore rebuilds the state reached by searching spec and pressing "show more"
// until page. The returned page holds every item up to page and replaces the list.
func (b *Browser) Restore(spec FilterSpec, page int) Page {
	b.Search(spec)
	b.pagination = b.pagination.AtPage(page)
	return b.page(b.pagination.Cumulative(b.results), false)
}

// Current returns the items of the current page only.
func (b *Browser) Current() Page {
	return b.page(b.pagination.VisibleSlice(b.results), b.pagination.Page > 1)
}

// Select resolves a book for the detail view. On ErrNotFound the previous
// selection is kept.
func (b *Browser) Select(id string) (DetailView, error) {
	book, err := Select(b.catalog, id)
	if err != nil {
		return DetailView{}, err
	}
	b.selected = book
	return NewDetailView(book, b.catalog.authors, b.catalog.genres), nil
}

// Selected returns the detail view of the last successful selection.
func (b *Browser) Selected() (DetailView, bool) {
	if b.selected == nil {
		return DetailView{}, false
	}
	return NewDetailView(b.selected, b.catalog.authors, b.catalog.genres), true
}

// ClearSelection closes the detail view.
func (b *Browser) ClearSelection() {
	b.selected = nil
}

// ApplyTheme switches the palette; unknown names fall back to day.
func (b *Browser) ApplyTheme(name string) theme.Palette {
	return b.theme.Apply(name)
}

// Theme returns the active theme.
func (b *Browser) Theme() theme.Name {
	return b.theme.Current()
}

// Palette returns the colors of the active theme.
func (b *Browser) Palette() theme.Palette {
	return b.theme.Palette()
}

func (b *Browser) page(slice ResultSet, appendItems bool) Page {
	remaining := b.pagination.Remaining(b.results)
	return Page{
		Items:     Render(slice, b.catalog.authors),
		Append:    appendItems,
		Page:      b.pagination.Page,
		PageSize:  b.pagination.PageSize,
		Total:     len(b.results),
		Remaining: remaining,
		Label:     ShowMoreLabel(remaining),
		NoResults: NoResults(b.results),
	}
}
