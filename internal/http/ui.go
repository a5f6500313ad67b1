package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/metrics"
	"github.com/mrlokans/bookshelf/internal/security"
	"github.com/mrlokans/bookshelf/internal/theme"
)

// themeView is the theme information every full page needs.
type themeView struct {
	Name         theme.Name
	Style        template.CSS // inline CSS variables; empty when following the system preference
	FollowSystem bool
	Toggle       theme.Name // what the header button switches to
}

// showMoreView drives the "Show more (N)" button.
type showMoreView struct {
	Label      string
	Disabled   bool
	URL        string // full page link restoring the next page
	PartialURL string // HTMX endpoint returning only the next page
	OOB        bool   // swap out of band next to appended items
}

// themeOption is one entry of the settings theme selector.
type themeOption struct {
	Value    theme.Name
	Label    string
	Selected bool
}

type UIController struct {
	catalogs     CatalogSource
	sessions     *security.SessionManager
	pageSize     int
	defaultTheme string
}

func NewUIController(catalogs CatalogSource, sessions *security.SessionManager, pageSize int, defaultTheme string) *UIController {
	return &UIController{
		catalogs:     catalogs,
		sessions:     sessions,
		pageSize:     pageSize,
		defaultTheme: defaultTheme,
	}
}

// BooksPage renders the list page. The query string carries the filter and the
// page reached with "show more", so reloading keeps every revealed book.
func (controller *UIController) BooksPage(c *gin.Context) {
	q, err := bindBrowseQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid page")
		return
	}

	spec := q.filter()
	cat := controller.catalogs.Catalog()
	browser := catalog.NewBrowser(cat, controller.pageSize)
	page := browser.Restore(spec, q.page())
	htmx := isHTMXRequest(c)
	// Only form submissions count as searches; reloading a filtered URL does not
	if htmx && !spec.IsEmpty() {
		metrics.ObserveSearch(page.Total)
	}

	data := gin.H{
		"Filter":   spec,
		"Page":     page,
		"ShowMore": controller.showMore(spec, page),
		"Authors":  cat.AuthorOptions(),
		"Genres":   cat.GenreOptions(),
	}

	// Search form submissions swap only the results
	if htmx {
		c.HTML(http.StatusOK, "catalog-results", data)
		return
	}

	c.HTML(http.StatusOK, "books", controller.pageData(c, data))
}

// MoreBooks returns the previews of one page for appending, plus the updated
// button swapped out of band.
func (controller *UIController) MoreBooks(c *gin.Context) {
	q, err := bindBrowseQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid page")
		return
	}

	spec := q.filter()
	browser := catalog.NewBrowser(controller.catalogs.Catalog(), controller.pageSize)

	var page catalog.Page
	if q.page() <= 1 {
		page = browser.Search(spec)
	} else {
		browser.Restore(spec, q.page()-1)
		page = browser.ShowMore()
		if len(page.Items) > 0 {
			metrics.ShowMoreTotal.Inc()
		}
	}

	showMore := controller.showMore(spec, page)
	showMore.OOB = true

	c.HTML(http.StatusOK, "book-more", gin.H{
		"Page":     page,
		"ShowMore": showMore,
	})
}

// BookPage renders the detail dialog for HTMX requests and a standalone page otherwise.
func (controller *UIController) BookPage(c *gin.Context) {
	browser := catalog.NewBrowser(controller.catalogs.Catalog(), controller.pageSize)
	detail, err := browser.Select(c.Param("id"))
	if err != nil {
		metrics.ObserveDetail(false)
		c.String(http.StatusNotFound, "Book not found")
		return
	}
	metrics.ObserveDetail(true)

	if isHTMXRequest(c) {
		c.HTML(http.StatusOK, "book-detail", gin.H{"Book": detail})
		return
	}

	c.HTML(http.StatusOK, "book", controller.pageData(c, gin.H{
		"Book": detail,
	}))
}

func (controller *UIController) SettingsPage(c *gin.Context) {
	current := controller.themeFor(c)
	cat := controller.catalogs.Catalog()

	options := make([]themeOption, 0, len(theme.Names()))
	for _, name := range theme.Names() {
		options = append(options, themeOption{
			Value:    name,
			Label:    themeLabel(name),
			Selected: !current.FollowSystem && current.Name == name,
		})
	}

	c.HTML(http.StatusOK, "settings", controller.pageData(c, gin.H{
		"Themes":        options,
		"TotalBooks":    cat.Len(),
		"TotalAuthors":  len(cat.Authors()),
		"TotalGenres":   len(cat.Genres()),
		"SettingsSaved": c.Query("saved") == "1",
	}))
}

// SetTheme stores the submitted theme in the session and redirects back.
// Unknown names are stored as day.
func (controller *UIController) SetTheme(c *gin.Context) {
	applied := controller.sessions.SetTheme(c, c.PostForm("theme"))
	metrics.ObserveTheme(string(applied))

	redirect := security.SanitizeRedirectPath(c.PostForm("redirect"), "/settings?saved=1")
	c.Redirect(http.StatusSeeOther, redirect)
}

// ResetTheme forgets the stored theme so the default applies again.
func (controller *UIController) ResetTheme(c *gin.Context) {
	controller.sessions.ClearTheme(c)
	c.Redirect(http.StatusSeeOther, "/settings?saved=1")
}

// themeFor resolves the theme of this request: the session choice first, then the
// configured default, then the client's color scheme preference.
func (controller *UIController) themeFor(c *gin.Context) themeView {
	if name, ok := security.SessionTheme(c); ok {
		return forcedTheme(name)
	}
	if name, ok := theme.Parse(controller.defaultTheme); ok {
		return forcedTheme(name)
	}
	return themeView{Name: theme.Day, FollowSystem: true, Toggle: theme.Night}
}

func forcedTheme(name theme.Name) themeView {
	toggle := theme.Night
	if name == theme.Night {
		toggle = theme.Day
	}
	return themeView{
		Name:   name,
		Style:  template.CSS(theme.PaletteFor(name).Style()),
		Toggle: toggle,
	}
}

func themeLabel(name theme.Name) string {
	if name == theme.Night {
		return "Night"
	}
	return "Day"
}

// pageData adds what the shared layout needs to a template payload.
func (controller *UIController) pageData(c *gin.Context, data gin.H) gin.H {
	data["Theme"] = controller.themeFor(c)
	data["CSRFField"] = security.CSRFTokenField(c)
	data["CanPersist"] = controller.sessions != nil
	data["CurrentPath"] = c.Request.URL.RequestURI()
	return data
}

func (controller *UIController) showMore(spec catalog.FilterSpec, page catalog.Page) showMoreView {
	next := page.Page + 1
	return showMoreView{
		Label:      page.Label,
		Disabled:   page.Remaining <= 0,
		URL:        browseURL("/", spec, next),
		PartialURL: browseURL("/ui/books/more", spec, next),
	}
}
