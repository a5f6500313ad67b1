package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database/settings"
	"github.com/mrlokans/bookshelf/internal/metrics"
	"github.com/mrlokans/bookshelf/internal/theme"
)

// BooksResponse is the JSON form of a list page.
type BooksResponse struct {
	Filter catalog.FilterSpec `json:"filter"`
	catalog.Page
}

// ThemeResponse describes a palette for clients that style themselves.
type ThemeResponse struct {
	Theme      theme.Name        `json:"theme"`
	Variables  map[string]string `json:"variables"`
	Foreground string            `json:"foreground"`
	Background string            `json:"background"`
}

// CatalogResponse summarizes the loaded catalog and where it came from.
type CatalogResponse struct {
	Books   int                  `json:"books"`
	Authors int                  `json:"authors"`
	Genres  int                  `json:"genres"`
	Import  *settings.ImportInfo `json:"import"`
}

type BooksController struct {
	catalogs CatalogSource
	imports  ImportInfoStore
	pageSize int
}

func NewBooksController(catalogs CatalogSource, imports ImportInfoStore, pageSize int) *BooksController {
	return &BooksController{
		catalogs: catalogs,
		imports:  imports,
		pageSize: pageSize,
	}
}

// GetBooks returns the previews of one page of the filtered catalog.
// With cumulative=true it returns every preview up to page instead.
func (controller *BooksController) GetBooks(c *gin.Context) {
	q, err := bindBrowseQuery(c)
	if err != nil {
		respondBadRequest(c, "invalid query", err.Error())
		return
	}

	spec := q.filter()
	browser := catalog.NewBrowser(controller.catalogs.Catalog(), controller.pageSize)

	var page catalog.Page
	switch {
	case c.Query("cumulative") == "true":
		page = browser.Restore(spec, q.page())
	case q.page() == 1:
		page = browser.Search(spec)
		if !spec.IsEmpty() {
			metrics.ObserveSearch(page.Total)
		}
	default:
		browser.Restore(spec, q.page()-1)
		page = browser.ShowMore()
	}

	c.IndentedJSON(http.StatusOK, BooksResponse{Filter: spec, Page: page})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	browser := catalog.NewBrowser(controller.catalogs.Catalog(), controller.pageSize)
	detail, err := browser.Select(c.Param("id"))
	if err != nil {
		metrics.ObserveDetail(false)
		respondNotFound(c, "book")
		return
	}
	metrics.ObserveDetail(true)
	c.IndentedJSON(http.StatusOK, detail)
}

// GetCatalog returns catalog counts and the last import, if any.
func (controller *BooksController) GetCatalog(c *gin.Context) {
	cat := controller.catalogs.Catalog()
	resp := CatalogResponse{
		Books:   cat.Len(),
		Authors: len(cat.Authors()),
		Genres:  len(cat.Genres()),
	}

	if controller.imports != nil {
		info, err := controller.imports.ImportInfo()
		if err != nil {
			respondInternalError(c, err, "load import info")
			return
		}
		resp.Import = info
	}

	c.IndentedJSON(http.StatusOK, resp)
}

// GetAuthors returns the author dropdown options, "All Authors" first.
func (controller *BooksController) GetAuthors(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{"authors": controller.catalogs.Catalog().AuthorOptions()})
}

// GetGenres returns the genre dropdown options, "All Genres" first.
func (controller *BooksController) GetGenres(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{"genres": controller.catalogs.Catalog().GenreOptions()})
}

// GetTheme resolves ?name= to a palette; unknown or missing names give day.
func (controller *BooksController) GetTheme(c *gin.Context) {
	name, palette := theme.Apply(c.Query("name"))
	metrics.ObserveTheme(string(name))

	c.IndentedJSON(http.StatusOK, ThemeResponse{
		Theme:      name,
		Variables:  palette.CSSVariables(),
		Foreground: string(palette.Foreground()),
		Background: string(palette.Background()),
	})
}
