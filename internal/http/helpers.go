package http

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string, details any) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "bad_request", Details: details})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: "not_found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// --- Parameter Parsing ---

// browseQuery is the query string shared by the list page, the "show more"
// partial and the books API.
type browseQuery struct {
	Title  string `form:"title"`
	Author string `form:"author"`
	Genre  string `form:"genre"`
	Page   int    `form:"page" binding:"omitempty,min=1,max=1000000"`
}

func (q browseQuery) filter() catalog.FilterSpec {
	return catalog.FilterSpec{Title: q.Title, Author: q.Author, Genre: q.Genre}.Normalize()
}

func (q browseQuery) page() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

// bindBrowseQuery binds the browse parameters; page must be a positive integer when given.
func bindBrowseQuery(c *gin.Context) (browseQuery, error) {
	var q browseQuery
	err := c.ShouldBindQuery(&q)
	return q, err
}

// browseURL builds a link that restores spec at page.
func browseURL(path string, spec catalog.FilterSpec, page int) string {
	values := url.Values{}
	if spec.Title != "" {
		values.Set("title", spec.Title)
	}
	if spec.Author != "" && spec.Author != catalog.Any {
		values.Set("author", spec.Author)
	}
	if spec.Genre != "" && spec.Genre != catalog.Any {
		values.Set("genre", spec.Genre)
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// --- HTMX Support ---

// isHTMXRequest returns true if the request is an HTMX request.
func isHTMXRequest(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
