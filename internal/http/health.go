package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db       Pinger
	imports  ImportInfoStore
	catalogs CatalogSource
	version  string
}

func NewHealthController(db Pinger, imports ImportInfoStore, catalogs CatalogSource, version string) *HealthController {
	return &HealthController{
		db:       db,
		imports:  imports,
		catalogs: catalogs,
		version:  version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	var cat *catalog.Catalog
	if h.catalogs != nil {
		cat = h.catalogs.Catalog()
	}
	if cat != nil {
		checks["catalog"] = strconv.Itoa(cat.Len()) + " books"
	} else {
		checks["catalog"] = "not loaded"
		status = "unhealthy"
	}

	if h.imports != nil {
		info, err := h.imports.ImportInfo()
		switch {
		case err != nil:
			checks["import"] = "error: " + err.Error()
		case info == nil:
			checks["import"] = "never"
		default:
			checks["import"] = info.Source + " at " + info.ImportedAt.Format(time.RFC3339)
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
