package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/settings"
	"github.com/mrlokans/bookshelf/internal/dataset"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/importers"
	"github.com/mrlokans/bookshelf/internal/scheduler"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// CatalogSource implementations
var _ http.CatalogSource = (*scheduler.CatalogRefresher)(nil)

// ImportInfoStore implementations
var _ http.ImportInfoStore = (*settings.Repository)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

// Store implementations
var _ importers.Store = (*database.Database)(nil)
var _ scheduler.Store = (*database.Database)(nil)

// Converter implementations
var _ importers.Converter = (*importers.FileConverter)(nil)
var _ importers.Converter = (*importers.ReaderConverter)(nil)
var _ importers.Converter = dataset.Embedded{}
