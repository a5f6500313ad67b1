// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - importers.Store: Persist a converted catalog (internal/importers/pipeline.go)
//   - http.Pinger: Storage health check (internal/http/stores.go)
//   - http.ImportInfoStore: Provenance of the served catalog (internal/http/stores.go)
//
// ## Import Interfaces
//
//   - importers.Converter: Produce a dataset from some input (internal/importers/pipeline.go)
//
// # Adding a New Dataset Source
//
// To load the catalog from somewhere other than a file or the embedded sample:
//
//  1. Implement Converter in internal/importers/ or its own package
//
//     type HTTPConverter struct {
//         URL    string
//         Client *http.Client
//     }
//
//     func (c *HTTPConverter) Convert() (*importers.Dataset, importers.Source, error) {
//         // Fetch, then importers.ParseDataset(resp.Body, importers.FormatJSON)
//     }
//
//     var _ importers.Converter = (*HTTPConverter)(nil)
//
//  2. Pick it in dataset.Converter or in the import command
//
// # Adding a New Theme
//
//  1. Add a Name constant and its Palette to internal/theme
//  2. Add it to theme.Names so the settings page lists it
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
