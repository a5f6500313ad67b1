// Package importers loads catalog datasets into storage.
//
// # Architecture
//
// The import pipeline follows a simple flow:
//
//	Dataset file → Converter → Dataset → Validate → Pipeline.ToEntities → Store
//
// A dataset holds the books in catalog order plus the author and genre display
// tables:
//
//	{
//	  "books": [
//	    {"id": "b1", "title": "Dune", "author": "a1", "genres": ["g1"],
//	     "image": "https://...", "description": "...", "published": "1965-08-01"}
//	  ],
//	  "authors": {"a1": "Frank Herbert"},
//	  "genres":  {"g1": "Science Fiction"}
//	}
//
// The same structure is accepted as YAML. Validation rejects missing ids and titles,
// duplicate ids, malformed image URLs and dates, and author or genre ids that do
// not resolve. Titles, names and descriptions are reduced to plain text.
//
// # Adding a New Source
//
//  1. Implement Converter:
//
//     type CSVConverter struct{ Path string }
//
//     func (c *CSVConverter) Convert() (*Dataset, Source, error) { ... }
//
//  2. Add a compile-time check: var _ Converter = (*CSVConverter)(nil)
//
//  3. Pass it to Pipeline.Import.
package importers
