// Package dataset bundles the sample catalog shipped inside the binary.
package dataset

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/mrlokans/bookshelf/internal/importers"
)

// EmbeddedName is recorded as the import source for the bundled catalog.
const EmbeddedName = "embedded:catalog.json"

//go:embed assets
var embeddedAssets embed.FS

// Embedded converts the bundled sample catalog.
type Embedded struct{}

// Convert implements importers.Converter.
func (Embedded) Convert() (*importers.Dataset, importers.Source, error) {
	source := importers.Source{Name: "embedded", Location: EmbeddedName}

	data, err := embeddedAssets.ReadFile("assets/catalog.json")
	if err != nil {
		return nil, source, fmt.Errorf("read embedded catalog: %w", err)
	}

	ds, err := importers.ParseDataset(bytes.NewReader(data), importers.FormatJSON)
	return ds, source, err
}

// Converter picks the dataset file at path, or the embedded catalog when path is empty.
func Converter(path string) importers.Converter {
	if path == "" {
		return Embedded{}
	}
	return importers.NewFileConverter(path)
}

var _ importers.Converter = Embedded{}
