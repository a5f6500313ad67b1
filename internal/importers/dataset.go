package importers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for dataset files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Format is a dataset serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// RawBook is a book record as it appears in a dataset file.
type RawBook struct {
	ID          string   `json:"id" yaml:"id" validate:"required,max=64"`
	Title       string   `json:"title" yaml:"title" validate:"required,max=512"`
	Author      string   `json:"author" yaml:"author" validate:"required"`
	Image       string   `json:"image" yaml:"image" validate:"omitempty,url"`
	Description string   `json:"description" yaml:"description"`
	Published   string   `json:"published" yaml:"published" validate:"omitempty,published"`
	Genres      []string `json:"genres" yaml:"genres" validate:"dive,required"`
}

// Dataset is the on-disk catalog: books in catalog order plus the display tables.
type Dataset struct {
	Books   []RawBook         `json:"books" yaml:"books" validate:"dive"`
	Authors map[string]string `json:"authors" yaml:"authors" validate:"dive,keys,required,endkeys,required"`
	Genres  map[string]string `json:"genres" yaml:"genres" validate:"dive,keys,required,endkeys,required"`
}

// ParseDataset decodes a dataset in the given format.
func ParseDataset(r io.Reader, format Format) (*Dataset, error) {
	var ds Dataset
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&ds); err != nil {
			return nil, fmt.Errorf("failed to decode JSON dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
			return nil, fmt.Errorf("failed to decode YAML dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return &ds, nil
}

// publishedLayouts are the accepted publication date formats, tried in order.
var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006",
}

// ParsePublished parses a publication date. Empty input yields the zero time.
func ParsePublished(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized publication date %q", value)
}

// FileConverter reads a dataset file from disk.
type FileConverter struct {
	Path string
}

// NewFileConverter creates a converter for a JSON or YAML dataset file.
func NewFileConverter(path string) *FileConverter {
	return &FileConverter{Path: path}
}

// Convert implements Converter.
func (c *FileConverter) Convert() (*Dataset, Source, error) {
	source := Source{Name: "file", Location: c.Path}

	format, err := FormatFromPath(c.Path)
	if err != nil {
		return nil, source, err
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, source, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := ParseDataset(f, format)
	return ds, source, err
}

// ReaderConverter decodes a dataset from an already open stream.
type ReaderConverter struct {
	Reader io.Reader
	Format Format
	Name   string
}

// Convert implements Converter.
func (c *ReaderConverter) Convert() (*Dataset, Source, error) {
	ds, err := ParseDataset(c.Reader, c.Format)
	return ds, Source{Name: c.Name, Location: c.Name}, err
}

var (
	_ Converter = (*FileConverter)(nil)
	_ Converter = (*ReaderConverter)(nil)
)
