package catalog

// Select resolves a book by exact id. A miss returns ErrNotFound, which callers
// treat as "leave the detail view alone".
func Select(c *Catalog, id string) (*Book, error) {
	book, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return book, nil
}
