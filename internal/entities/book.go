package entities

import (
	"time"
)

type Author struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:256" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Genre struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:256" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Book struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Position    int       `gorm:"index" json:"position"` // Catalog order, 0-based
	Title       string    `gorm:"index;size:512" json:"title"`
	AuthorID    string    `gorm:"index;size:64" json:"author"`
	Author      Author    `gorm:"foreignKey:AuthorID" json:"-"`
	Image       string    `gorm:"size:2048" json:"image,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Published   time.Time `json:"published"`
	Genres      []Genre   `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GenreIDs returns the ids of the book's genres in stored order.
func (b *Book) GenreIDs() []string {
	ids := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}
