// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"strconv"
	"time"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/core/genre"
)

// Book is a title in the catalog. Its physical copies are book instances.
type Book struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	ISBN      string    `json:"isbn"`
	AuthorID  int       `json:"author_id"`
	GenreIDs  []int     `json:"genre_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Loaded for display only
	Author *author.Author  `json:"author,omitempty"`
	Genres []*genre.Genre `json:"genres,omitempty"`
}

// URL is the book's detail page.
func (book *Book) URL() string {
	return ListURL + "/" + strconv.Itoa(book.ID)
}

// Copy is a physical copy of the book, as listed on the detail page.
type Copy struct {
	ID      int        `json:"id"`
	Imprint string     `json:"imprint"`
	Status  string     `json:"status"`
	DueBack *time.Time `json:"due_back"`
}

// URL is the copy's detail page.
func (item Copy) URL() string {
	return "/bookinstances/" + strconv.Itoa(item.ID)
}

const (
	ListURL       = "/books"
	FlashNotFound = "home.no_book"
	Resource      = "Book"
)

// Global field names for validation
const (
	FieldTitle   = "title"
	FieldAuthor  = "author"
	FieldSummary = "summary"
	FieldISBN    = "isbn"
	FieldGenre   = "genre"
)
