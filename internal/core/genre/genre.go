// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"strconv"
	"time"
)

// Genre is a category of books, such as "Fantasy" or "Poetry".
type Genre struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// URL is the genre's detail page.
func (genre *Genre) URL() string {
	return ListURL + "/" + strconv.Itoa(genre.ID)
}

// BookSummary is a book filed under the genre.
type BookSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// URL is the book's detail page.
func (book BookSummary) URL() string {
	return "/books/" + strconv.Itoa(book.ID)
}

const (
	ListURL       = "/genres"
	FlashNotFound = "home.no_genre"
	Resource      = "Genre"
)

const FieldName = "name"
