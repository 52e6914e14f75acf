// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"strconv"
	"time"
)

// Author represents a writer of one or more books in the catalog.
type Author struct {
	ID          int        `json:"id"`
	FirstName   string     `json:"first_name"`
	FamilyName  string     `json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Name is the display name, "First Family".
func (author *Author) Name() string {
	return author.FirstName + " " + author.FamilyName
}

// Lifespan renders the years of birth and death, either of which may be unknown.
func (author *Author) Lifespan() string {
	if author.DateOfBirth == nil && author.DateOfDeath == nil {
		return ""
	}

	var birth, death string
	if author.DateOfBirth != nil {
		birth = strconv.Itoa(author.DateOfBirth.Year())
	}
	if author.DateOfDeath != nil {
		death = strconv.Itoa(author.DateOfDeath.Year())
	}
	return birth + " – " + death
}

// URL is the author's detail page.
func (author *Author) URL() string {
	return ListURL + "/" + strconv.Itoa(author.ID)
}

// BookSummary is a book written by the author, as listed on the detail page.
type BookSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// URL is the book's detail page.
func (book BookSummary) URL() string {
	return "/books/" + strconv.Itoa(book.ID)
}

// Routing and message keys
const (
	ListURL       = "/authors"
	FlashNotFound = "home.no_author"
	Resource      = "Author"
)

// Global field names for validation
const (
	FieldFirstName   = "first_name"
	FieldFamilyName  = "family_name"
	FieldDateOfBirth = "date_of_birth"
	FieldDateOfDeath = "date_of_death"
)
