// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// Repository is the author persistence boundary. Missing rows are reported
// as errors carrying the NOT_FOUND code.
type Repository interface {
	ListAuthors(context context.Context, limit, offset int) ([]*Author, int, error)
	AllAuthors(context context.Context) ([]*Author, error)
	GetAuthor(context context.Context, id int) (*Author, error)
	AuthorExists(context context.Context, id int) (bool, error)
	CountAuthors(context context.Context) (int, error)
	CreateAuthor(context context.Context, author *Author) error
	UpdateAuthor(context context.Context, author *Author) error

	// ListBooks returns the author's books, which also block its deletion.
	ListBooks(context context.Context, authorID int) ([]BookSummary, error)

	// DeleteAuthor removes the author only while no book references it.
	DeleteAuthor(context context.Context, id int) (bool, error)
}
