// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "context"

type Repository interface {
	ListGenres(context context.Context, limit, offset int) ([]*Genre, int, error)
	AllGenres(context context.Context) ([]*Genre, error)
	GetGenre(context context.Context, id int) (*Genre, error)
	CountGenres(context context.Context) (int, error)

	// FindByName matches names case-insensitively. A miss is a NOT_FOUND error.
	FindByName(context context.Context, name string) (*Genre, error)

	// CountExisting reports how many of the given ids name a stored genre.
	CountExisting(context context.Context, ids []int) (int, error)

	CreateGenre(context context.Context, genre *Genre) error
	UpdateGenre(context context.Context, genre *Genre) error
	ListBooks(context context.Context, genreID int) ([]BookSummary, error)

	// DeleteGenre removes the genre only while no book is filed under it.
	DeleteGenre(context context.Context, id int) (bool, error)
}
