// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "context"

type Repository interface {
	// ListBooks returns a page of books with their author loaded.
	ListBooks(context context.Context, limit, offset int) ([]*Book, int, error)
	AllBooks(context context.Context) ([]*Book, error)

	// GetBook returns the book with its author and genres loaded.
	GetBook(context context.Context, id int) (*Book, error)
	BookExists(context context.Context, id int) (bool, error)
	CountBooks(context context.Context) (int, error)

	// CreateBook and UpdateBook write the book and its genre links atomically.
	CreateBook(context context.Context, book *Book) error
	UpdateBook(context context.Context, book *Book) error

	ListCopies(context context.Context, bookID int) ([]Copy, error)

	// DeleteBook removes the book and its genre links unless a copy references it.
	DeleteBook(context context.Context, id int) (bool, error)
}
