// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/core/genre"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/guard"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/pagination"
	"github.com/taibuivan/locallibrary/pkg/slice"
)

// Authors is the author directory a book form selects from.
type Authors interface {
	AllAuthors(context context.Context) ([]*author.Author, error)
	AuthorExists(context context.Context, id int) (bool, error)
}

// Genres is the genre directory a book form selects from.
type Genres interface {
	AllGenres(context context.Context) ([]*genre.Genre, error)
	AllExist(context context.Context, ids []int) (bool, error)
}

// Options are the choices offered by the book form.
type Options struct {
	Authors []*author.Author
	Genres  []*genre.Genre
}

type Service struct {
	repo    Repository
	authors Authors
	genres  Genres
	logger  *slog.Logger
}

func NewService(repo Repository, authors Authors, genres Genres, logger *slog.Logger) *Service {
	return &Service{repo: repo, authors: authors, genres: genres, logger: logger}
}

func (service *Service) ListBooks(context context.Context, params pagination.Params) ([]*Book, pagination.Meta, error) {
	books, total, err := service.repo.ListBooks(context, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return books, pagination.NewMeta(params.Page, params.Limit, total), nil
}

func (service *Service) AllBooks(context context.Context) ([]*Book, error) {
	return service.repo.AllBooks(context)
}

func (service *Service) GetBook(context context.Context, id int) (*Book, error) {
	return lookup.MustFind(context, Resource, service.repo.GetBook, id)
}

// GetBookDetail loads the book with its copies.
func (service *Service) GetBookDetail(context context.Context, id int) (*Book, []Copy, error) {
	book, err := service.GetBook(context, id)
	if err != nil {
		return nil, nil, err
	}

	copies, err := service.repo.ListCopies(context, id)
	if err != nil {
		return nil, nil, err
	}
	return book, copies, nil
}

func (service *Service) BookExists(context context.Context, id int) (bool, error) {
	return service.repo.BookExists(context, id)
}

func (service *Service) CountBooks(context context.Context) (int, error) {
	return service.repo.CountBooks(context)
}

// FormOptions loads every author and genre for the book form.
func (service *Service) FormOptions(context context.Context) (Options, error) {
	authors, err := service.authors.AllAuthors(context)
	if err != nil {
		return Options{}, err
	}

	genres, err := service.genres.AllGenres(context)
	if err != nil {
		return Options{}, err
	}
	return Options{Authors: authors, Genres: genres}, nil
}

// checkReferences verifies the author and genres named by a submission exist.
func (service *Service) checkReferences(context context.Context, input Input) error {
	authorExists, err := service.authors.AuthorExists(context, input.AuthorID)
	if err != nil {
		return err
	}

	genresExist, err := service.genres.AllExist(context, input.GenreIDs)
	if err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.
		Custom(FieldAuthor, !authorExists, "form.author_exists", "Author does not exist").
		Custom(FieldGenre, !genresExist, "form.book_genre_exists", "Genre does not exist")
	return validator.Err()
}

func (service *Service) CreateBook(context context.Context, input Input) (*Book, error) {
	if err := service.checkReferences(context, input); err != nil {
		return nil, err
	}

	book := &Book{}
	input.apply(book)

	if err := service.repo.CreateBook(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_created", slog.Int("book_id", book.ID), slog.Int("genres", len(book.GenreIDs)))
	return book, nil
}

func (service *Service) UpdateBook(context context.Context, id int, input Input) (*Book, error) {
	book, err := service.GetBook(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.checkReferences(context, input); err != nil {
		return nil, err
	}

	input.apply(book)
	if err := service.repo.UpdateBook(context, book); err != nil {
		if lookup.IsNotFound(err) {
			return nil, apperr.NotFound(Resource)
		}
		return nil, err
	}

	service.logger.Info("book_updated", slog.Int("book_id", id))
	return book, nil
}

// Dependents lists the copies blocking the book's deletion.
func (service *Service) Dependents(context context.Context, id int) ([]guard.Dependent, error) {
	copies, err := service.repo.ListCopies(context, id)
	if err != nil {
		return nil, err
	}

	return slice.Map(copies, func(item Copy) guard.Dependent {
		return guard.Dependent{
			Kind:  "bookinstance",
			ID:    item.ID,
			Label: item.Imprint + " (" + item.Status + ")",
			URL:   item.URL(),
		}
	}), nil
}

// DeleteBook removes the book and its genre links unless copies remain.
func (service *Service) DeleteBook(context context.Context, id int) (guard.Outcome, error) {
	if _, err := service.GetBook(context, id); err != nil {
		return guard.Outcome{}, err
	}

	outcome, err := guard.Attempt(context, id, service.Dependents, service.repo.DeleteBook)
	if err != nil {
		return guard.Outcome{}, err
	}

	switch {
	case outcome.Deleted:
		service.logger.Warn("book_deleted", slog.Int("book_id", id))
	case outcome.Blocked():
		service.logger.Info("book_delete_blocked", slog.Int("book_id", id), slog.Int("copies", len(outcome.Dependents)))
	default:
		return guard.Outcome{}, apperr.NotFound(Resource)
	}
	return outcome, nil
}
