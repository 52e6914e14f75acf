// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/guard"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
	"github.com/taibuivan/locallibrary/pkg/pagination"
	"github.com/taibuivan/locallibrary/pkg/slice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAuthors(context context.Context, params pagination.Params) ([]*Author, pagination.Meta, error) {
	authors, total, err := service.repo.ListAuthors(context, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return authors, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// AllAuthors lists every author for selection lists.
func (service *Service) AllAuthors(context context.Context) ([]*Author, error) {
	return service.repo.AllAuthors(context)
}

func (service *Service) GetAuthor(context context.Context, id int) (*Author, error) {
	return lookup.MustFind(context, Resource, service.repo.GetAuthor, id)
}

// GetAuthorDetail loads the author together with the books they wrote.
func (service *Service) GetAuthorDetail(context context.Context, id int) (*Author, []BookSummary, error) {
	author, err := service.GetAuthor(context, id)
	if err != nil {
		return nil, nil, err
	}

	books, err := service.repo.ListBooks(context, id)
	if err != nil {
		return nil, nil, err
	}
	return author, books, nil
}

func (service *Service) AuthorExists(context context.Context, id int) (bool, error) {
	return service.repo.AuthorExists(context, id)
}

func (service *Service) CountAuthors(context context.Context) (int, error) {
	return service.repo.CountAuthors(context)
}

func (service *Service) CreateAuthor(context context.Context, input Input) (*Author, error) {
	author := &Author{}
	input.apply(author)

	if err := service.repo.CreateAuthor(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created", slog.Int("author_id", author.ID))
	return author, nil
}

func (service *Service) UpdateAuthor(context context.Context, id int, input Input) (*Author, error) {
	author, err := service.GetAuthor(context, id)
	if err != nil {
		return nil, err
	}

	input.apply(author)
	if err := service.repo.UpdateAuthor(context, author); err != nil {
		if lookup.IsNotFound(err) {
			return nil, apperr.NotFound(Resource)
		}
		return nil, err
	}

	service.logger.Info("author_updated", slog.Int("author_id", author.ID))
	return author, nil
}

// Dependents lists the books blocking the author's deletion.
func (service *Service) Dependents(context context.Context, id int) ([]guard.Dependent, error) {
	books, err := service.repo.ListBooks(context, id)
	if err != nil {
		return nil, err
	}

	return slice.Map(books, func(book BookSummary) guard.Dependent {
		return guard.Dependent{Kind: "book", ID: book.ID, Label: book.Title, URL: book.URL()}
	}), nil
}

// DeleteAuthor removes the author unless books still reference it.
func (service *Service) DeleteAuthor(context context.Context, id int) (guard.Outcome, error) {
	if _, err := service.GetAuthor(context, id); err != nil {
		return guard.Outcome{}, err
	}

	outcome, err := guard.Attempt(context, id, service.Dependents, service.repo.DeleteAuthor)
	if err != nil {
		return guard.Outcome{}, err
	}

	switch {
	case outcome.Deleted:
		service.logger.Warn("author_deleted", slog.Int("author_id", id))
	case outcome.Blocked():
		service.logger.Info("author_delete_blocked", slog.Int("author_id", id), slog.Int("books", len(outcome.Dependents)))
	default:
		// Removed by someone else between the lookup and the delete
		return guard.Outcome{}, apperr.NotFound(Resource)
	}
	return outcome, nil
}
