// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"log/slog"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/guard"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/pagination"
	"github.com/taibuivan/locallibrary/pkg/slice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListGenres(context context.Context, params pagination.Params) ([]*Genre, pagination.Meta, error) {
	genres, total, err := service.repo.ListGenres(context, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return genres, pagination.NewMeta(params.Page, params.Limit, total), nil
}

func (service *Service) AllGenres(context context.Context) ([]*Genre, error) {
	return service.repo.AllGenres(context)
}

func (service *Service) GetGenre(context context.Context, id int) (*Genre, error) {
	return lookup.MustFind(context, Resource, service.repo.GetGenre, id)
}

func (service *Service) GetGenreDetail(context context.Context, id int) (*Genre, []BookSummary, error) {
	genre, err := service.GetGenre(context, id)
	if err != nil {
		return nil, nil, err
	}

	books, err := service.repo.ListBooks(context, id)
	if err != nil {
		return nil, nil, err
	}
	return genre, books, nil
}

func (service *Service) CountGenres(context context.Context) (int, error) {
	return service.repo.CountGenres(context)
}

// AllExist reports whether every id names a stored genre. Duplicates count once.
func (service *Service) AllExist(context context.Context, ids []int) (bool, error) {
	unique := make(map[int]struct{}, len(ids))
	distinct := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, seen := unique[id]; !seen {
			unique[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}

	found, err := service.repo.CountExisting(context, distinct)
	if err != nil {
		return false, err
	}
	return found == len(distinct), nil
}

/*
CreateGenre stores a new genre unless one with the same name exists.

Returns:
  - *Genre: the created genre, or the existing one
  - bool: true when a genre with that name already existed
  - error: storage failures
*/
func (service *Service) CreateGenre(context context.Context, input Input) (*Genre, bool, error) {
	existing, err := service.findByName(context, input.Name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	genre := &Genre{Name: input.Name}
	if err := service.repo.CreateGenre(context, genre); err != nil {
		// Lost a race against a concurrent insert of the same name
		if apperr.HasCode(err, apperr.CodeConflict) {
			if existing, findErr := service.findByName(context, input.Name); findErr == nil && existing != nil {
				return existing, true, nil
			}
		}
		return nil, false, err
	}

	service.logger.Info("genre_created", slog.Int("genre_id", genre.ID))
	return genre, false, nil
}

// UpdateGenre renames a genre. Taking another genre's name is a validation error.
func (service *Service) UpdateGenre(context context.Context, id int, input Input) (*Genre, error) {
	genre, err := service.GetGenre(context, id)
	if err != nil {
		return nil, err
	}

	existing, err := service.findByName(context, input.Name)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.Custom(FieldName, existing != nil && existing.ID != id, "form.genre_duplicate", "Genre already exists")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	genre.Name = input.Name
	if err := service.repo.UpdateGenre(context, genre); err != nil {
		if lookup.IsNotFound(err) {
			return nil, apperr.NotFound(Resource)
		}
		return nil, err
	}

	service.logger.Info("genre_updated", slog.Int("genre_id", id))
	return genre, nil
}

// Dependents lists the books filed under the genre.
func (service *Service) Dependents(context context.Context, id int) ([]guard.Dependent, error) {
	books, err := service.repo.ListBooks(context, id)
	if err != nil {
		return nil, err
	}

	return slice.Map(books, func(book BookSummary) guard.Dependent {
		return guard.Dependent{Kind: "book", ID: book.ID, Label: book.Title, URL: book.URL()}
	}), nil
}

func (service *Service) DeleteGenre(context context.Context, id int) (guard.Outcome, error) {
	if _, err := service.GetGenre(context, id); err != nil {
		return guard.Outcome{}, err
	}

	outcome, err := guard.Attempt(context, id, service.Dependents, service.repo.DeleteGenre)
	if err != nil {
		return guard.Outcome{}, err
	}

	switch {
	case outcome.Deleted:
		service.logger.Warn("genre_deleted", slog.Int("genre_id", id))
	case outcome.Blocked():
		service.logger.Info("genre_delete_blocked", slog.Int("genre_id", id), slog.Int("books", len(outcome.Dependents)))
	default:
		return guard.Outcome{}, apperr.NotFound(Resource)
	}
	return outcome, nil
}

func (service *Service) findByName(context context.Context, name string) (*Genre, error) {
	genre, err := service.repo.FindByName(context, name)
	if lookup.IsNotFound(err) {
		return nil, nil
	}
	return genre, err
}
