// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import (
	"context"
	"log/slog"

	"github.com/taibuivan/locallibrary/internal/core/book"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/pagination"
)

// Books is the book catalog a copy form selects from.
type Books interface {
	AllBooks(context context.Context) ([]*book.Book, error)
	BookExists(context context.Context, id int) (bool, error)
}

type Service struct {
	repo   Repository
	books  Books
	logger *slog.Logger
}

func NewService(repo Repository, books Books, logger *slog.Logger) *Service {
	return &Service{repo: repo, books: books, logger: logger}
}

func (service *Service) ListInstances(context context.Context, params pagination.Params) ([]*BookInstance, pagination.Meta, error) {
	instances, total, err := service.repo.ListInstances(context, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return instances, pagination.NewMeta(params.Page, params.Limit, total), nil
}

func (service *Service) GetInstance(context context.Context, id int) (*BookInstance, error) {
	return lookup.MustFind(context, Resource, service.repo.GetInstance, id)
}

func (service *Service) CountInstances(context context.Context) (int, error) {
	return service.repo.CountInstances(context)
}

func (service *Service) CountAvailable(context context.Context) (int, error) {
	return service.repo.CountAvailable(context)
}

// FormOptions loads every book for the copy form.
func (service *Service) FormOptions(context context.Context) ([]*book.Book, error) {
	return service.books.AllBooks(context)
}

func (service *Service) checkBook(context context.Context, input Input) error {
	exists, err := service.books.BookExists(context, input.BookID)
	if err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.Custom(FieldBook, !exists, "form.book_exists", "Book does not exist")
	return validator.Err()
}

func (service *Service) CreateInstance(context context.Context, input Input) (*BookInstance, error) {
	if err := service.checkBook(context, input); err != nil {
		return nil, err
	}

	instance := &BookInstance{}
	input.apply(instance)

	if err := service.repo.CreateInstance(context, instance); err != nil {
		return nil, err
	}

	service.logger.Info("bookinstance_created",
		slog.Int("bookinstance_id", instance.ID),
		slog.Int("book_id", instance.BookID),
		slog.String("status", instance.Status),
	)
	return instance, nil
}

func (service *Service) UpdateInstance(context context.Context, id int, input Input) (*BookInstance, error) {
	instance, err := service.GetInstance(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.checkBook(context, input); err != nil {
		return nil, err
	}

	input.apply(instance)
	if err := service.repo.UpdateInstance(context, instance); err != nil {
		if lookup.IsNotFound(err) {
			return nil, apperr.NotFound(Resource)
		}
		return nil, err
	}

	service.logger.Info("bookinstance_updated", slog.Int("bookinstance_id", id), slog.String("status", instance.Status))
	return instance, nil
}

// DeleteInstance removes a copy. Nothing references copies, so no guard applies.
func (service *Service) DeleteInstance(context context.Context, id int) error {
	removed, err := service.repo.DeleteInstance(context, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound(Resource)
	}

	service.logger.Warn("bookinstance_deleted", slog.Int("bookinstance_id", id))
	return nil
}
