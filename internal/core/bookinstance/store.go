// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import "context"

// Repository defines the storage contract for book copies.
type Repository interface {
	// ListInstances returns one page of copies ordered by ID, each with its book title loaded.
	ListInstances(context context.Context, limit, offset int) ([]*BookInstance, int, error)
	GetInstance(context context.Context, id int) (*BookInstance, error)

	CountInstances(context context.Context) (int, error)
	CountAvailable(context context.Context) (int, error)

	CreateInstance(context context.Context, instance *BookInstance) error
	UpdateInstance(context context.Context, instance *BookInstance) error

	// DeleteInstance reports false when no row matched.
	DeleteInstance(context context.Context, id int) (bool, error)
}
