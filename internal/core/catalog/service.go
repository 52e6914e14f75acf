// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	sources Sources
}

func NewService(sources Sources) *Service {
	return &Service{sources: sources}
}

/*
Counts fetches every collection size concurrently.

The first failure cancels the remaining queries and is returned as is. It is
logged by the error responder, not here.

Returns:
  - Counts: The collection summary
  - error: The first counter failure
*/
func (service *Service) Counts(context context.Context) (Counts, error) {
	var counts Counts

	group, groupCtx := errgroup.WithContext(context)

	targets := []struct {
		count  Counter
		target *int
	}{
		{service.sources.Books, &counts.Books},
		{service.sources.Copies, &counts.Copies},
		{service.sources.CopiesAvailable, &counts.CopiesAvailable},
		{service.sources.Authors, &counts.Authors},
		{service.sources.Genres, &counts.Genres},
	}

	// Each goroutine writes a distinct field
	for _, item := range targets {
		group.Go(func() error {
			total, err := item.count(groupCtx)
			if err != nil {
				return err
			}
			*item.target = total
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Counts{}, err
	}
	return counts, nil
}
