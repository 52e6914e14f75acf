// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package guard implements dependency-guarded deletes.

A parent row (an author, a genre, a book) may only be removed while nothing
references it. A blocked delete is not an error: the caller receives the
dependents and renders them so staff can remove or reassign them first.

Repositories pair the pre-check with a conditional DELETE, so a dependent
inserted between the check and the delete still stops the removal.
*/
package guard

import "context"

// Dependent summarizes one record that blocks a delete.
type Dependent struct {
	Kind  string
	ID    int
	Label string
	URL   string
}

// Outcome is the result of a guarded delete.
type Outcome struct {
	Deleted    bool
	Dependents []Dependent
}

// Blocked reports whether dependents prevented the delete.
func (outcome Outcome) Blocked() bool {
	return !outcome.Deleted && len(outcome.Dependents) > 0
}

// Removed is the outcome of a successful delete.
func Removed() Outcome {
	return Outcome{Deleted: true}
}

// BlockedBy is the outcome of a delete stopped by dependents.
func BlockedBy(dependents []Dependent) Outcome {
	return Outcome{Dependents: dependents}
}

// DependentsFunc lists the records that still reference a parent.
type DependentsFunc func(context context.Context, id int) ([]Dependent, error)

// RemoveFunc deletes a parent. It reports false when the row was not removed
// because a dependent appeared after the check.
type RemoveFunc func(context context.Context, id int) (bool, error)

/*
Attempt deletes a parent row unless it still has dependents.

Parameters:
  - context: context.Context
  - id: parent identifier
  - dependents: lists blocking children
  - remove: conditional delete of the parent

Returns:
  - Outcome: Deleted, or BlockedBy with the current dependents
  - error: storage failures and not-found errors from remove
*/
func Attempt(context context.Context, id int, dependents DependentsFunc, remove RemoveFunc) (Outcome, error) {

	// 1. Pre-check so the confirmation page can list what blocks the delete
	children, err := dependents(context, id)
	if err != nil {
		return Outcome{}, err
	}
	if len(children) > 0 {
		return BlockedBy(children), nil
	}

	// 2. Conditional delete; a concurrent insert makes it remove nothing
	removed, err := remove(context, id)
	if err != nil {
		return Outcome{}, err
	}
	if removed {
		return Removed(), nil
	}

	// 3. Lost the race: report whatever blocks it now
	children, err = dependents(context, id)
	if err != nil {
		return Outcome{}, err
	}
	return BlockedBy(children), nil
}
