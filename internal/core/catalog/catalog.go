// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the library home page.

The page summarizes the whole collection as record counts. Each count comes
from the owning domain service and the five are fetched concurrently.
*/
package catalog

import "context"

// Counts is the collection summary shown on the home page.
type Counts struct {
	Books           int `json:"books"`
	Copies          int `json:"copies"`
	CopiesAvailable int `json:"copies_available"`
	Authors         int `json:"authors"`
	Genres          int `json:"genres"`
}

// Counter returns the size of one collection.
type Counter func(context context.Context) (int, error)

// Sources names the counter behind each figure.
type Sources struct {
	Books           Counter
	Copies          Counter
	CopiesAvailable Counter
	Authors         Counter
	Genres          Counter
}
