// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"strconv"

	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/slice"
)

// Input is a validated book submission. The referenced author and genres
// are checked against storage by the service.
type Input struct {
	Title    string
	AuthorID int
	Summary  string
	ISBN     string
	GenreIDs []int
}

// Form declares the book rule table.
var Form = validate.Pipeline[Input]{
	Schema: validate.Schema{
		{Name: FieldTitle, Rules: []validate.Rule{validate.NotEmpty().WithKey("form.title_valid")}},
		{Name: FieldAuthor, Sanitize: validate.Trim, Rules: []validate.Rule{
			validate.NotEmpty().WithKey("form.author_valid"),
			validate.Integer().WithKey("form.author_valid"),
		}},
		{Name: FieldSummary, Rules: []validate.Rule{validate.NotEmpty().WithKey("form.summary_valid")}},
		{Name: FieldISBN, Rules: []validate.Rule{
			validate.NotEmpty().WithKey("form.isbn_valid"),
			validate.MaxLength(255).WithKey("form.isbn_length"),
		}},
		{Name: FieldGenre, Multi: true, Sanitize: validate.Trim, Rules: []validate.Rule{
			validate.IntList().WithKey("form.book_genre_valid"),
		}},
	},
	Build: func(values validate.Values) Input {
		authorID, _ := values.Int(FieldAuthor)
		return Input{
			Title:    values.Get(FieldTitle),
			AuthorID: authorID,
			Summary:  values.Get(FieldSummary),
			ISBN:     values.Get(FieldISBN),
			GenreIDs: values.Ints(FieldGenre),
		}
	},
}

// DecodeForm validates a raw book submission.
func DecodeForm(raw validate.Raw) *validate.Result[Input] {
	return Form.Run(raw)
}

// FormValues pre-fills the update form from a stored book.
func FormValues(book *Book) validate.Values {
	return validate.Values{
		FieldTitle:   {book.Title},
		FieldAuthor:  {strconv.Itoa(book.AuthorID)},
		FieldSummary: {book.Summary},
		FieldISBN:    {book.ISBN},
		FieldGenre:   slice.Map(book.GenreIDs, strconv.Itoa),
	}
}

func (input Input) apply(book *Book) {
	book.Title = input.Title
	book.AuthorID = input.AuthorID
	book.Summary = input.Summary
	book.ISBN = input.ISBN
	book.GenreIDs = distinct(input.GenreIDs)
}

func distinct(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}
	return unique
}
