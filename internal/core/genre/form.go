// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "github.com/taibuivan/locallibrary/internal/platform/validate"

// Input is a validated genre submission.
type Input struct {
	Name string
}

// Form declares the genre rule table.
var Form = validate.Pipeline[Input]{
	Schema: validate.Schema{
		{Name: FieldName, Rules: []validate.Rule{
			validate.NotEmpty().WithKey("form.genre_valid"),
			validate.MinLength(3).WithKey("form.genre_valid"),
			validate.MaxLength(255).WithKey("form.genre_valid"),
		}},
	},
	Build: func(values validate.Values) Input {
		return Input{Name: values.Get(FieldName)}
	},
}

// DecodeForm validates a raw genre submission.
func DecodeForm(raw validate.Raw) *validate.Result[Input] {
	return Form.Run(raw)
}

// FormValues pre-fills the update form from a stored genre.
func FormValues(genre *Genre) validate.Values {
	return validate.Values{FieldName: {genre.Name}}
}
