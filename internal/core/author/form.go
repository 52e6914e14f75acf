// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"time"

	"github.com/taibuivan/locallibrary/internal/platform/validate"
)

// Input is a validated author submission.
type Input struct {
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// Form declares the author rule table.
var Form = validate.Pipeline[Input]{
	Schema: validate.Schema{
		{Name: FieldFirstName, Rules: []validate.Rule{
			validate.NotEmpty().WithKey("form.first_name_valid"),
			validate.Alphanumeric().WithKey("form.first_name_char"),
			validate.MaxLength(255).WithKey("form.first_name_valid"),
		}},
		{Name: FieldFamilyName, Rules: []validate.Rule{
			validate.NotEmpty().WithKey("form.family_name_valid"),
			validate.Alphanumeric().WithKey("form.family_name_char"),
			validate.MaxLength(255).WithKey("form.family_name_valid"),
		}},
		{Name: FieldDateOfBirth, Sanitize: validate.Trim, Rules: []validate.Rule{
			validate.OptionalDate().WithKey("form.date_of_birth_valid"),
		}},
		{Name: FieldDateOfDeath, Sanitize: validate.Trim, Rules: []validate.Rule{
			validate.OptionalDate().WithKey("form.date_of_death_valid"),
			validate.After(FieldDateOfBirth).WithKey("form.date_of_death_after"),
		}},
	},
	Build: func(values validate.Values) Input {
		return Input{
			FirstName:   values.Get(FieldFirstName),
			FamilyName:  values.Get(FieldFamilyName),
			DateOfBirth: values.Date(FieldDateOfBirth),
			DateOfDeath: values.Date(FieldDateOfDeath),
		}
	},
}

// DecodeForm validates a raw author submission.
func DecodeForm(raw validate.Raw) *validate.Result[Input] {
	return Form.Run(raw)
}

// FormValues pre-fills the update form from a stored author.
func FormValues(author *Author) validate.Values {
	return validate.Values{
		FieldFirstName:   {author.FirstName},
		FieldFamilyName:  {author.FamilyName},
		FieldDateOfBirth: {validate.EncodeDate(author.DateOfBirth)},
		FieldDateOfDeath: {validate.EncodeDate(author.DateOfDeath)},
	}
}

func (input Input) apply(author *Author) {
	author.FirstName = input.FirstName
	author.FamilyName = input.FamilyName
	author.DateOfBirth = input.DateOfBirth
	author.DateOfDeath = input.DateOfDeath
}
