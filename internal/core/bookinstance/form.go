// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import (
	"strconv"
	"time"

	"github.com/taibuivan/locallibrary/internal/platform/validate"
)

// Input is a validated copy submission. The referenced book is checked
// against storage by the service.
type Input struct {
	BookID  int
	Imprint string
	Status  string
	DueBack *time.Time
}

// Form declares the copy rule table.
var Form = validate.Pipeline[Input]{
	Schema: validate.Schema{
		{Name: FieldBook, Sanitize: validate.Trim, Rules: []validate.Rule{
			validate.NotEmpty().WithKey("form.book_valid"),
			validate.MaxLength(255).WithKey("form.book_valid"),
			validate.Integer().WithKey("form.book_valid"),
		}},
		{Name: FieldImprint, Rules: []validate.Rule{
			validate.NotEmpty().WithKey("form.imprint_valid"),
			validate.MaxLength(255).WithKey("form.imprint_valid"),
		}},
		{Name: FieldStatus, Sanitize: validate.Trim, Rules: []validate.Rule{
			validate.OneOf(Statuses...).WithKey("form.status_valid"),
		}},
		{Name: FieldDueBack, Sanitize: validate.Trim, Rules: []validate.Rule{
			validate.OptionalISO8601().WithKey("form.dueBack_valid"),
			validate.RequiredWhen(FieldStatus, StatusOnLoan).WithKey("form.due_back_required"),
		}},
	},
	Build: func(values validate.Values) Input {
		bookID, _ := values.Int(FieldBook)

		status := values.Get(FieldStatus)
		if status == "" {
			status = DefaultStatus
		}

		return Input{
			BookID:  bookID,
			Imprint: values.Get(FieldImprint),
			Status:  status,
			DueBack: values.Date(FieldDueBack),
		}
	},
}

// DecodeForm validates a raw copy submission.
func DecodeForm(raw validate.Raw) *validate.Result[Input] {
	return Form.Run(raw)
}

// FormValues pre-fills the update form from a stored copy.
func FormValues(instance *BookInstance) validate.Values {
	return validate.Values{
		FieldBook:    {strconv.Itoa(instance.BookID)},
		FieldImprint: {instance.Imprint},
		FieldStatus:  {instance.Status},
		FieldDueBack: {validate.EncodeDate(instance.DueBack)},
	}
}

func (input Input) apply(instance *BookInstance) {
	instance.BookID = input.BookID
	instance.Imprint = input.Imprint
	instance.Status = input.Status
	instance.DueBack = input.DueBack
}
