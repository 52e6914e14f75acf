// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import (
	"strconv"
	"time"

	"github.com/taibuivan/locallibrary/internal/core/book"
)

// BookInstance is one physical copy of a book.
type BookInstance struct {
	ID        int        `json:"id"`
	BookID    int        `json:"book_id"`
	Imprint   string     `json:"imprint"`
	Status    string     `json:"status"`
	DueBack   *time.Time `json:"due_back"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Loaded for display only
	Book *book.Book `json:"book,omitempty"`
}

// URL is the copy's detail page.
func (instance *BookInstance) URL() string {
	return ListURL + "/" + strconv.Itoa(instance.ID)
}

// OnLoan reports whether the copy is checked out and carries a due date.
func (instance *BookInstance) OnLoan() bool {
	return instance.Status == StatusOnLoan
}

// # Status

const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusOnLoan      = "On Loan"
	StatusReserved    = "Reserved"
)

// Statuses lists every status in form order.
var Statuses = []string{StatusMaintenance, StatusAvailable, StatusOnLoan, StatusReserved}

// DefaultStatus is stored when a submission leaves the status empty.
const DefaultStatus = StatusMaintenance

const (
	ListURL       = "/bookinstances"
	FlashNotFound = "home.no_bookinstance"
	Resource      = "Book copy"
)

// Global field names for validation
const (
	FieldBook    = "book"
	FieldImprint = "imprint"
	FieldStatus  = "status"
	FieldDueBack = "due_back"
)
