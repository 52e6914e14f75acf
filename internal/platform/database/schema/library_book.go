package schema

// LibraryBookTable represents the 'library.book' table
type LibraryBookTable struct {
	Table     string
	ID        string
	Title     string
	Summary   string
	ISBN      string
	AuthorID  string
	CreatedAt string
	UpdatedAt string
}

// LibraryBook is the schema definition for library.book
var LibraryBook = LibraryBookTable{
	Table:     "library.book",
	ID:        "id",
	Title:     "title",
	Summary:   "summary",
	ISBN:      "isbn",
	AuthorID:  "authorid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t LibraryBookTable) Columns() []string {
	return []string{t.ID, t.Title, t.Summary, t.ISBN, t.AuthorID, t.CreatedAt, t.UpdatedAt}
}
