package schema

// LibraryBookInstanceTable represents the 'library.bookinstance' table
type LibraryBookInstanceTable struct {
	Table     string
	ID        string
	BookID    string
	Imprint   string
	Status    string
	DueBack   string
	CreatedAt string
	UpdatedAt string
}

// LibraryBookInstance is the schema definition for library.bookinstance
var LibraryBookInstance = LibraryBookInstanceTable{
	Table:     "library.bookinstance",
	ID:        "id",
	BookID:    "bookid",
	Imprint:   "imprint",
	Status:    "status",
	DueBack:   "dueback",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t LibraryBookInstanceTable) Columns() []string {
	return []string{t.ID, t.BookID, t.Imprint, t.Status, t.DueBack, t.CreatedAt, t.UpdatedAt}
}
