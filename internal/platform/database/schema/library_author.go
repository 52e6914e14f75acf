package schema

// LibraryAuthorTable represents the 'library.author' table
type LibraryAuthorTable struct {
	Table       string
	ID          string
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
	CreatedAt   string
	UpdatedAt   string
}

// LibraryAuthor is the schema definition for library.author
var LibraryAuthor = LibraryAuthorTable{
	Table:       "library.author",
	ID:          "id",
	FirstName:   "firstname",
	FamilyName:  "familyname",
	DateOfBirth: "dateofbirth",
	DateOfDeath: "dateofdeath",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t LibraryAuthorTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.FamilyName, t.DateOfBirth, t.DateOfDeath, t.CreatedAt, t.UpdatedAt}
}
