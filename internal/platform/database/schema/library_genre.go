package schema

// LibraryGenreTable represents the 'library.genre' table
type LibraryGenreTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// LibraryGenre is the schema definition for library.genre
var LibraryGenre = LibraryGenreTable{
	Table:     "library.genre",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

func (t LibraryGenreTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt}
}
