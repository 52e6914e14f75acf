// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var authorColumns = strings.Join(schema.LibraryAuthor.Columns(), ", ")

func scanAuthor(row pgx.Row) (*Author, error) {
	a := &Author{}
	err := row.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (repository *PostgresRepository) ListAuthors(context context.Context, limit, offset int) ([]*Author, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.LibraryAuthor.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_authors")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`,
		authorColumns, schema.LibraryAuthor.Table,
		schema.LibraryAuthor.FamilyName, schema.LibraryAuthor.FirstName, schema.LibraryAuthor.ID,
	)

	authors, err := repository.queryAuthors(context, query, limit, offset)
	return authors, total, err
}

func (repository *PostgresRepository) AllAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		authorColumns, schema.LibraryAuthor.Table, schema.LibraryAuthor.FamilyName, schema.LibraryAuthor.FirstName,
	)
	return repository.queryAuthors(context, query)
}

func (repository *PostgresRepository) queryAuthors(context context.Context, query string, args ...any) ([]*Author, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}
	return authors, dberr.Wrap(rows.Err(), "list_authors")
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		authorColumns, schema.LibraryAuthor.Table, schema.LibraryAuthor.ID,
	)

	a, err := scanAuthor(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}
	return a, nil
}

func (repository *PostgresRepository) AuthorExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.LibraryAuthor.Table, schema.LibraryAuthor.ID)

	var exists bool
	err := repository.db.QueryRow(context, query, id).Scan(&exists)
	return exists, dberr.Wrap(err, "author_exists")
}

func (repository *PostgresRepository) CountAuthors(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT count(*) FROM %s`, schema.LibraryAuthor.Table)).Scan(&total)
	return total, dberr.Wrap(err, "count_authors")
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.LibraryAuthor.Table,
		schema.LibraryAuthor.FirstName, schema.LibraryAuthor.FamilyName, schema.LibraryAuthor.DateOfBirth,
		schema.LibraryAuthor.DateOfDeath, schema.LibraryAuthor.CreatedAt, schema.LibraryAuthor.UpdatedAt,
		schema.LibraryAuthor.ID, schema.LibraryAuthor.CreatedAt, schema.LibraryAuthor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.LibraryAuthor.Table,
		schema.LibraryAuthor.FirstName, schema.LibraryAuthor.FamilyName, schema.LibraryAuthor.DateOfBirth,
		schema.LibraryAuthor.DateOfDeath, schema.LibraryAuthor.UpdatedAt,
		schema.LibraryAuthor.ID, schema.LibraryAuthor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_author")
}

func (repository *PostgresRepository) ListBooks(context context.Context, authorID int) ([]BookSummary, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.LibraryBook.ID, schema.LibraryBook.Title, schema.LibraryBook.Summary,
		schema.LibraryBook.Table, schema.LibraryBook.AuthorID, schema.LibraryBook.Title,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_books")
	}
	defer rows.Close()

	var books []BookSummary
	for rows.Next() {
		var book BookSummary
		if err := rows.Scan(&book.ID, &book.Title, &book.Summary); err != nil {
			return nil, dberr.Wrap(err, "scan_author_book")
		}
		books = append(books, book)
	}
	return books, dberr.Wrap(rows.Err(), "list_author_books")
}

// DeleteAuthor removes the row only while no book references it; the
// foreign key also rejects a book inserted concurrently.
func (repository *PostgresRepository) DeleteAuthor(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s a
		WHERE a.%s = $1
		  AND NOT EXISTS (SELECT 1 FROM %s b WHERE b.%s = a.%s)
	`,
		schema.LibraryAuthor.Table, schema.LibraryAuthor.ID,
		schema.LibraryBook.Table, schema.LibraryBook.AuthorID, schema.LibraryAuthor.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return false, dberr.Wrap(err, "delete_author")
	}
	return cmd.RowsAffected() > 0, nil
}
