// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/core/genre"
	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectWithAuthor reads a book joined with its author.
var selectWithAuthor = fmt.Sprintf(`
	SELECT b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
	       a.%s, a.%s, a.%s, a.%s
	FROM %s b
	JOIN %s a ON a.%s = b.%s
`,
	schema.LibraryBook.ID, schema.LibraryBook.Title, schema.LibraryBook.Summary, schema.LibraryBook.ISBN,
	schema.LibraryBook.AuthorID, schema.LibraryBook.CreatedAt, schema.LibraryBook.UpdatedAt,
	schema.LibraryAuthor.FirstName, schema.LibraryAuthor.FamilyName, schema.LibraryAuthor.DateOfBirth, schema.LibraryAuthor.DateOfDeath,
	schema.LibraryBook.Table,
	schema.LibraryAuthor.Table, schema.LibraryAuthor.ID, schema.LibraryBook.AuthorID,
)

func scanBook(row pgx.Row) (*Book, error) {
	b := &Book{Author: &author.Author{}}
	err := row.Scan(
		&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
		&b.Author.FirstName, &b.Author.FamilyName, &b.Author.DateOfBirth, &b.Author.DateOfDeath,
	)
	b.Author.ID = b.AuthorID
	return b, err
}

func (repository *PostgresRepository) ListBooks(context context.Context, limit, offset int) ([]*Book, int, error) {
	total, err := repository.CountBooks(context)
	if err != nil {
		return nil, 0, err
	}

	query := selectWithAuthor + fmt.Sprintf(` ORDER BY b.%s ASC, b.%s ASC LIMIT $1 OFFSET $2`,
		schema.LibraryBook.Title, schema.LibraryBook.ID,
	)
	books, err := repository.queryBooks(context, query, limit, offset)
	return books, total, err
}

func (repository *PostgresRepository) AllBooks(context context.Context) ([]*Book, error) {
	return repository.queryBooks(context, selectWithAuthor+fmt.Sprintf(` ORDER BY b.%s ASC`, schema.LibraryBook.Title))
}

func (repository *PostgresRepository) queryBooks(context context.Context, query string, args ...any) ([]*Book, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}
	return books, dberr.Wrap(rows.Err(), "list_books")
}

func (repository *PostgresRepository) GetBook(context context.Context, id int) (*Book, error) {
	query := selectWithAuthor + fmt.Sprintf(` WHERE b.%s = $1`, schema.LibraryBook.ID)

	b, err := scanBook(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}

	genreQuery := fmt.Sprintf(`
		SELECT g.%s, g.%s, g.%s
		FROM %s g
		JOIN %s bg ON bg.%s = g.%s
		WHERE bg.%s = $1
		ORDER BY g.%s ASC
	`,
		schema.LibraryGenre.ID, schema.LibraryGenre.Name, schema.LibraryGenre.CreatedAt,
		schema.LibraryGenre.Table,
		schema.LibraryBookGenre.Table, schema.LibraryBookGenre.GenreID, schema.LibraryGenre.ID,
		schema.LibraryBookGenre.BookID,
		schema.LibraryGenre.Name,
	)

	rows, err := repository.pool.Query(context, genreQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book_genres")
	}
	defer rows.Close()

	for rows.Next() {
		g := &genre.Genre{}
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_book_genre")
		}
		b.Genres = append(b.Genres, g)
		b.GenreIDs = append(b.GenreIDs, g.ID)
	}
	return b, dberr.Wrap(rows.Err(), "get_book_genres")
}

func (repository *PostgresRepository) BookExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.LibraryBook.Table, schema.LibraryBook.ID)

	var exists bool
	err := repository.pool.QueryRow(context, query, id).Scan(&exists)
	return exists, dberr.Wrap(err, "book_exists")
}

func (repository *PostgresRepository) CountBooks(context context.Context) (int, error) {
	var total int
	err := repository.pool.QueryRow(context, fmt.Sprintf(`SELECT count(*) FROM %s`, schema.LibraryBook.Table)).Scan(&total)
	return total, dberr.Wrap(err, "count_books")
}

/*
CreateBook inserts the book and its genre links in one transaction.

Parameters:
  - context: context.Context
  - b: *Book (ID and timestamps are filled on success)

Returns:
  - error: dberr-wrapped storage failures
*/
func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_book")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.LibraryBook.Table,
		schema.LibraryBook.Title, schema.LibraryBook.Summary, schema.LibraryBook.ISBN, schema.LibraryBook.AuthorID,
		schema.LibraryBook.CreatedAt, schema.LibraryBook.UpdatedAt,
		schema.LibraryBook.ID, schema.LibraryBook.CreatedAt, schema.LibraryBook.UpdatedAt,
	)

	if err := transaction.QueryRow(context, query, b.Title, b.Summary, b.ISBN, b.AuthorID).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_book")
	}

	if err := replaceGenres(context, transaction, b.ID, b.GenreIDs); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_book")
}

// UpdateBook rewrites the book row and replaces its genre links in one transaction.
func (repository *PostgresRepository) UpdateBook(context context.Context, b *Book) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_book")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.LibraryBook.Table,
		schema.LibraryBook.Title, schema.LibraryBook.Summary, schema.LibraryBook.ISBN, schema.LibraryBook.AuthorID,
		schema.LibraryBook.UpdatedAt,
		schema.LibraryBook.ID, schema.LibraryBook.UpdatedAt,
	)

	if err := transaction.QueryRow(context, query, b.ID, b.Title, b.Summary, b.ISBN, b.AuthorID).Scan(&b.UpdatedAt); err != nil {
		return dberr.Wrap(err, "update_book")
	}

	if err := replaceGenres(context, transaction, b.ID, b.GenreIDs); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "commit_update_book")
}

// replaceGenres clears the book's genre links, then queues the new ones as one batch.
func replaceGenres(context context.Context, transaction pgx.Tx, bookID int, genreIDs []int) error {
	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryBookGenre.Table, schema.LibraryBookGenre.BookID)
	if _, err := transaction.Exec(context, clearQuery, bookID); err != nil {
		return dberr.Wrap(err, "clear_book_genres")
	}

	if len(genreIDs) == 0 {
		return nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.LibraryBookGenre.Table, schema.LibraryBookGenre.BookID, schema.LibraryBookGenre.GenreID,
	)

	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(insert, bookID, genreID)
	}

	return dberr.Wrap(transaction.SendBatch(context, batch).Close(), "insert_book_genres")
}

func (repository *PostgresRepository) ListCopies(context context.Context, bookID int) ([]Copy, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.LibraryBookInstance.ID, schema.LibraryBookInstance.Imprint, schema.LibraryBookInstance.Status,
		schema.LibraryBookInstance.DueBack,
		schema.LibraryBookInstance.Table, schema.LibraryBookInstance.BookID, schema.LibraryBookInstance.ID,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_copies")
	}
	defer rows.Close()

	var copies []Copy
	for rows.Next() {
		var item Copy
		if err := rows.Scan(&item.ID, &item.Imprint, &item.Status, &item.DueBack); err != nil {
			return nil, dberr.Wrap(err, "scan_book_copy")
		}
		copies = append(copies, item)
	}
	return copies, dberr.Wrap(rows.Err(), "list_book_copies")
}

/*
DeleteBook removes the book together with its genre links.

The links belong to the book and go with it. Copies do not: while any
copy references the book nothing is deleted and the transaction rolls back.

Returns:
  - bool: false when a copy still references the book
  - error: dberr-wrapped storage failures
*/
func (repository *PostgresRepository) DeleteBook(context context.Context, id int) (bool, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return false, dberr.Wrap(err, "begin_delete_book")
	}
	defer transaction.Rollback(context)

	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryBookGenre.Table, schema.LibraryBookGenre.BookID)
	if _, err := transaction.Exec(context, clearQuery, id); err != nil {
		return false, dberr.Wrap(err, "delete_book_genres")
	}

	query := fmt.Sprintf(`
		DELETE FROM %s b
		WHERE b.%s = $1
		  AND NOT EXISTS (SELECT 1 FROM %s bi WHERE bi.%s = b.%s)
	`,
		schema.LibraryBook.Table, schema.LibraryBook.ID,
		schema.LibraryBookInstance.Table, schema.LibraryBookInstance.BookID, schema.LibraryBook.ID,
	)

	cmd, err := transaction.Exec(context, query, id)
	if err != nil {
		return false, dberr.Wrap(err, "delete_book")
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}

	if err := transaction.Commit(context); err != nil {
		return false, dberr.Wrap(err, "commit_delete_book")
	}
	return true, nil
}
