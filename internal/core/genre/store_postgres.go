// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

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

var genreColumns = strings.Join(schema.LibraryGenre.Columns(), ", ")

func scanGenre(row pgx.Row) (*Genre, error) {
	g := &Genre{}
	err := row.Scan(&g.ID, &g.Name, &g.CreatedAt)
	return g, err
}

func (repository *PostgresRepository) ListGenres(context context.Context, limit, offset int) ([]*Genre, int, error) {
	total, err := repository.CountGenres(context)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC LIMIT $1 OFFSET $2`,
		genreColumns, schema.LibraryGenre.Table, schema.LibraryGenre.Name, schema.LibraryGenre.ID,
	)
	genres, err := repository.queryGenres(context, query, limit, offset)
	return genres, total, err
}

func (repository *PostgresRepository) AllGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`, genreColumns, schema.LibraryGenre.Table, schema.LibraryGenre.Name)
	return repository.queryGenres(context, query)
}

func (repository *PostgresRepository) queryGenres(context context.Context, query string, args ...any) ([]*Genre, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}
	return genres, dberr.Wrap(rows.Err(), "list_genres")
}

func (repository *PostgresRepository) GetGenre(context context.Context, id int) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, genreColumns, schema.LibraryGenre.Table, schema.LibraryGenre.ID)

	g, err := scanGenre(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}
	return g, nil
}

func (repository *PostgresRepository) FindByName(context context.Context, name string) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE lower(%s) = lower($1)`, genreColumns, schema.LibraryGenre.Table, schema.LibraryGenre.Name)

	g, err := scanGenre(repository.db.QueryRow(context, query, name))
	if err != nil {
		return nil, dberr.Wrap(err, "find_genre_by_name")
	}
	return g, nil
}

func (repository *PostgresRepository) CountGenres(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT count(*) FROM %s`, schema.LibraryGenre.Table)).Scan(&total)
	return total, dberr.Wrap(err, "count_genres")
}

func (repository *PostgresRepository) CountExisting(context context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = ANY($1::int[])`, schema.LibraryGenre.Table, schema.LibraryGenre.ID)

	var found int
	err := repository.db.QueryRow(context, query, ids).Scan(&found)
	return found, dberr.Wrap(err, "count_existing_genres")
}

func (repository *PostgresRepository) CreateGenre(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, NOW()) RETURNING %s, %s`,
		schema.LibraryGenre.Table, schema.LibraryGenre.Name, schema.LibraryGenre.CreatedAt,
		schema.LibraryGenre.ID, schema.LibraryGenre.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, g.Name).Scan(&g.ID, &g.CreatedAt)
	return dberr.Wrap(err, "create_genre")
}

func (repository *PostgresRepository) UpdateGenre(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, schema.LibraryGenre.Table, schema.LibraryGenre.Name, schema.LibraryGenre.ID)

	cmd, err := repository.db.Exec(context, query, g.ID, g.Name)
	if err != nil {
		return dberr.Wrap(err, "update_genre")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListBooks(context context.Context, genreID int) ([]BookSummary, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s
		FROM %s b
		JOIN %s bg ON bg.%s = b.%s
		WHERE bg.%s = $1
		ORDER BY b.%s ASC
	`,
		schema.LibraryBook.ID, schema.LibraryBook.Title, schema.LibraryBook.Summary,
		schema.LibraryBook.Table,
		schema.LibraryBookGenre.Table, schema.LibraryBookGenre.BookID, schema.LibraryBook.ID,
		schema.LibraryBookGenre.GenreID,
		schema.LibraryBook.Title,
	)

	rows, err := repository.db.Query(context, query, genreID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genre_books")
	}
	defer rows.Close()

	var books []BookSummary
	for rows.Next() {
		var book BookSummary
		if err := rows.Scan(&book.ID, &book.Title, &book.Summary); err != nil {
			return nil, dberr.Wrap(err, "scan_genre_book")
		}
		books = append(books, book)
	}
	return books, dberr.Wrap(rows.Err(), "list_genre_books")
}

func (repository *PostgresRepository) DeleteGenre(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s g
		WHERE g.%s = $1
		  AND NOT EXISTS (SELECT 1 FROM %s bg WHERE bg.%s = g.%s)
	`,
		schema.LibraryGenre.Table, schema.LibraryGenre.ID,
		schema.LibraryBookGenre.Table, schema.LibraryBookGenre.GenreID, schema.LibraryGenre.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return false, dberr.Wrap(err, "delete_genre")
	}
	return cmd.RowsAffected() > 0, nil
}
