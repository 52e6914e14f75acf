// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/core/book"
	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectWithBook reads a copy joined with the title of its book.
var selectWithBook = fmt.Sprintf(`
	SELECT bi.%s, bi.%s, bi.%s, bi.%s, bi.%s, bi.%s, bi.%s, b.%s
	FROM %s bi
	JOIN %s b ON b.%s = bi.%s
`,
	schema.LibraryBookInstance.ID, schema.LibraryBookInstance.BookID, schema.LibraryBookInstance.Imprint,
	schema.LibraryBookInstance.Status, schema.LibraryBookInstance.DueBack,
	schema.LibraryBookInstance.CreatedAt, schema.LibraryBookInstance.UpdatedAt,
	schema.LibraryBook.Title,
	schema.LibraryBookInstance.Table,
	schema.LibraryBook.Table, schema.LibraryBook.ID, schema.LibraryBookInstance.BookID,
)

func scanInstance(row pgx.Row) (*BookInstance, error) {
	bi := &BookInstance{Book: &book.Book{}}
	err := row.Scan(&bi.ID, &bi.BookID, &bi.Imprint, &bi.Status, &bi.DueBack, &bi.CreatedAt, &bi.UpdatedAt, &bi.Book.Title)
	bi.Book.ID = bi.BookID
	return bi, err
}

func (repository *PostgresRepository) ListInstances(context context.Context, limit, offset int) ([]*BookInstance, int, error) {
	total, err := repository.CountInstances(context)
	if err != nil {
		return nil, 0, err
	}

	query := selectWithBook + fmt.Sprintf(` ORDER BY bi.%s ASC LIMIT $1 OFFSET $2`, schema.LibraryBookInstance.ID)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_bookinstances")
	}
	defer rows.Close()

	var instances []*BookInstance
	for rows.Next() {
		bi, err := scanInstance(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_bookinstance")
		}
		instances = append(instances, bi)
	}
	return instances, total, dberr.Wrap(rows.Err(), "list_bookinstances")
}

func (repository *PostgresRepository) GetInstance(context context.Context, id int) (*BookInstance, error) {
	query := selectWithBook + fmt.Sprintf(` WHERE bi.%s = $1`, schema.LibraryBookInstance.ID)

	bi, err := scanInstance(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_bookinstance")
	}
	return bi, nil
}

func (repository *PostgresRepository) CountInstances(context context.Context) (int, error) {
	var total int
	err := repository.pool.QueryRow(context, fmt.Sprintf(`SELECT count(*) FROM %s`, schema.LibraryBookInstance.Table)).Scan(&total)
	return total, dberr.Wrap(err, "count_bookinstances")
}

func (repository *PostgresRepository) CountAvailable(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.LibraryBookInstance.Table, schema.LibraryBookInstance.Status)

	var total int
	err := repository.pool.QueryRow(context, query, StatusAvailable).Scan(&total)
	return total, dberr.Wrap(err, "count_available_bookinstances")
}

func (repository *PostgresRepository) CreateInstance(context context.Context, bi *BookInstance) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.LibraryBookInstance.Table,
		schema.LibraryBookInstance.BookID, schema.LibraryBookInstance.Imprint, schema.LibraryBookInstance.Status,
		schema.LibraryBookInstance.DueBack, schema.LibraryBookInstance.CreatedAt, schema.LibraryBookInstance.UpdatedAt,
		schema.LibraryBookInstance.ID, schema.LibraryBookInstance.CreatedAt, schema.LibraryBookInstance.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, bi.BookID, bi.Imprint, bi.Status, bi.DueBack).
		Scan(&bi.ID, &bi.CreatedAt, &bi.UpdatedAt)
	return dberr.Wrap(err, "create_bookinstance")
}

func (repository *PostgresRepository) UpdateInstance(context context.Context, bi *BookInstance) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.LibraryBookInstance.Table,
		schema.LibraryBookInstance.BookID, schema.LibraryBookInstance.Imprint, schema.LibraryBookInstance.Status,
		schema.LibraryBookInstance.DueBack, schema.LibraryBookInstance.UpdatedAt,
		schema.LibraryBookInstance.ID, schema.LibraryBookInstance.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, bi.ID, bi.BookID, bi.Imprint, bi.Status, bi.DueBack).Scan(&bi.UpdatedAt)
	return dberr.Wrap(err, "update_bookinstance")
}

func (repository *PostgresRepository) DeleteInstance(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryBookInstance.Table, schema.LibraryBookInstance.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return false, dberr.Wrap(err, "delete_bookinstance")
	}
	return cmd.RowsAffected() > 0, nil
}
