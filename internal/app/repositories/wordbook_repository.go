package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
	"github.com/okutan/lexbook/internal/pkg/logger"
)

// WordBookRepository handles database operations for word books
type WordBookRepository struct {
	db *pgxpool.Pool
}

// NewWordBookRepository creates a new word book repository
func NewWordBookRepository(db *pgxpool.Pool) *WordBookRepository {
	return &WordBookRepository{
		db: db,
	}
}

func scanWordBook(row pgx.Row) (*models.WordBook, error) {
	var book models.WordBook
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Description,
		&book.Source,
		&book.WordCount,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWordBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

// Create inserts a new word book and fills in its generated fields
func (r *WordBookRepository) Create(ctx context.Context, book *models.WordBook) error {
	sql, args, err := squirrel.Insert("wordbooks").
		Columns("title", "description", "source", "word_count").
		Values(book.Title, book.Description, book.Source, book.WordCount).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create word book SQL")
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating word book: %w", err)
	}

	return nil
}

// GetByID retrieves a word book by ID
func (r *WordBookRepository) GetByID(ctx context.Context, id int64) (*models.WordBook, error) {
	sql, args, err := squirrel.Select("id", "title", "description", "source", "word_count", "created_at", "updated_at").
		From("wordbooks").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanWordBook(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves all word books, newest first
func (r *WordBookRepository) GetAll(ctx context.Context) ([]*models.WordBook, error) {
	sql, args, err := squirrel.Select("id", "title", "description", "source", "word_count", "created_at", "updated_at").
		From("wordbooks").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*models.WordBook
	for rows.Next() {
		book, err := scanWordBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

// Update applies non-nil fields to an existing word book and returns the result
func (r *WordBookRepository) Update(ctx context.Context, id int64, title, description, source *string) (*models.WordBook, error) {
	builder := squirrel.Update("wordbooks").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, title, description, source, word_count, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	if title != nil {
		builder = builder.Set("title", *title)
	}
	if description != nil {
		builder = builder.Set("description", *description)
	}
	if source != nil {
		builder = builder.Set("source", *source)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update word book SQL")
		return nil, err
	}

	return scanWordBook(r.db.QueryRow(ctx, sql, args...))
}

// UpdateWordCount persists the denormalized word counter
func (r *WordBookRepository) UpdateWordCount(ctx context.Context, id int64, count int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE wordbooks SET word_count = $2, updated_at = now() WHERE id = $1`, id, count)
	if err != nil {
		return fmt.Errorf("error updating word count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrWordBookNotFound
	}
	return nil
}

// DeleteTx removes a word book within an existing transaction. Member words
// must be removed in the same transaction to keep the cascade invariant.
func (r *WordBookRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM wordbooks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting word book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrWordBookNotFound
	}
	return nil
}
