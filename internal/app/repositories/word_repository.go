package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
)

// WordRepository handles database operations for words
type WordRepository struct {
	db *pgxpool.Pool
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *pgxpool.Pool) *WordRepository {
	return &WordRepository{
		db: db,
	}
}

const wordColumns = "id, word_book_id, word, phonetic, pronunciation, definition, example, image, created_at, updated_at"

func scanWord(row pgx.Row) (*models.Word, error) {
	var word models.Word
	err := row.Scan(
		&word.ID,
		&word.WordBookID,
		&word.Word,
		&word.Phonetic,
		&word.Pronunciation,
		&word.Definition,
		&word.Example,
		&word.Image,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWordNotFound
		}
		return nil, err
	}
	return &word, nil
}

// Create inserts a single word and fills in its generated fields
func (r *WordRepository) Create(ctx context.Context, word *models.Word) error {
	query := `
		INSERT INTO words (word_book_id, word, phonetic, pronunciation, definition, example, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		word.WordBookID, word.Word, word.Phonetic, word.Pronunciation,
		word.Definition, word.Example, word.Image,
	).Scan(&word.ID, &word.CreatedAt, &word.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating word: %w", err)
	}

	return nil
}

// GetByID retrieves a word by ID
func (r *WordRepository) GetByID(ctx context.Context, id int64) (*models.Word, error) {
	query := fmt.Sprintf(`SELECT %s FROM words WHERE id = $1`, wordColumns)
	return scanWord(r.db.QueryRow(ctx, query, id))
}

// GetByWordBookID retrieves all words of a word book in insertion order
func (r *WordRepository) GetByWordBookID(ctx context.Context, wordBookID int64) ([]*models.Word, error) {
	query := fmt.Sprintf(`SELECT %s FROM words WHERE word_book_id = $1 ORDER BY id`, wordColumns)

	rows, err := r.db.Query(ctx, query, wordBookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []*models.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// CountByWordBookID returns the number of persisted words in a word book
func (r *WordRepository) CountByWordBookID(ctx context.Context, wordBookID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM words WHERE word_book_id = $1`, wordBookID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting words: %w", err)
	}
	return count, nil
}

// Update applies non-nil fields to an existing word and returns the result
func (r *WordRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Word, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	setClause := ""
	args := []interface{}{id}
	i := 2
	for column, value := range fields {
		if setClause != "" {
			setClause += ", "
		}
		setClause += fmt.Sprintf("%s = $%d", column, i)
		args = append(args, value)
		i++
	}

	query := fmt.Sprintf(`UPDATE words SET %s, updated_at = now() WHERE id = $1 RETURNING %s`, setClause, wordColumns)
	return scanWord(r.db.QueryRow(ctx, query, args...))
}

// Delete removes a single word
func (r *WordRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting word: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrWordNotFound
	}
	return nil
}

// BulkCopy persists a batch of words with COPY and returns the number of rows
// actually written. Callers must reconcile any derived counters from the store,
// not from the batch size.
func (r *WordRepository) BulkCopy(ctx context.Context, words []*models.Word) (int64, error) {
	if len(words) == 0 {
		return 0, nil
	}

	rows := make([][]interface{}, 0, len(words))
	for _, w := range words {
		rows = append(rows, []interface{}{
			w.WordBookID, w.Word, w.Phonetic, w.Pronunciation, w.Definition, w.Example, w.Image,
		})
	}

	copied, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"words"},
		[]string{"word_book_id", "word", "phonetic", "pronunciation", "definition", "example", "image"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return copied, fmt.Errorf("error bulk copying words: %w", err)
	}

	return copied, nil
}

// InsertMany inserts words one batch round-trip and returns them with ids assigned
func (r *WordRepository) InsertMany(ctx context.Context, words []*models.Word) ([]*models.Word, error) {
	if len(words) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO words (word_book_id, word, phonetic, pronunciation, definition, example, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	for _, w := range words {
		batch.Queue(query, w.WordBookID, w.Word, w.Phonetic, w.Pronunciation, w.Definition, w.Example, w.Image)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for _, w := range words {
		if err := results.QueryRow().Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error inserting words: %w", err)
		}
	}

	return words, nil
}

// DeleteByWordBookIDTx removes all words of a word book within an existing transaction
func (r *WordRepository) DeleteByWordBookIDTx(ctx context.Context, tx pgx.Tx, wordBookID int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM words WHERE word_book_id = $1`, wordBookID)
	if err != nil {
		return fmt.Errorf("error deleting words of word book: %w", err)
	}
	return nil
}
