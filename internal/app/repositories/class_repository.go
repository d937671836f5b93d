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

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

const classColumns = "id, name, teacher_id, student_ids, word_book_id, created_at, updated_at"

func scanClass(row pgx.Row) (*models.Class, error) {
	var class models.Class
	err := row.Scan(
		&class.ID,
		&class.Name,
		&class.TeacherID,
		&class.StudentIDs,
		&class.WordBookID,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, err
	}
	if class.StudentIDs == nil {
		class.StudentIDs = []int64{}
	}
	return &class, nil
}

// Create inserts a new class and fills in its generated fields
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	sql, args, err := squirrel.Insert("classes").
		Columns("name", "teacher_id", "student_ids", "word_book_id").
		Values(class.Name, class.TeacherID, class.StudentIDs, class.WordBookID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create class SQL")
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := fmt.Sprintf(`SELECT %s FROM classes WHERE id = $1`, classColumns)
	return scanClass(r.db.QueryRow(ctx, query, id))
}

// GetByTeacherID retrieves all classes owned by a teacher
func (r *ClassRepository) GetByTeacherID(ctx context.Context, teacherID int64) ([]*models.Class, error) {
	query := fmt.Sprintf(`SELECT %s FROM classes WHERE teacher_id = $1 ORDER BY created_at DESC`, classColumns)
	return r.queryClasses(ctx, query, teacherID)
}

// GetByStudentID retrieves all classes a student is a member of
func (r *ClassRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Class, error) {
	query := fmt.Sprintf(`SELECT %s FROM classes WHERE $1 = ANY(student_ids) ORDER BY created_at DESC`, classColumns)
	return r.queryClasses(ctx, query, studentID)
}

func (r *ClassRepository) queryClasses(ctx context.Context, query string, args ...interface{}) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update applies non-nil fields to an existing class and returns the result
func (r *ClassRepository) Update(ctx context.Context, id int64, name *string, wordBookID *int64) (*models.Class, error) {
	builder := squirrel.Update("classes").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + classColumns).
		PlaceholderFormat(squirrel.Dollar)

	if name != nil {
		builder = builder.Set("name", *name)
	}
	if wordBookID != nil {
		builder = builder.Set("word_book_id", *wordBookID)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update class SQL")
		return nil, err
	}

	return scanClass(r.db.QueryRow(ctx, sql, args...))
}

// Delete removes a class
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

// AddStudent appends a student to the roster. The membership check and the
// append are a single statement, so concurrent calls for the same student
// serialize on the class row and at most one of them appends. Returns the
// updated class, or ErrAlreadyMember when the guard matched an existing entry.
func (r *ClassRepository) AddStudent(ctx context.Context, classID, studentID int64) (*models.Class, error) {
	query := fmt.Sprintf(`
		UPDATE classes
		SET student_ids = array_append(student_ids, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(student_ids))
		RETURNING %s`, classColumns)

	class, err := scanClass(r.db.QueryRow(ctx, query, classID, studentID))
	if err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			// Zero rows: either the class is gone or the student is already
			// on the roster. A second read tells the two apart.
			if _, getErr := r.GetByID(ctx, classID); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, err
	}

	return class, nil
}

// RemoveStudent removes a student from the roster, with the same single
// statement guard as AddStudent. Returns ErrStudentNotInClass when the student
// was not on the roster.
func (r *ClassRepository) RemoveStudent(ctx context.Context, classID, studentID int64) (*models.Class, error) {
	query := fmt.Sprintf(`
		UPDATE classes
		SET student_ids = array_remove(student_ids, $2), updated_at = now()
		WHERE id = $1 AND $2 = ANY(student_ids)
		RETURNING %s`, classColumns)

	class, err := scanClass(r.db.QueryRow(ctx, query, classID, studentID))
	if err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			if _, getErr := r.GetByID(ctx, classID); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrStudentNotInClass
		}
		return nil, err
	}

	return class, nil
}
