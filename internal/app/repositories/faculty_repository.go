package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
	"github.com/yildiz/campuscms/internal/pkg/dberrors"
	"github.com/yildiz/campuscms/internal/pkg/identifier"
	"github.com/yildiz/campuscms/internal/pkg/logger"
)

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db DBTX
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db DBTX) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// Create inserts a new faculty row
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	query := `
		INSERT INTO faculties (slug, name, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, faculty.Slug, faculty.Name, faculty.Description).Scan(&faculty.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Str("slug", faculty.Slug).Msg("Error executing create faculty query")
		return fmt.Errorf("error creating faculty: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty by primary key
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByRef retrieves a faculty by a resolved route identifier
func (r *FacultyRepository) GetByRef(ctx context.Context, ref identifier.Ref) (*models.Faculty, error) {
	if ref.ByID() {
		return r.getBy(ctx, "id = $1", ref.ID)
	}
	return r.getBy(ctx, "slug = $1", ref.Slug)
}

func (r *FacultyRepository) getBy(ctx context.Context, cond string, arg any) (*models.Faculty, error) {
	query := `
		SELECT id, slug, name, description, dean_id
		FROM faculties
		WHERE ` + cond

	var faculty models.Faculty
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&faculty.ID,
		&faculty.Slug,
		&faculty.Name,
		&faculty.Description,
		&faculty.DeanID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return &faculty, nil
}

// GetAll retrieves all faculties ordered by name
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	query := `
		SELECT id, slug, name, description, dean_id
		FROM faculties
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		var faculty models.Faculty
		if err := rows.Scan(
			&faculty.ID,
			&faculty.Slug,
			&faculty.Name,
			&faculty.Description,
			&faculty.DeanID,
		); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, &faculty)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculties, nil
}

// Update replaces the descriptive fields of a faculty. dean_id is deliberately
// untouched here; it belongs to the leadership synchronizer.
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	query := `
		UPDATE faculties
		SET slug = $1, name = $2, description = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, faculty.Slug, faculty.Name, faculty.Description, faculty.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFacultyAlreadyExists
		}
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete removes a faculty row. The deletion guard in the service layer must
// have verified there are no dependent departments.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculties WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			// Departments were created between the guard check and the delete.
			return apperrors.ErrFacultyHasDepartments
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// CountDepartments returns the number of departments referencing a faculty
func (r *FacultyRepository) CountDepartments(ctx context.Context, facultyID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM departments WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting departments for faculty: %w", err)
	}
	return count, nil
}

// SetDean points a faculty's dean back-reference at a staff member
func (r *FacultyRepository) SetDean(ctx context.Context, facultyID, staffID int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE faculties SET dean_id = $1 WHERE id = $2`, staffID, facultyID)
	if err != nil {
		return fmt.Errorf("error setting faculty dean: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// ClearDeanFor clears the dean back-reference on every faculty pointing at the
// given staff id.
func (r *FacultyRepository) ClearDeanFor(ctx context.Context, staffID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE faculties SET dean_id = NULL WHERE dean_id = $1`, staffID)
	if err != nil {
		return fmt.Errorf("error clearing faculty dean references: %w", err)
	}
	return nil
}

// ClearDeanForExcept clears the dean back-reference on every faculty pointing
// at the given staff id other than the target faculty.
func (r *FacultyRepository) ClearDeanForExcept(ctx context.Context, staffID, facultyID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE faculties SET dean_id = NULL WHERE dean_id = $1 AND id <> $2`, staffID, facultyID)
	if err != nil {
		return fmt.Errorf("error clearing faculty dean references: %w", err)
	}
	return nil
}
