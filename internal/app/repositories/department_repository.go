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
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db DBTX
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db DBTX) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create inserts a new department row. faculty_id must reference an existing
// faculty; the foreign key enforces existence.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (slug, faculty_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		department.Slug, department.FacultyID, department.Name, department.Description,
	).Scan(&department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by primary key
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByRef retrieves a department by a resolved route identifier
func (r *DepartmentRepository) GetByRef(ctx context.Context, ref identifier.Ref) (*models.Department, error) {
	if ref.ByID() {
		return r.getBy(ctx, "id = $1", ref.ID)
	}
	return r.getBy(ctx, "slug = $1", ref.Slug)
}

func (r *DepartmentRepository) getBy(ctx context.Context, cond string, arg any) (*models.Department, error) {
	query := `
		SELECT id, slug, faculty_id, name, description, head_id
		FROM departments
		WHERE ` + cond

	var department models.Department
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&department.ID,
		&department.Slug,
		&department.FacultyID,
		&department.Name,
		&department.Description,
		&department.HeadID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	return r.listWhere(ctx, "", nil)
}

// GetByFacultyID retrieves all departments for a given faculty
func (r *DepartmentRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Department, error) {
	return r.listWhere(ctx, "WHERE faculty_id = $1", []any{facultyID})
}

func (r *DepartmentRepository) listWhere(ctx context.Context, cond string, args []any) ([]*models.Department, error) {
	query := fmt.Sprintf(`
		SELECT id, slug, faculty_id, name, description, head_id
		FROM departments
		%s
		ORDER BY name ASC
	`, cond)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Slug,
			&department.FacultyID,
			&department.Name,
			&department.Description,
			&department.HeadID,
		); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, &department)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// Update replaces the descriptive fields of a department. head_id is
// deliberately untouched here; it belongs to the leadership synchronizer.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET slug = $1, faculty_id = $2, name = $3, description = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		department.Slug, department.FacultyID, department.Name, department.Description, department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete removes a department row. Staff rows keep their department_id; only
// the head back-reference participates in the cross-entity contract.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// SetHead points a department's head back-reference at a staff member
func (r *DepartmentRepository) SetHead(ctx context.Context, departmentID, staffID int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE departments SET head_id = $1 WHERE id = $2`, staffID, departmentID)
	if err != nil {
		return fmt.Errorf("error setting department head: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// ClearHeadFor clears the head back-reference on every department pointing at
// the given staff id.
func (r *DepartmentRepository) ClearHeadFor(ctx context.Context, staffID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE departments SET head_id = NULL WHERE head_id = $1`, staffID)
	if err != nil {
		return fmt.Errorf("error clearing department head references: %w", err)
	}
	return nil
}

// ClearHeadForExcept clears the head back-reference on every department
// pointing at the given staff id other than the target department.
func (r *DepartmentRepository) ClearHeadForExcept(ctx context.Context, staffID, departmentID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE departments SET head_id = NULL WHERE head_id = $1 AND id <> $2`, staffID, departmentID)
	if err != nil {
		return fmt.Errorf("error clearing department head references: %w", err)
	}
	return nil
}
