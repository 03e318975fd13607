package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
	"github.com/yildiz/campuscms/internal/pkg/dberrors"
	"github.com/yildiz/campuscms/internal/pkg/identifier"
	"github.com/yildiz/campuscms/internal/pkg/logger"
)

// staffColumns are the columns scanned for a staff row, in scan order.
var staffColumns = []string{
	"id", "slug", "name", "email", "phone", "bio", "photo_url",
	"role", "faculty_id", "department_id", "is_active", "created_at", "updated_at",
}

// StaffRepository handles staff database operations
type StaffRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db DBTX) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStaff(row pgx.Row) (*models.Staff, error) {
	staff := &models.Staff{}
	err := row.Scan(
		&staff.ID, &staff.Slug, &staff.Name, &staff.Email, &staff.Phone,
		&staff.Bio, &staff.PhotoURL, &staff.Role, &staff.FacultyID,
		&staff.DepartmentID, &staff.IsActive, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return staff, nil
}

// Create inserts a new staff row and fills in the generated fields.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	sql, args, err := r.sb.Insert("staff").
		Columns("slug", "name", "email", "phone", "bio", "photo_url",
			"role", "faculty_id", "department_id", "is_active").
		Values(staff.Slug, staff.Name, staff.Email, staff.Phone, staff.Bio,
			staff.PhotoURL, staff.Role, staff.FacultyID, staff.DepartmentID, staff.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create staff query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStaffSlugAlreadyExists
		}
		logger.Error().Err(err).Str("slug", staff.Slug).Msg("Error executing create staff query")
		return fmt.Errorf("error creating staff: %w", err)
	}

	return nil
}

// GetByID retrieves a staff member by primary key
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id})
}

// GetByRef retrieves a staff member by a resolved route identifier. Lookups by
// id and by slug return the identical record shape.
func (r *StaffRepository) GetByRef(ctx context.Context, ref identifier.Ref) (*models.Staff, error) {
	if ref.ByID() {
		return r.getWhere(ctx, squirrel.Eq{"id": ref.ID})
	}
	return r.getWhere(ctx, squirrel.Eq{"slug": ref.Slug})
}

func (r *StaffRepository) getWhere(ctx context.Context, pred squirrel.Eq) (*models.Staff, error) {
	sql, args, err := r.sb.Select(staffColumns...).
		From("staff").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get staff query: %w", err)
	}

	staff, err := scanStaff(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Msg("Error scanning staff row")
		return nil, fmt.Errorf("error getting staff: %w", err)
	}

	return staff, nil
}

// List retrieves staff rows matching the filter plus the unpaginated total.
func (r *StaffRepository) List(ctx context.Context, filter dto.StaffFilter, offset uint64, limit int) ([]*models.Staff, int64, error) {
	base := r.sb.Select(staffColumns...).From("staff")
	countBase := r.sb.Select("COUNT(*)").From("staff")

	pred := squirrel.Eq{}
	if filter.Role != "" {
		pred["role"] = filter.Role
	}
	if filter.FacultyID != nil {
		pred["faculty_id"] = *filter.FacultyID
	}
	if filter.DepartmentID != nil {
		pred["department_id"] = *filter.DepartmentID
	}
	if filter.IsActive != nil {
		pred["is_active"] = *filter.IsActive
	}
	if len(pred) > 0 {
		base = base.Where(pred)
		countBase = countBase.Where(pred)
	}

	countSQL, countArgs, err := countBase.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count staff query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting staff: %w", err)
	}

	sql, args, err := base.
		OrderBy("name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list staff query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying staff: %w", err)
	}
	defer rows.Close()

	staffList := []*models.Staff{}
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning staff row: %w", err)
		}
		staffList = append(staffList, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating staff rows: %w", err)
	}

	return staffList, total, nil
}

// Update replaces the mutable columns of a staff row.
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	sql, args, err := r.sb.Update("staff").
		SetMap(map[string]interface{}{
			"slug":          staff.Slug,
			"name":          staff.Name,
			"email":         staff.Email,
			"phone":         staff.Phone,
			"bio":           staff.Bio,
			"photo_url":     staff.PhotoURL,
			"role":          staff.Role,
			"faculty_id":    staff.FacultyID,
			"department_id": staff.DepartmentID,
			"is_active":     staff.IsActive,
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": staff.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStaffSlugAlreadyExists
		}
		logger.Error().Err(err).Int64("staffID", staff.ID).Msg("Error executing update staff query")
		return fmt.Errorf("error updating staff: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// Delete removes a staff row by ID. Callers must clear dean/head
// back-references first so no faculty or department is left pointing at a
// missing id.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", id).Msg("Error executing delete staff query")
		return fmt.Errorf("error deleting staff: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}
