package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/app/repositories"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
	"github.com/yildiz/campuscms/internal/pkg/helpers"
	"github.com/yildiz/campuscms/internal/pkg/identifier"
)

// StaffService defines the interface for staff-related operations
type StaffService interface {
	GetStaff(ctx context.Context, idOrSlug string) (*models.Staff, error)
	ListStaff(ctx context.Context, filter dto.StaffFilter, page, size int) ([]*models.Staff, dto.PaginationInfo, error)
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*models.Staff, error)
	UpdateStaff(ctx context.Context, idOrSlug string, req *dto.UpdateStaffRequest) (*models.Staff, error)
	DeleteStaff(ctx context.Context, idOrSlug string) error
}

// staffServiceImpl implements the StaffService interface
type staffServiceImpl struct {
	uow repositories.UnitOfWork
}

// NewStaffService creates a new staff service instance
func NewStaffService(uow repositories.UnitOfWork) StaffService {
	return &staffServiceImpl{uow: uow}
}

// validateRole checks the role-specific assignment requirements. It runs
// strictly before any store write and never partially applies.
func validateRole(role models.StaffRole, facultyID, departmentID *int64) error {
	if !role.IsValid() {
		return apperrors.ErrUnknownRole
	}
	if role == models.RoleDean && facultyID == nil {
		return apperrors.ErrDeanWithoutFaculty
	}
	if role == models.RoleDepartmentHead && departmentID == nil {
		return apperrors.ErrHeadWithoutDepartment
	}
	return nil
}

// checkAssignments verifies the referenced faculty and department exist.
func (s *staffServiceImpl) checkAssignments(ctx context.Context, uow repositories.UnitOfWork, staff *models.Staff) error {
	if staff.FacultyID != nil {
		if _, err := uow.Faculties().GetByID(ctx, *staff.FacultyID); err != nil {
			if errors.Is(err, apperrors.ErrFacultyNotFound) {
				return apperrors.ErrFacultyForStaffNotFound
			}
			return fmt.Errorf("error checking assigned faculty: %w", err)
		}
	}
	if staff.DepartmentID != nil {
		if _, err := uow.Departments().GetByID(ctx, *staff.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrDepartmentNotFound) {
				return apperrors.ErrDepartmentForStaffNotFound
			}
			return fmt.Errorf("error checking assigned department: %w", err)
		}
	}
	return nil
}

// GetStaff resolves a staff member by numeric id or slug and attaches the
// related faculty/department.
func (s *staffServiceImpl) GetStaff(ctx context.Context, idOrSlug string) (*models.Staff, error) {
	staff, err := s.uow.Staff().GetByRef(ctx, identifier.Parse(idOrSlug))
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff: %w", err)
	}

	if staff.FacultyID != nil {
		if faculty, err := s.uow.Faculties().GetByID(ctx, *staff.FacultyID); err == nil {
			staff.Faculty = faculty
		}
	}
	if staff.DepartmentID != nil {
		if department, err := s.uow.Departments().GetByID(ctx, *staff.DepartmentID); err == nil {
			staff.Department = department
		}
	}

	return staff, nil
}

// ListStaff retrieves a filtered, paginated staff listing
func (s *staffServiceImpl) ListStaff(ctx context.Context, filter dto.StaffFilter, page, size int) ([]*models.Staff, dto.PaginationInfo, error) {
	if filter.Role != "" && !models.StaffRole(filter.Role).IsValid() {
		return nil, dto.PaginationInfo{}, apperrors.ErrUnknownRole
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	staffList, total, err := s.uow.Staff().List(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving staff list: %w", err)
	}

	return staffList, helpers.NewPaginationInfo(total, page, size), nil
}

// CreateStaff validates the request, persists the staff row and reconciles
// the leadership back-references, all in one transaction.
func (s *staffServiceImpl) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*models.Staff, error) {
	role := models.StaffRole(req.Role)
	if err := validateRole(role, req.FacultyID, req.DepartmentID); err != nil {
		return nil, err
	}

	slugValue, err := normalizeSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	staff := &models.Staff{
		Slug:         slugValue,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Bio:          req.Bio,
		PhotoURL:     req.PhotoURL,
		Role:         role,
		FacultyID:    req.FacultyID,
		DepartmentID: req.DepartmentID,
		IsActive:     isActive,
	}

	err = s.uow.InTx(ctx, func(ctx context.Context, uow repositories.UnitOfWork) error {
		if err := s.checkAssignments(ctx, uow, staff); err != nil {
			return err
		}
		if err := uow.Staff().Create(ctx, staff); err != nil {
			return err
		}
		sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())
		return sync.Reconcile(ctx, staff)
	})
	if err != nil {
		return nil, err
	}

	return staff, nil
}

// UpdateStaff resolves the staff member, applies the new field values and
// reconciles the leadership back-references, all in one transaction.
func (s *staffServiceImpl) UpdateStaff(ctx context.Context, idOrSlug string, req *dto.UpdateStaffRequest) (*models.Staff, error) {
	role := models.StaffRole(req.Role)
	if err := validateRole(role, req.FacultyID, req.DepartmentID); err != nil {
		return nil, err
	}

	var staff *models.Staff
	err := s.uow.InTx(ctx, func(ctx context.Context, uow repositories.UnitOfWork) error {
		current, err := uow.Staff().GetByRef(ctx, identifier.Parse(idOrSlug))
		if err != nil {
			return err
		}

		slugValue := current.Slug
		if req.Slug != "" {
			if slugValue, err = normalizeSlug(req.Slug, req.Name); err != nil {
				return err
			}
		}

		current.Slug = slugValue
		current.Name = req.Name
		current.Email = req.Email
		current.Phone = req.Phone
		current.Bio = req.Bio
		current.PhotoURL = req.PhotoURL
		current.Role = role
		current.FacultyID = req.FacultyID
		current.DepartmentID = req.DepartmentID
		if req.IsActive != nil {
			current.IsActive = *req.IsActive
		}

		if err := s.checkAssignments(ctx, uow, current); err != nil {
			return err
		}
		if err := uow.Staff().Update(ctx, current); err != nil {
			return err
		}

		sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())
		if err := sync.Reconcile(ctx, current); err != nil {
			return err
		}

		staff = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return staff, nil
}

// DeleteStaff clears any dean/head back-references pointing at the staff
// member and then removes the row. Clearing must come first so no faculty or
// department is ever left pointing at a missing id; the transaction makes the
// pair atomic.
func (s *staffServiceImpl) DeleteStaff(ctx context.Context, idOrSlug string) error {
	return s.uow.InTx(ctx, func(ctx context.Context, uow repositories.UnitOfWork) error {
		staff, err := uow.Staff().GetByRef(ctx, identifier.Parse(idOrSlug))
		if err != nil {
			return err
		}

		if err := uow.Faculties().ClearDeanFor(ctx, staff.ID); err != nil {
			return err
		}
		if err := uow.Departments().ClearHeadFor(ctx, staff.ID); err != nil {
			return err
		}
		return uow.Staff().Delete(ctx, staff.ID)
	})
}
