package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/app/repositories"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
	"github.com/yildiz/campuscms/internal/pkg/identifier"
)

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	GetDepartment(ctx context.Context, idOrSlug string) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartmentsByFaculty(ctx context.Context, facultyIDOrSlug string) ([]*models.Department, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	UpdateDepartment(ctx context.Context, idOrSlug string, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, idOrSlug string) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	uow repositories.UnitOfWork
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(uow repositories.UnitOfWork) DepartmentService {
	return &departmentServiceImpl{uow: uow}
}

// GetDepartment resolves a department by numeric id or slug, with its current
// head and parent faculty attached.
func (s *departmentServiceImpl) GetDepartment(ctx context.Context, idOrSlug string) (*models.Department, error) {
	department, err := s.uow.Departments().GetByRef(ctx, identifier.Parse(idOrSlug))
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	if department.HeadID != nil {
		if head, err := s.uow.Staff().GetByID(ctx, *department.HeadID); err == nil {
			department.Head = head
		}
	}
	if faculty, err := s.uow.Faculties().GetByID(ctx, department.FacultyID); err == nil {
		department.Faculty = faculty
	}

	return department, nil
}

// GetAllDepartments retrieves all departments
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.uow.Departments().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetDepartmentsByFaculty retrieves the departments of a faculty resolved by
// id or slug.
func (s *departmentServiceImpl) GetDepartmentsByFaculty(ctx context.Context, facultyIDOrSlug string) ([]*models.Department, error) {
	faculty, err := s.uow.Faculties().GetByRef(ctx, identifier.Parse(facultyIDOrSlug))
	if err != nil {
		return nil, err
	}

	departments, err := s.uow.Departments().GetByFacultyID(ctx, faculty.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments by faculty: %w", err)
	}

	for _, department := range departments {
		department.Faculty = faculty
	}

	return departments, nil
}

// CreateDepartment creates a new department under an existing faculty. The
// head back-reference is never part of the request.
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if req.FacultyID <= 0 {
		return nil, apperrors.NewValidationError("facultyId must be a positive id")
	}

	if _, err := s.uow.Faculties().GetByID(ctx, req.FacultyID); err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyForDepartmentNotFound
		}
		return nil, fmt.Errorf("error checking faculty: %w", err)
	}

	slugValue, err := normalizeSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	department := &models.Department{
		Slug:        slugValue,
		FacultyID:   req.FacultyID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.uow.Departments().Create(ctx, department); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) || errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return department, nil
}

// UpdateDepartment updates the descriptive fields of an existing department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, idOrSlug string, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	if req.FacultyID <= 0 {
		return nil, apperrors.NewValidationError("facultyId must be a positive id")
	}

	department, err := s.uow.Departments().GetByRef(ctx, identifier.Parse(idOrSlug))
	if err != nil {
		return nil, err
	}

	if _, err := s.uow.Faculties().GetByID(ctx, req.FacultyID); err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyForDepartmentNotFound
		}
		return nil, fmt.Errorf("error checking faculty: %w", err)
	}

	slugValue := department.Slug
	if req.Slug != "" {
		if slugValue, err = normalizeSlug(req.Slug, req.Name); err != nil {
			return nil, err
		}
	}

	department.Slug = slugValue
	department.FacultyID = req.FacultyID
	department.Name = req.Name
	department.Description = req.Description

	if err := s.uow.Departments().Update(ctx, department); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) || errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating department: %w", err)
	}

	return department, nil
}

// DeleteDepartment removes a department. There are no dependent child records
// to guard; staff rows keep their department_id, which is an acknowledged gap
// of the data model.
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, idOrSlug string) error {
	return s.uow.InTx(ctx, func(ctx context.Context, uow repositories.UnitOfWork) error {
		department, err := uow.Departments().GetByRef(ctx, identifier.Parse(idOrSlug))
		if err != nil {
			return err
		}
		return uow.Departments().Delete(ctx, department.ID)
	})
}
