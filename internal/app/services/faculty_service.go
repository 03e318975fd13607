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

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	GetFaculty(ctx context.Context, idOrSlug string) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	UpdateFaculty(ctx context.Context, idOrSlug string, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, idOrSlug string) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	uow repositories.UnitOfWork
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(uow repositories.UnitOfWork) FacultyService {
	return &facultyServiceImpl{uow: uow}
}

// GetFaculty resolves a faculty by numeric id or slug. Both lookup paths
// return the same shape: the faculty with its current dean and departments.
func (s *facultyServiceImpl) GetFaculty(ctx context.Context, idOrSlug string) (*models.Faculty, error) {
	faculty, err := s.uow.Faculties().GetByRef(ctx, identifier.Parse(idOrSlug))
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	if faculty.DeanID != nil {
		if dean, err := s.uow.Staff().GetByID(ctx, *faculty.DeanID); err == nil {
			faculty.Dean = dean
		}
	}
	if departments, err := s.uow.Departments().GetByFacultyID(ctx, faculty.ID); err == nil {
		faculty.Departments = departments
	}

	return faculty, nil
}

// GetAllFaculties retrieves all faculties
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	faculties, err := s.uow.Faculties().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// CreateFaculty creates a new faculty from its descriptive fields. The dean
// back-reference is never part of the request.
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	slugValue, err := normalizeSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		Slug:        slugValue,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.uow.Faculties().Create(ctx, faculty); err != nil {
		if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			return nil, apperrors.ErrFacultyAlreadyExists
		}
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	return faculty, nil
}

// UpdateFaculty updates the descriptive fields of an existing faculty
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, idOrSlug string, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	faculty, err := s.uow.Faculties().GetByRef(ctx, identifier.Parse(idOrSlug))
	if err != nil {
		return nil, err
	}

	slugValue := faculty.Slug
	if req.Slug != "" {
		if slugValue, err = normalizeSlug(req.Slug, req.Name); err != nil {
			return nil, err
		}
	}

	faculty.Slug = slugValue
	faculty.Name = req.Name
	faculty.Description = req.Description

	if err := s.uow.Faculties().Update(ctx, faculty); err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) || errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}

	return faculty, nil
}

// DeleteFaculty removes a faculty unless departments still reference it. The
// guard check and the delete run in one transaction so a department created
// in between cannot slip through.
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, idOrSlug string) error {
	return s.uow.InTx(ctx, func(ctx context.Context, uow repositories.UnitOfWork) error {
		faculty, err := uow.Faculties().GetByRef(ctx, identifier.Parse(idOrSlug))
		if err != nil {
			return err
		}

		count, err := uow.Faculties().CountDepartments(ctx, faculty.ID)
		if err != nil {
			return fmt.Errorf("error checking dependent departments: %w", err)
		}
		if count > 0 {
			return apperrors.ErrFacultyHasDepartments
		}

		return uow.Faculties().Delete(ctx, faculty.ID)
	})
}
