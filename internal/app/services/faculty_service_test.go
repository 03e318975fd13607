package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
)

func TestCreateFaculty_DerivesSlug(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewFacultyService(uow)

	faculty, err := service.CreateFaculty(context.Background(), &dto.CreateFacultyRequest{
		Name: "Faculty of Engineering",
	})
	require.NoError(t, err)
	assert.Equal(t, "faculty-of-engineering", faculty.Slug)
}

func TestCreateFaculty_Duplicate(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.addFaculty("Engineering", "engineering")
	service := NewFacultyService(uow)

	_, err := service.CreateFaculty(context.Background(), &dto.CreateFacultyRequest{
		Name: "Engineering",
	})
	assert.ErrorIs(t, err, apperrors.ErrFacultyAlreadyExists)
}

func TestGetFaculty_EnrichesDeanAndDepartments(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	uow.addDepartment(faculty.ID, "Computer Engineering", "computer-engineering")

	staffService := NewStaffService(uow)
	dean, err := staffService.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:      "Jane Doe",
		Role:      "dean",
		FacultyID: &faculty.ID,
	})
	require.NoError(t, err)

	service := NewFacultyService(uow)
	got, err := service.GetFaculty(context.Background(), "engineering")
	require.NoError(t, err)

	require.NotNil(t, got.Dean)
	assert.Equal(t, dean.ID, got.Dean.ID)
	assert.Len(t, got.Departments, 1)
}

func TestGetFaculty_DualLookup(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	service := NewFacultyService(uow)

	byID, err := service.GetFaculty(context.Background(), strconv.FormatInt(faculty.ID, 10))
	require.NoError(t, err)
	bySlug, err := service.GetFaculty(context.Background(), "engineering")
	require.NoError(t, err)

	assert.Equal(t, byID.ID, bySlug.ID)
}

func TestDeleteFaculty_GuardedByDepartments(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	uow.addDepartment(faculty.ID, "Computer Engineering", "computer-engineering")
	service := NewFacultyService(uow)

	err := service.DeleteFaculty(context.Background(), "engineering")
	assert.ErrorIs(t, err, apperrors.ErrFacultyHasDepartments)
	assert.Contains(t, uow.faculties, faculty.ID, "guarded faculty stays in place")
}

func TestDeleteFaculty_EmptySucceeds(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	service := NewFacultyService(uow)

	require.NoError(t, service.DeleteFaculty(context.Background(), strconv.FormatInt(faculty.ID, 10)))
	assert.NotContains(t, uow.faculties, faculty.ID)
}

func TestDeleteFaculty_NotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewFacultyService(uow)

	err := service.DeleteFaculty(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}
