package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
)

func TestCreateDepartment_RequiresExistingFaculty(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewDepartmentService(uow)

	_, err := service.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
		Name:      "Computer Engineering",
		FacultyID: 42,
	})
	assert.ErrorIs(t, err, apperrors.ErrFacultyForDepartmentNotFound)
}

func TestCreateDepartment_OK(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	service := NewDepartmentService(uow)

	department, err := service.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
		Name:      "Computer Engineering",
		FacultyID: faculty.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "computer-engineering", department.Slug)
	assert.Equal(t, faculty.ID, department.FacultyID)
}

func TestGetDepartmentsByFaculty(t *testing.T) {
	uow := newFakeUnitOfWork()
	engineering := uow.addFaculty("Engineering", "engineering")
	science := uow.addFaculty("Science", "science")
	uow.addDepartment(engineering.ID, "Computer Engineering", "computer-engineering")
	uow.addDepartment(engineering.ID, "Electrical Engineering", "electrical-engineering")
	uow.addDepartment(science.ID, "Physics", "physics")

	service := NewDepartmentService(uow)
	departments, err := service.GetDepartmentsByFaculty(context.Background(), "engineering")
	require.NoError(t, err)
	assert.Len(t, departments, 2)
	for _, department := range departments {
		assert.Equal(t, engineering.ID, department.FacultyID)
	}
}

func TestGetDepartmentsByFaculty_UnknownFaculty(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewDepartmentService(uow)

	_, err := service.GetDepartmentsByFaculty(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestGetDepartment_EnrichesHeadAndFaculty(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	department := uow.addDepartment(faculty.ID, "Computer Engineering", "computer-engineering")

	staffService := NewStaffService(uow)
	head, err := staffService.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:         "John Roe",
		Role:         "department_head",
		DepartmentID: &department.ID,
	})
	require.NoError(t, err)

	service := NewDepartmentService(uow)
	got, err := service.GetDepartment(context.Background(), "computer-engineering")
	require.NoError(t, err)

	require.NotNil(t, got.Head)
	assert.Equal(t, head.ID, got.Head.ID)
	require.NotNil(t, got.Faculty)
	assert.Equal(t, faculty.ID, got.Faculty.ID)
}
