package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
)

func TestCreateStaff_DeanRequiresFaculty(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	_, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name: "Jane Doe",
		Role: "dean",
	})

	assert.ErrorIs(t, err, apperrors.ErrDeanWithoutFaculty)
	assert.Empty(t, uow.staff, "nothing may be persisted on validation failure")
}

func TestCreateStaff_HeadRequiresDepartment(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	_, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name: "Jane Doe",
		Role: "department_head",
	})

	assert.ErrorIs(t, err, apperrors.ErrHeadWithoutDepartment)
}

func TestCreateStaff_UnknownRole(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	_, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name: "Jane Doe",
		Role: "provost",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnknownRole)
}

func TestCreateStaff_MissingFacultyAssignment(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	missing := int64(42)
	_, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:      "Jane Doe",
		Role:      "dean",
		FacultyID: &missing,
	})

	assert.ErrorIs(t, err, apperrors.ErrFacultyForStaffNotFound)
}

func TestCreateStaff_DeanSetsBackReference(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	service := NewStaffService(uow)

	staff, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:      "Jane Doe",
		Role:      "dean",
		FacultyID: &faculty.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, faculty.DeanID)
	assert.Equal(t, staff.ID, *faculty.DeanID)
	assert.Equal(t, "jane-doe", staff.Slug, "slug is derived from the name when not provided")
	assert.True(t, staff.IsActive, "staff is active by default")
}

func TestCreateStaff_ExplicitSlugKept(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	staff, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name: "Jane Doe",
		Slug: "dr-jane",
		Role: "lecturer",
	})
	require.NoError(t, err)
	assert.Equal(t, "dr-jane", staff.Slug)
}

func TestCreateStaff_InvalidExplicitSlug(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	_, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name: "Jane Doe",
		Slug: "Not A Slug!",
		Role: "lecturer",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetStaff_DualLookup(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	created, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name: "Jane Doe",
		Role: "lecturer",
	})
	require.NoError(t, err)

	byID, err := service.GetStaff(context.Background(), strconv.FormatInt(created.ID, 10))
	require.NoError(t, err)
	bySlug, err := service.GetStaff(context.Background(), "jane-doe")
	require.NoError(t, err)

	assert.Equal(t, byID.ID, bySlug.ID)
}

func TestGetStaff_NotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	_, err := service.GetStaff(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrStaffNotFound)
}

func TestUpdateStaff_RoleChangeClearsBackReference(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	service := NewStaffService(uow)

	staff, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:      "Jane Doe",
		Role:      "dean",
		FacultyID: &faculty.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, faculty.DeanID)

	_, err = service.UpdateStaff(context.Background(), staff.Slug, &dto.UpdateStaffRequest{
		Name:      "Jane Doe",
		Role:      "lecturer",
		FacultyID: &faculty.ID,
	})
	require.NoError(t, err)

	assert.Nil(t, faculty.DeanID, "demotion clears the dean back-reference")
}

func TestUpdateStaff_PromotionToHead(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	department := uow.addDepartment(faculty.ID, "Computer Engineering", "computer-engineering")
	service := NewStaffService(uow)

	staff, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:         "Jane Doe",
		Role:         "lecturer",
		DepartmentID: &department.ID,
	})
	require.NoError(t, err)
	require.Nil(t, department.HeadID)

	_, err = service.UpdateStaff(context.Background(), strconv.FormatInt(staff.ID, 10), &dto.UpdateStaffRequest{
		Name:         "Jane Doe",
		Role:         "department_head",
		DepartmentID: &department.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, department.HeadID)
	assert.Equal(t, staff.ID, *department.HeadID)
}

func TestUpdateStaff_ValidationRunsBeforeWrite(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	service := NewStaffService(uow)

	staff, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:      "Jane Doe",
		Role:      "dean",
		FacultyID: &faculty.ID,
	})
	require.NoError(t, err)

	// Dean without a faculty is rejected and the record is untouched.
	_, err = service.UpdateStaff(context.Background(), staff.Slug, &dto.UpdateStaffRequest{
		Name: "Jane Doe",
		Role: "dean",
	})
	assert.ErrorIs(t, err, apperrors.ErrDeanWithoutFaculty)

	current := uow.staff[staff.ID]
	require.NotNil(t, current.FacultyID)
	assert.Equal(t, faculty.ID, *current.FacultyID)
}

func TestDeleteStaff_ClearsLeadershipFirst(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	department := uow.addDepartment(faculty.ID, "Computer Engineering", "computer-engineering")
	service := NewStaffService(uow)

	dean, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:      "Jane Doe",
		Role:      "dean",
		FacultyID: &faculty.ID,
	})
	require.NoError(t, err)

	head, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:         "John Roe",
		Role:         "department_head",
		DepartmentID: &department.ID,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteStaff(context.Background(), dean.Slug))
	require.NoError(t, service.DeleteStaff(context.Background(), strconv.FormatInt(head.ID, 10)))

	assert.Nil(t, faculty.DeanID, "no faculty may point at a deleted staff member")
	assert.Nil(t, department.HeadID, "no department may point at a deleted staff member")
	assert.Empty(t, uow.staff)
}

func TestListStaff_RoleFilter(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	service := NewStaffService(uow)

	_, err := service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name: "Jane Doe", Role: "dean", FacultyID: &faculty.ID,
	})
	require.NoError(t, err)
	_, err = service.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name: "John Roe", Role: "lecturer",
	})
	require.NoError(t, err)

	list, pagination, err := service.ListStaff(context.Background(), dto.StaffFilter{Role: "dean"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.RoleDean, list[0].Role)
	assert.Equal(t, int64(1), pagination.TotalItems)
}

func TestListStaff_UnknownRoleFilter(t *testing.T) {
	uow := newFakeUnitOfWork()
	service := NewStaffService(uow)

	_, _, err := service.ListStaff(context.Background(), dto.StaffFilter{Role: "provost"}, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrUnknownRole)
}
