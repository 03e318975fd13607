package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildiz/campuscms/internal/app/models"
)

func TestLeadershipSynchronizer_DeanAssignment(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")

	staff := &models.Staff{ID: 100, Role: models.RoleDean, FacultyID: &faculty.ID}
	sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())

	require.NoError(t, sync.Reconcile(context.Background(), staff))

	require.NotNil(t, faculty.DeanID)
	assert.Equal(t, staff.ID, *faculty.DeanID)
}

func TestLeadershipSynchronizer_Idempotent(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	department := uow.addDepartment(faculty.ID, "Computer Engineering", "computer-engineering")

	staff := &models.Staff{ID: 100, Role: models.RoleDepartmentHead, DepartmentID: &department.ID}
	sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())

	require.NoError(t, sync.Reconcile(context.Background(), staff))
	require.NoError(t, sync.Reconcile(context.Background(), staff))

	require.NotNil(t, department.HeadID)
	assert.Equal(t, staff.ID, *department.HeadID)
	assert.Nil(t, faculty.DeanID)
}

func TestLeadershipSynchronizer_DeanReassignment(t *testing.T) {
	uow := newFakeUnitOfWork()
	engineering := uow.addFaculty("Engineering", "engineering")
	science := uow.addFaculty("Science", "science")

	staff := &models.Staff{ID: 100, Role: models.RoleDean, FacultyID: &engineering.ID}
	sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())
	require.NoError(t, sync.Reconcile(context.Background(), staff))

	// Move the dean to another faculty. The old back-reference must go away.
	staff.FacultyID = &science.ID
	require.NoError(t, sync.Reconcile(context.Background(), staff))

	assert.Nil(t, engineering.DeanID)
	require.NotNil(t, science.DeanID)
	assert.Equal(t, staff.ID, *science.DeanID)
}

func TestLeadershipSynchronizer_RoleChangeClearsDean(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")

	staff := &models.Staff{ID: 100, Role: models.RoleDean, FacultyID: &faculty.ID}
	sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())
	require.NoError(t, sync.Reconcile(context.Background(), staff))
	require.NotNil(t, faculty.DeanID)

	staff.Role = models.RoleLecturer
	require.NoError(t, sync.Reconcile(context.Background(), staff))

	assert.Nil(t, faculty.DeanID)
}

func TestLeadershipSynchronizer_LastDeanWins(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")

	first := &models.Staff{ID: 100, Role: models.RoleDean, FacultyID: &faculty.ID}
	second := &models.Staff{ID: 200, Role: models.RoleDean, FacultyID: &faculty.ID}

	sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())
	require.NoError(t, sync.Reconcile(context.Background(), first))
	require.NoError(t, sync.Reconcile(context.Background(), second))

	// The faculty has one dean slot. The later write owns it.
	require.NotNil(t, faculty.DeanID)
	assert.Equal(t, second.ID, *faculty.DeanID)
}

func TestLeadershipSynchronizer_HeadReassignment(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	computer := uow.addDepartment(faculty.ID, "Computer Engineering", "computer-engineering")
	electrical := uow.addDepartment(faculty.ID, "Electrical Engineering", "electrical-engineering")

	staff := &models.Staff{ID: 100, Role: models.RoleDepartmentHead, DepartmentID: &computer.ID}
	sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())
	require.NoError(t, sync.Reconcile(context.Background(), staff))

	staff.DepartmentID = &electrical.ID
	require.NoError(t, sync.Reconcile(context.Background(), staff))

	assert.Nil(t, computer.HeadID)
	require.NotNil(t, electrical.HeadID)
	assert.Equal(t, staff.ID, *electrical.HeadID)
}

func TestLeadershipSynchronizer_NonLeaderRolesTouchNothing(t *testing.T) {
	uow := newFakeUnitOfWork()
	faculty := uow.addFaculty("Engineering", "engineering")
	department := uow.addDepartment(faculty.ID, "Computer Engineering", "computer-engineering")

	// A lecturer assigned to a faculty and department never acquires
	// leadership back-references.
	staff := &models.Staff{ID: 100, Role: models.RoleLecturer, FacultyID: &faculty.ID, DepartmentID: &department.ID}
	sync := NewLeadershipSynchronizer(uow.Faculties(), uow.Departments())
	require.NoError(t, sync.Reconcile(context.Background(), staff))

	assert.Nil(t, faculty.DeanID)
	assert.Nil(t, department.HeadID)
}
