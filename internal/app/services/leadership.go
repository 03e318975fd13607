package services

import (
	"context"
	"fmt"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/repositories"
)

// LeadershipSynchronizer keeps the faculty dean_id and department head_id
// back-references consistent with the staff table. The staff row is the source
// of truth for role and assignment; the back-references are a derived index
// maintained for cheap "who leads X" lookups, and this type is their only
// writer.
//
// Reconcile is idempotent: running it twice with the same staff state produces
// the same faculty/department rows. Callers run it inside the same transaction
// as the staff write so the invariants hold after every commit.
type LeadershipSynchronizer struct {
	faculties   repositories.FacultyStore
	departments repositories.DepartmentStore
}

// NewLeadershipSynchronizer creates a synchronizer over the given stores.
// Pass transaction-bound stores to make reconciliation part of the staff
// write's unit of work.
func NewLeadershipSynchronizer(faculties repositories.FacultyStore, departments repositories.DepartmentStore) *LeadershipSynchronizer {
	return &LeadershipSynchronizer{
		faculties:   faculties,
		departments: departments,
	}
}

// Reconcile brings the dean and head back-references in line with the staff
// member's current role and assignment. The two reconciliations are
// independent and order-insensitive.
func (s *LeadershipSynchronizer) Reconcile(ctx context.Context, staff *models.Staff) error {
	if err := s.reconcileDean(ctx, staff); err != nil {
		return err
	}
	return s.reconcileHead(ctx, staff)
}

// reconcileDean clears stale dean pointers and, when the staff member is a
// dean, points the assigned faculty at them. A faculty's dean slot holds at
// most one staff member; a later promotion to the same slot overwrites the
// earlier one.
func (s *LeadershipSynchronizer) reconcileDean(ctx context.Context, staff *models.Staff) error {
	if staff.Role == models.RoleDean && staff.FacultyID != nil {
		if err := s.faculties.ClearDeanForExcept(ctx, staff.ID, *staff.FacultyID); err != nil {
			return fmt.Errorf("clearing stale dean references: %w", err)
		}
		if err := s.faculties.SetDean(ctx, *staff.FacultyID, staff.ID); err != nil {
			return fmt.Errorf("setting dean of faculty %d: %w", *staff.FacultyID, err)
		}
		return nil
	}

	if err := s.faculties.ClearDeanFor(ctx, staff.ID); err != nil {
		return fmt.Errorf("clearing dean references: %w", err)
	}
	return nil
}

// reconcileHead is the department_head / head_id counterpart of reconcileDean.
func (s *LeadershipSynchronizer) reconcileHead(ctx context.Context, staff *models.Staff) error {
	if staff.Role == models.RoleDepartmentHead && staff.DepartmentID != nil {
		if err := s.departments.ClearHeadForExcept(ctx, staff.ID, *staff.DepartmentID); err != nil {
			return fmt.Errorf("clearing stale head references: %w", err)
		}
		if err := s.departments.SetHead(ctx, *staff.DepartmentID, staff.ID); err != nil {
			return fmt.Errorf("setting head of department %d: %w", *staff.DepartmentID, err)
		}
		return nil
	}

	if err := s.departments.ClearHeadFor(ctx, staff.ID); err != nil {
		return fmt.Errorf("clearing head references: %w", err)
	}
	return nil
}
