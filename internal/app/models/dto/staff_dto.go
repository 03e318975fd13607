package dto

import "github.com/yildiz/campuscms/internal/app/models"

// CreateStaffRequest represents staff creation data. Role and assignment drive
// the faculty/department back-references; deanId/headId are response-only and
// have no place here.
type CreateStaffRequest struct {
	Name         string  `json:"name" binding:"required" example:"Jane Doe"`
	Slug         string  `json:"slug" example:"jane-doe"`
	Email        *string `json:"email" binding:"omitempty,email" example:"jane.doe@campus.edu"`
	Phone        *string `json:"phone" example:"+90 212 000 00 00"`
	Bio          *string `json:"bio"`
	PhotoURL     *string `json:"photoUrl"`
	Role         string  `json:"role" binding:"required" example:"dean"`
	FacultyID    *int64  `json:"facultyId" example:"1"`
	DepartmentID *int64  `json:"departmentId" example:"2"`
	IsActive     *bool   `json:"isActive" example:"true"`
}

// UpdateStaffRequest represents staff update data. The full record is
// replaced; the synchronizer reconciles back-references afterwards.
type UpdateStaffRequest struct {
	Name         string  `json:"name" binding:"required"`
	Slug         string  `json:"slug"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	Bio          *string `json:"bio"`
	PhotoURL     *string `json:"photoUrl"`
	Role         string  `json:"role" binding:"required"`
	FacultyID    *int64  `json:"facultyId"`
	DepartmentID *int64  `json:"departmentId"`
	IsActive     *bool   `json:"isActive"`
}

// StaffListResponse represents a paginated list of staff members
type StaffListResponse struct {
	Staff []*models.Staff `json:"staff"`
	PaginationInfo
}

// StaffFilter carries the optional list filters for staff queries.
type StaffFilter struct {
	Role         string
	FacultyID    *int64
	DepartmentID *int64
	IsActive     *bool
}
