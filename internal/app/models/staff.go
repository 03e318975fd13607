package models

import "time"

// StaffRole is the role a staff member holds within the institution.
type StaffRole string

const (
	// RoleDean marks the staff member as the dean of a faculty
	RoleDean StaffRole = "dean"
	// RoleDepartmentHead marks the staff member as the head of a department
	RoleDepartmentHead StaffRole = "department_head"
	// RoleLecturer is a regular teaching role with no leadership slot
	RoleLecturer StaffRole = "lecturer"
	// RoleStaff is a non-teaching role with no leadership slot
	RoleStaff StaffRole = "staff"
)

// IsValid reports whether the role is one of the known roles.
func (r StaffRole) IsValid() bool {
	switch r {
	case RoleDean, RoleDepartmentHead, RoleLecturer, RoleStaff:
		return true
	}
	return false
}

// Staff defines the staff model based on the 'staff' table. The staff row is
// the source of truth for role and assignment; faculty dean_id and department
// head_id are derived from it.
type Staff struct {
	ID           int64       `json:"id" db:"id" example:"1"`
	Slug         string      `json:"slug" db:"slug" example:"jane-doe"`
	Name         string      `json:"name" db:"name" example:"Jane Doe"`
	Email        *string     `json:"email,omitempty" db:"email" example:"jane.doe@campus.edu"`
	Phone        *string     `json:"phone,omitempty" db:"phone" example:"+90 212 000 00 00"`
	Bio          *string     `json:"bio,omitempty" db:"bio"`
	PhotoURL     *string     `json:"photoUrl,omitempty" db:"photo_url"`
	Role         StaffRole   `json:"role" db:"role" example:"dean"`
	FacultyID    *int64      `json:"facultyId,omitempty" db:"faculty_id" example:"1"`
	DepartmentID *int64      `json:"departmentId,omitempty" db:"department_id" example:"2"`
	IsActive     bool        `json:"isActive" db:"is_active" example:"true"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
	Faculty      *Faculty    `json:"faculty,omitempty"`    // Relation, no db tag
	Department   *Department `json:"department,omitempty"` // Relation, no db tag
}
