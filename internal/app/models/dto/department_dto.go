package dto

// CreateDepartmentRequest represents department creation data. facultyId is
// mandatory; headId is derived state and intentionally not accepted.
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required" example:"Computer Engineering"`
	Slug        string  `json:"slug" example:"computer-engineering"`
	FacultyID   int64   `json:"facultyId" binding:"required" example:"1"`
	Description *string `json:"description"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"`
	FacultyID   int64   `json:"facultyId" binding:"required"`
	Description *string `json:"description"`
}
