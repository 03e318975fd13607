package dto

// CreateFacultyRequest represents faculty creation data. deanId is derived
// state and intentionally not accepted.
type CreateFacultyRequest struct {
	Name        string  `json:"name" binding:"required" example:"Faculty of Engineering"`
	Slug        string  `json:"slug" example:"faculty-of-engineering"`
	Description *string `json:"description"`
}

// UpdateFacultyRequest represents faculty update data (descriptive fields only)
type UpdateFacultyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}
