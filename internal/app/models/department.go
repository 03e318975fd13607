package models

// Department represents a department within a faculty. FacultyID is mandatory;
// HeadID is derived state owned by the leadership synchronizer.
type Department struct {
	ID          int64    `json:"id" db:"id" example:"5"`
	Slug        string   `json:"slug" db:"slug" example:"computer-engineering"`
	FacultyID   int64    `json:"facultyId" db:"faculty_id" example:"1"`
	Name        string   `json:"name" db:"name" example:"Computer Engineering"`
	Description *string  `json:"description,omitempty" db:"description"`
	HeadID      *int64   `json:"headId,omitempty" db:"head_id" example:"7"`
	Head        *Staff   `json:"head,omitempty"`    // Relation, no db tag
	Faculty     *Faculty `json:"faculty,omitempty"` // Relation, no db tag
}
