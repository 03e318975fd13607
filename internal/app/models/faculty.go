package models

// Faculty represents a faculty of the institution. DeanID is derived state
// owned by the leadership synchronizer; it is never written from client input.
type Faculty struct {
	ID          int64         `json:"id" db:"id" example:"1"`
	Slug        string        `json:"slug" db:"slug" example:"faculty-of-engineering"`
	Name        string        `json:"name" db:"name" example:"Faculty of Engineering"`
	Description *string       `json:"description,omitempty" db:"description"`
	DeanID      *int64        `json:"deanId,omitempty" db:"dean_id" example:"12"`
	Dean        *Staff        `json:"dean,omitempty"`        // Relation, no db tag
	Departments []*Department `json:"departments,omitempty"` // Relation, no db tag
}
