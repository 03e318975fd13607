package models

import "time"

// News is a simple single-table content type. It carries no cross-entity
// invariant beyond row existence.
type News struct {
	ID          int64      `json:"id" db:"id" example:"3"`
	Slug        string     `json:"slug" db:"slug" example:"spring-enrollment-open"`
	Title       string     `json:"title" db:"title" example:"Spring enrollment is open"`
	Body        string     `json:"body" db:"body"`
	IsPublished bool       `json:"isPublished" db:"is_published" example:"true"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
