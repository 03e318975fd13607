package dto

import "github.com/yildiz/campuscms/internal/app/models"

// CreateNewsRequest represents news creation data
type CreateNewsRequest struct {
	Title       string `json:"title" binding:"required" example:"Spring enrollment is open"`
	Slug        string `json:"slug" example:"spring-enrollment-open"`
	Body        string `json:"body" binding:"required"`
	IsPublished bool   `json:"isPublished"`
}

// UpdateNewsRequest represents news update data
type UpdateNewsRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Body        string `json:"body" binding:"required"`
	IsPublished bool   `json:"isPublished"`
}

// NewsFilter carries the optional list filters for news queries.
type NewsFilter struct {
	IsPublished *bool
	Search      string
}

// NewsListResponse represents a paginated list of news items
type NewsListResponse struct {
	News []*models.News `json:"news"`
	PaginationInfo
}
