package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/app/repositories"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
	"github.com/yildiz/campuscms/internal/pkg/helpers"
	"github.com/yildiz/campuscms/internal/pkg/identifier"
)

// NewsService defines the interface for news content operations
type NewsService interface {
	GetNews(ctx context.Context, idOrSlug string) (*models.News, error)
	ListNews(ctx context.Context, filter dto.NewsFilter, page, size int) ([]*models.News, dto.PaginationInfo, error)
	CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error)
	UpdateNews(ctx context.Context, idOrSlug string, req *dto.UpdateNewsRequest) (*models.News, error)
	DeleteNews(ctx context.Context, idOrSlug string) error
}

// newsServiceImpl implements the NewsService interface
type newsServiceImpl struct {
	newsRepo repositories.NewsStore
}

// NewNewsService creates a new news service instance
func NewNewsService(newsRepo repositories.NewsStore) NewsService {
	return &newsServiceImpl{newsRepo: newsRepo}
}

// GetNews resolves a news item by numeric id or slug
func (s *newsServiceImpl) GetNews(ctx context.Context, idOrSlug string) (*models.News, error) {
	news, err := s.newsRepo.GetByRef(ctx, identifier.Parse(idOrSlug))
	if err != nil {
		if errors.Is(err, apperrors.ErrNewsNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("error retrieving news item: %w", err)
	}
	return news, nil
}

// ListNews retrieves a filtered, paginated news listing
func (s *newsServiceImpl) ListNews(ctx context.Context, filter dto.NewsFilter, page, size int) ([]*models.News, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	newsList, total, err := s.newsRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving news list: %w", err)
	}
	return newsList, helpers.NewPaginationInfo(total, page, size), nil
}

// CreateNews creates a news item. Publishing at creation time stamps
// published_at immediately.
func (s *newsServiceImpl) CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error) {
	slugValue, err := normalizeSlug(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	news := &models.News{
		Slug:        slugValue,
		Title:       req.Title,
		Body:        req.Body,
		IsPublished: req.IsPublished,
	}
	if news.IsPublished {
		now := time.Now()
		news.PublishedAt = &now
	}

	if err := s.newsRepo.Create(ctx, news); err != nil {
		if errors.Is(err, apperrors.ErrNewsAlreadyExists) {
			return nil, apperrors.ErrNewsAlreadyExists
		}
		return nil, fmt.Errorf("error creating news item: %w", err)
	}

	return news, nil
}

// UpdateNews updates a news item. The published_at stamp is set on the first
// transition to published and kept on later edits.
func (s *newsServiceImpl) UpdateNews(ctx context.Context, idOrSlug string, req *dto.UpdateNewsRequest) (*models.News, error) {
	news, err := s.newsRepo.GetByRef(ctx, identifier.Parse(idOrSlug))
	if err != nil {
		return nil, err
	}

	slugValue := news.Slug
	if req.Slug != "" {
		if slugValue, err = normalizeSlug(req.Slug, req.Title); err != nil {
			return nil, err
		}
	}

	news.Slug = slugValue
	news.Title = req.Title
	news.Body = req.Body
	if req.IsPublished && !news.IsPublished {
		now := time.Now()
		news.PublishedAt = &now
	}
	news.IsPublished = req.IsPublished

	if err := s.newsRepo.Update(ctx, news); err != nil {
		if errors.Is(err, apperrors.ErrNewsNotFound) || errors.Is(err, apperrors.ErrNewsAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating news item: %w", err)
	}

	return news, nil
}

// DeleteNews removes a news item
func (s *newsServiceImpl) DeleteNews(ctx context.Context, idOrSlug string) error {
	news, err := s.newsRepo.GetByRef(ctx, identifier.Parse(idOrSlug))
	if err != nil {
		return err
	}
	return s.newsRepo.Delete(ctx, news.ID)
}
