package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
	"github.com/yildiz/campuscms/internal/pkg/dberrors"
	"github.com/yildiz/campuscms/internal/pkg/identifier"
)

var newsColumns = []string{
	"id", "slug", "title", "body", "is_published", "published_at", "created_at", "updated_at",
}

// NewsRepository handles news database operations
type NewsRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db DBTX) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanNews(row pgx.Row) (*models.News, error) {
	news := &models.News{}
	err := row.Scan(
		&news.ID, &news.Slug, &news.Title, &news.Body,
		&news.IsPublished, &news.PublishedAt, &news.CreatedAt, &news.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return news, nil
}

// Create inserts a new news row
func (r *NewsRepository) Create(ctx context.Context, news *models.News) error {
	sql, args, err := r.sb.Insert("news").
		Columns("slug", "title", "body", "is_published", "published_at").
		Values(news.Slug, news.Title, news.Body, news.IsPublished, news.PublishedAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create news query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&news.ID, &news.CreatedAt, &news.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrNewsAlreadyExists
		}
		return fmt.Errorf("error creating news: %w", err)
	}

	return nil
}

// GetByRef retrieves a news item by a resolved route identifier
func (r *NewsRepository) GetByRef(ctx context.Context, ref identifier.Ref) (*models.News, error) {
	pred := squirrel.Eq{"id": ref.ID}
	if !ref.ByID() {
		pred = squirrel.Eq{"slug": ref.Slug}
	}

	sql, args, err := r.sb.Select(newsColumns...).
		From("news").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}

	news, err := scanNews(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("error getting news: %w", err)
	}

	return news, nil
}

// List retrieves news rows matching the filter plus the unpaginated total.
func (r *NewsRepository) List(ctx context.Context, filter dto.NewsFilter, offset uint64, limit int) ([]*models.News, int64, error) {
	base := r.sb.Select(newsColumns...).From("news")
	countBase := r.sb.Select("COUNT(*)").From("news")

	if filter.IsPublished != nil {
		base = base.Where(squirrel.Eq{"is_published": *filter.IsPublished})
		countBase = countBase.Where(squirrel.Eq{"is_published": *filter.IsPublished})
	}
	if filter.Search != "" {
		like := squirrel.ILike{"title": "%" + filter.Search + "%"}
		base = base.Where(like)
		countBase = countBase.Where(like)
	}

	countSQL, countArgs, err := countBase.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count news query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting news: %w", err)
	}

	sql, args, err := base.
		OrderBy("published_at DESC NULLS LAST", "created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying news: %w", err)
	}
	defer rows.Close()

	newsList := []*models.News{}
	for rows.Next() {
		news, err := scanNews(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning news row: %w", err)
		}
		newsList = append(newsList, news)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating news rows: %w", err)
	}

	return newsList, total, nil
}

// Update replaces the mutable columns of a news row
func (r *NewsRepository) Update(ctx context.Context, news *models.News) error {
	sql, args, err := r.sb.Update("news").
		SetMap(map[string]interface{}{
			"slug":         news.Slug,
			"title":        news.Title,
			"body":         news.Body,
			"is_published": news.IsPublished,
			"published_at": news.PublishedAt,
			"updated_at":   squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": news.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrNewsAlreadyExists
		}
		return fmt.Errorf("error updating news: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}

	return nil
}

// Delete removes a news row by ID
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("news").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting news: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}

	return nil
}
