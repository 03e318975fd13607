package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/app/services"
	"github.com/yildiz/campuscms/internal/middleware"
	"github.com/yildiz/campuscms/internal/pkg/helpers"
)

// NewsController handles news content operations
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{
		newsService: newsService,
	}
}

// GetNews retrieves a news item by id or slug
// @Summary Get news item
// @Description Retrieves a news item by numeric ID or slug
// @Tags news
// @Accept json
// @Produce json
// @Param idOrSlug path string true "News ID or slug"
// @Success 200 {object} dto.APIResponse{data=models.News} "News item retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{idOrSlug} [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	news, err := c.newsService.GetNews(ctx, ctx.Param("idOrSlug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// ListNews retrieves a filtered, paginated news listing
// @Summary List news items
// @Description Retrieves news items with optional published filter and title search
// @Tags news
// @Accept json
// @Produce json
// @Param isPublished query bool false "Filter by published flag"
// @Param search query string false "Title search term"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.NewsListResponse} "News list retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	filter := dto.NewsFilter{
		Search: ctx.Query("search"),
	}
	if v := ctx.Query("isPublished"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid isPublished value").WithField("isPublished")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.IsPublished = &published
	}

	page, size := helpers.ParsePaginationParams(ctx)
	newsList, pagination, err := c.newsService.ListNews(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewsListResponse{
			News:           newsList,
			PaginationInfo: pagination,
		},
		Timestamp: time.Now(),
	})
}

// CreateNews handles news creation
// @Summary Create a news item
// @Description Creates a news item; publishing at creation stamps the publish time
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "News information"
// @Success 201 {object} dto.APIResponse{data=models.News} "News item created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "News item already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid news data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	news, err := c.newsService.CreateNews(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// UpdateNews handles news updates
// @Summary Update a news item
// @Description Updates a news item; the first transition to published stamps the publish time
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param idOrSlug path string true "News ID or slug"
// @Param request body dto.UpdateNewsRequest true "News information"
// @Success 200 {object} dto.APIResponse{data=models.News} "News item updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Failure 409 {object} dto.ErrorResponse "Slug already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{idOrSlug} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid news data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	news, err := c.newsService.UpdateNews(ctx, ctx.Param("idOrSlug"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// DeleteNews handles news deletion
// @Summary Delete a news item
// @Description Removes a news item
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param idOrSlug path string true "News ID or slug"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "News item deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{idOrSlug} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	if err := c.newsService.DeleteNews(ctx, ctx.Param("idOrSlug")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "News item deleted successfully"},
		Timestamp: time.Now(),
	})
}
