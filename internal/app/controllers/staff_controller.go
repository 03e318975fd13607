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

// StaffController handles staff-related operations
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// GetStaff retrieves a staff member by id or slug
// @Summary Get staff member
// @Description Retrieves a staff member by numeric ID or slug, with related faculty and department
// @Tags staff
// @Accept json
// @Produce json
// @Param idOrSlug path string true "Staff ID or slug"
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff member retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/{idOrSlug} [get]
func (c *StaffController) GetStaff(ctx *gin.Context) {
	staff, err := c.staffService.GetStaff(ctx, ctx.Param("idOrSlug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      staff,
		Timestamp: time.Now(),
	})
}

// ListStaff retrieves a filtered, paginated staff listing
// @Summary List staff members
// @Description Retrieves staff members with optional role, faculty, department and active filters
// @Tags staff
// @Accept json
// @Produce json
// @Param role query string false "Filter by role"
// @Param facultyId query int false "Filter by faculty ID"
// @Param departmentId query int false "Filter by department ID"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StaffListResponse} "Staff list retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff [get]
func (c *StaffController) ListStaff(ctx *gin.Context) {
	filter := dto.StaffFilter{
		Role: ctx.Query("role"),
	}
	if v := ctx.Query("facultyId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID").WithField("facultyId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.FacultyID = &id
	}
	if v := ctx.Query("departmentId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department ID").WithField("departmentId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.DepartmentID = &id
	}
	if v := ctx.Query("isActive"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid isActive value").WithField("isActive")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.IsActive = &active
	}

	page, size := helpers.ParsePaginationParams(ctx)
	staffList, pagination, err := c.staffService.ListStaff(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.StaffListResponse{
			Staff:          staffList,
			PaginationInfo: pagination,
		},
		Timestamp: time.Now(),
	})
}

// CreateStaff handles staff creation
// @Summary Create a new staff member
// @Description Creates a staff member; leadership back-references are derived from role and assignment
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRequest true "Staff information"
// @Success 201 {object} dto.APIResponse{data=models.Staff} "Staff member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Staff member already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.staffService.CreateStaff(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      staff,
		Timestamp: time.Now(),
	})
}

// UpdateStaff handles staff updates
// @Summary Update a staff member
// @Description Replaces a staff member's fields; leadership back-references are reconciled afterwards
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param idOrSlug path string true "Staff ID or slug"
// @Param request body dto.UpdateStaffRequest true "Staff information"
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff member updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 409 {object} dto.ErrorResponse "Slug already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/{idOrSlug} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.staffService.UpdateStaff(ctx, ctx.Param("idOrSlug"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      staff,
		Timestamp: time.Now(),
	})
}

// DeleteStaff handles staff deletion
// @Summary Delete a staff member
// @Description Removes a staff member after clearing any dean or head references to them
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param idOrSlug path string true "Staff ID or slug"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Staff member deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/{idOrSlug} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	if err := c.staffService.DeleteStaff(ctx, ctx.Param("idOrSlug")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Staff member deleted successfully"},
		Timestamp: time.Now(),
	})
}
