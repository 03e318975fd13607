package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yildiz/campuscms/internal/app/controllers"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public; every
// mutating route sits behind JWT auth.
func SetupRouter(
	router *gin.Engine,
	staffController *controllers.StaffController,
	facultyController *controllers.FacultyController,
	departmentController *controllers.DepartmentController,
	newsController *controllers.NewsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public read routes ---
	staff := v1.Group("/staff")
	{
		staff.GET("", staffController.ListStaff)
		staff.GET("/:idOrSlug", staffController.GetStaff)
	}

	faculties := v1.Group("/faculties")
	{
		faculties.GET("", facultyController.GetAllFaculties)
		faculties.GET("/:idOrSlug", facultyController.GetFaculty)
		faculties.GET("/:idOrSlug/departments", departmentController.GetDepartmentsByFaculty)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:idOrSlug", departmentController.GetDepartment)
	}

	news := v1.Group("/news")
	{
		news.GET("", newsController.ListNews)
		news.GET("/:idOrSlug", newsController.GetNews)
	}

	// --- Authenticated mutating routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		staffProtected := authenticated.Group("/staff")
		{
			staffProtected.POST("", staffController.CreateStaff)
			staffProtected.PUT("/:idOrSlug", staffController.UpdateStaff)
			staffProtected.DELETE("/:idOrSlug", staffController.DeleteStaff)
		}

		facultiesProtected := authenticated.Group("/faculties")
		{
			facultiesProtected.POST("", facultyController.CreateFaculty)
			facultiesProtected.PUT("/:idOrSlug", facultyController.UpdateFaculty)
			facultiesProtected.DELETE("/:idOrSlug", facultyController.DeleteFaculty)
		}

		departmentsProtected := authenticated.Group("/departments")
		{
			departmentsProtected.POST("", departmentController.CreateDepartment)
			departmentsProtected.PUT("/:idOrSlug", departmentController.UpdateDepartment)
			departmentsProtected.DELETE("/:idOrSlug", departmentController.DeleteDepartment)
		}

		newsProtected := authenticated.Group("/news")
		{
			newsProtected.POST("", newsController.CreateNews)
			newsProtected.PUT("/:idOrSlug", newsController.UpdateNews)
			newsProtected.DELETE("/:idOrSlug", newsController.DeleteNews)
		}
	}

	// --- Health routes ---
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
	v1.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
