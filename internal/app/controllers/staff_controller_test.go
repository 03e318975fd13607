package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
)

// stubStaffService serves canned responses so the controller's HTTP behavior
// can be tested without stores.
type stubStaffService struct {
	staff map[string]*models.Staff
	err   error
}

func (s *stubStaffService) GetStaff(_ context.Context, idOrSlug string) (*models.Staff, error) {
	if s.err != nil {
		return nil, s.err
	}
	staff, ok := s.staff[idOrSlug]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return staff, nil
}

func (s *stubStaffService) ListStaff(_ context.Context, _ dto.StaffFilter, page, size int) ([]*models.Staff, dto.PaginationInfo, error) {
	if s.err != nil {
		return nil, dto.PaginationInfo{}, s.err
	}
	var all []*models.Staff
	for _, staff := range s.staff {
		all = append(all, staff)
	}
	return all, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalItems: int64(len(all)), TotalPages: 1}, nil
}

func (s *stubStaffService) CreateStaff(_ context.Context, req *dto.CreateStaffRequest) (*models.Staff, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Staff{ID: 1, Name: req.Name, Slug: "jane-doe", Role: models.StaffRole(req.Role)}, nil
}

func (s *stubStaffService) UpdateStaff(_ context.Context, idOrSlug string, req *dto.UpdateStaffRequest) (*models.Staff, error) {
	if s.err != nil {
		return nil, s.err
	}
	staff, ok := s.staff[idOrSlug]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	staff.Name = req.Name
	return staff, nil
}

func (s *stubStaffService) DeleteStaff(_ context.Context, idOrSlug string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.staff[idOrSlug]; !ok {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

func newStaffRouter(service *stubStaffService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewStaffController(service)

	router := gin.New()
	router.GET("/staff", controller.ListStaff)
	router.GET("/staff/:idOrSlug", controller.GetStaff)
	router.POST("/staff", controller.CreateStaff)
	router.PUT("/staff/:idOrSlug", controller.UpdateStaff)
	router.DELETE("/staff/:idOrSlug", controller.DeleteStaff)
	return router
}

func TestStaffController_GetByIDAndSlug(t *testing.T) {
	staff := &models.Staff{ID: 7, Slug: "jane-doe", Name: "Jane Doe", Role: models.RoleDean}
	service := &stubStaffService{staff: map[string]*models.Staff{"7": staff, "jane-doe": staff}}
	router := newStaffRouter(service)

	for _, path := range []string{"/staff/7", "/staff/jane-doe"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, w.Code, path)

		var resp dto.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Nil(t, resp.Error)
		assert.NotNil(t, resp.Data)
	}
}

func TestStaffController_GetNotFound(t *testing.T) {
	router := newStaffRouter(&stubStaffService{staff: map[string]*models.Staff{}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/staff/missing", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestStaffController_CreateReturns201(t *testing.T) {
	router := newStaffRouter(&stubStaffService{staff: map[string]*models.Staff{}})

	body, _ := json.Marshal(dto.CreateStaffRequest{Name: "Jane Doe", Role: "lecturer"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/staff", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestStaffController_CreateMissingFieldsRejected(t *testing.T) {
	router := newStaffRouter(&stubStaffService{staff: map[string]*models.Staff{}})

	// Role is required by the binding; the service is never reached.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/staff", bytes.NewReader([]byte(`{"name":"Jane Doe"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaffController_CreateGuardFailure(t *testing.T) {
	router := newStaffRouter(&stubStaffService{err: apperrors.ErrDeanWithoutFaculty})

	body, _ := json.Marshal(dto.CreateStaffRequest{Name: "Jane Doe", Role: "dean"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/staff", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Dean must be assigned to a faculty", resp.Error.Message)
}

func TestStaffController_ListInvalidFilter(t *testing.T) {
	router := newStaffRouter(&stubStaffService{staff: map[string]*models.Staff{}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/staff?facultyId=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaffController_Delete(t *testing.T) {
	staff := &models.Staff{ID: 7, Slug: "jane-doe"}
	router := newStaffRouter(&stubStaffService{staff: map[string]*models.Staff{"jane-doe": staff}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/staff/jane-doe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
