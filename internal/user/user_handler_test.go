package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"job-portal/internal/access"
	"job-portal/internal/auth"
	"job-portal/internal/middleware"
	"job-portal/internal/shared/apperror"
	"job-portal/internal/shared/pagination"
	"job-portal/internal/user"
	usererrors "job-portal/internal/user/errors"
	mock_user "job-portal/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T, actor access.Actor) (*gin.Engine, *mock_user.MockService) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	ctrl := gomock.NewController(t)
	svc := mock_user.NewMockService(ctrl)
	h := user.NewHandler(svc, pagination.Config{PageSize: 10, MaxPageSize: 100})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextActor, actor)
		c.Next()
	})
	r.GET("/users", h.GetAll)
	r.GET("/users/:id", h.GetByID)
	r.PATCH("/users/:id/status", h.ToggleStatus)
	r.POST("/users/:id/force-reset-password", h.ForceResetPassword)
	return r, svc
}

func TestUserHandler_GetAll(t *testing.T) {
	actor := admin()

	t.Run("filters and paginates", func(t *testing.T) {
		r, svc := setupRouter(t, actor)
		active := false
		svc.EXPECT().
			List(gomock.Any(), actor, user.ListUsersQuery{Role: "recruiter", IsActive: &active, Search: "acme"}, pagination.Params{Page: 1, PageSize: 20}).
			Return([]auth.UserResponse{{ID: uuid.NewString(), Email: "a@acme.io"}}, int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/users?role=recruiter&is_active=false&search=acme&page_size=20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Users retrieved successfully.", body["message"])
		assert.NotNil(t, body["meta"])
	})

	t.Run("invalid role filter", func(t *testing.T) {
		r, _ := setupRouter(t, actor)
		req := httptest.NewRequest(http.MethodGet, "/users?role=admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	actor := admin()
	id := uuid.NewString()

	t.Run("deactivate", func(t *testing.T) {
		r, svc := setupRouter(t, actor)
		svc.EXPECT().SetStatus(gomock.Any(), actor, id, false).Return(auth.UserResponse{ID: id, IsActive: false}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/users/"+id+"/status", strings.NewReader(`{"is_active":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "User status updated successfully.")
	})

	t.Run("missing is_active", func(t *testing.T) {
		r, _ := setupRouter(t, actor)
		req := httptest.NewRequest(http.MethodPatch, "/users/"+id+"/status", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		r, svc := setupRouter(t, actor)
		svc.EXPECT().SetStatus(gomock.Any(), actor, id, true).Return(auth.UserResponse{}, usererrors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/users/"+id+"/status", strings.NewReader(`{"is_active":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_ForceResetPassword(t *testing.T) {
	actor := admin()
	id := uuid.NewString()

	r, svc := setupRouter(t, actor)
	svc.EXPECT().ForceResetPassword(gomock.Any(), actor, id, "NewSecret1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/users/"+id+"/force-reset-password", strings.NewReader(`{"new_password":"NewSecret1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
