package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-portal/internal/access"
	"job-portal/internal/auth"
	autherrors "job-portal/internal/auth/errors"
	authMock "job-portal/internal/auth/mock"
	"job-portal/internal/auth/token"
	"job-portal/internal/middleware"
	"job-portal/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok      bool            `json:"ok"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *authMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(svc)

	r := gin.New()
	r.POST("/auth", handler.Auth)
	r.POST("/auth/refresh", handler.RefreshToken)
	r.GET("/auth/me", func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set(middleware.ContextActor, access.Actor{UserID: uuid.MustParse(id), Role: access.RoleEmployee})
		}
		c.Next()
	}, handler.Me)
	r.POST("/auth/logout", handler.Logout)
	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_Auth(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		req := auth.RegisterRequest{
			Name: "Jane", Email: "jane@example.com", Password: "Secret123",
			ConfirmPassword: "Secret123", Role: "employee",
		}
		svc.EXPECT().Register(gomock.Any(), req).Return(auth.AuthResponse{
			Token:    token.Pair{Access: "a", Refresh: "r"},
			UserData: auth.UserResponse{Email: "jane@example.com", Role: "employee"},
		}, nil)

		w, env := doJSON(r, http.MethodPost, "/auth?action=register", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Registration successful", env.Message)

		var data auth.AuthResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "a", data.Token.Access)
		assert.Equal(t, "jane@example.com", data.UserData.Email)
	})

	t.Run("register rejects unknown role before the service", func(t *testing.T) {
		r, _ := setupAuthRouter(t)
		w, env := doJSON(r, http.MethodPost, "/auth?action=register", map[string]string{
			"name": "Jane", "email": "jane@example.com", "password": "Secret123",
			"confirm_password": "Secret123", "role": "superadmin",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Error.Details, "role")
	})

	t.Run("register password mismatch", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{}, autherrors.ErrPasswordMismatch)

		w, env := doJSON(r, http.MethodPost, "/auth?action=register", auth.RegisterRequest{
			Name: "Jane", Email: "jane@example.com", Password: "Secret123",
			ConfirmPassword: "Secret124", Role: "employee",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Password and Confirm Password do not match.", env.Error.Message)
	})

	t.Run("login", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), auth.LoginRequest{Email: "jane@example.com", Password: "Secret123"}).
			Return(auth.AuthResponse{Token: token.Pair{Access: "a", Refresh: "r"}}, nil)

		w, env := doJSON(r, http.MethodPost, "/auth?action=login", auth.LoginRequest{Email: "jane@example.com", Password: "Secret123"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Login successful", env.Message)
	})

	t.Run("login invalid credentials", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		w, env := doJSON(r, http.MethodPost, "/auth?action=login", auth.LoginRequest{Email: "jane@example.com", Password: "nope"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", env.Error.Message)
	})

	t.Run("unknown action", func(t *testing.T) {
		r, _ := setupAuthRouter(t)
		w, env := doJSON(r, http.MethodPost, "/auth?action=delete", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid action", env.Error.Message)
	})

	t.Run("missing action", func(t *testing.T) {
		r, _ := setupAuthRouter(t)
		w, _ := doJSON(r, http.MethodPost, "/auth", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_RefreshToken(t *testing.T) {
	r, svc := setupAuthRouter(t)
	svc.EXPECT().RefreshToken(gomock.Any(), "bad").Return(auth.AuthResponse{}, autherrors.ErrInvalidRefreshToken)

	w, _ := doJSON(r, http.MethodPost, "/auth/refresh", auth.RefreshRequest{Refresh: "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Me(t *testing.T) {
	t.Run("without actor", func(t *testing.T) {
		r, _ := setupAuthRouter(t)
		w, _ := doJSON(r, http.MethodGet, "/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("with actor", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		id := uuid.New()
		svc.EXPECT().GetMe(gomock.Any(), id).Return(auth.UserResponse{ID: id.String()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("X-Test-User", id.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), id.String())
	})
}

func TestHandler_Logout(t *testing.T) {
	r, _ := setupAuthRouter(t)
	w, env := doJSON(r, http.MethodPost, "/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Ok)
}
