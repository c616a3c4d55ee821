package job_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"job-portal/internal/access"
	"job-portal/internal/job"
	joberrors "job-portal/internal/job/errors"
	"job-portal/internal/middleware"
	"job-portal/internal/shared/apperror"
	"job-portal/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeJobService struct {
	CreateFn  func(ctx context.Context, actor access.Actor, req job.CreateJobRequest) (job.JobResponse, error)
	ListFn    func(ctx context.Context, actor access.Actor, q job.ListJobsQuery, p pagination.Params) ([]job.JobResponse, int64, error)
	GetByIDFn func(ctx context.Context, actor access.Actor, id string) (job.JobResponse, error)
	UpdateFn  func(ctx context.Context, actor access.Actor, id string, req job.UpdateJobRequest) (job.JobResponse, error)
	PatchFn   func(ctx context.Context, actor access.Actor, id string, req job.PatchJobRequest) (job.JobResponse, error)
	DeleteFn  func(ctx context.Context, actor access.Actor, id string) error
}

func (f *fakeJobService) Create(ctx context.Context, actor access.Actor, req job.CreateJobRequest) (job.JobResponse, error) {
	return f.CreateFn(ctx, actor, req)
}
func (f *fakeJobService) List(ctx context.Context, actor access.Actor, q job.ListJobsQuery, p pagination.Params) ([]job.JobResponse, int64, error) {
	return f.ListFn(ctx, actor, q, p)
}
func (f *fakeJobService) GetByID(ctx context.Context, actor access.Actor, id string) (job.JobResponse, error) {
	return f.GetByIDFn(ctx, actor, id)
}
func (f *fakeJobService) Update(ctx context.Context, actor access.Actor, id string, req job.UpdateJobRequest) (job.JobResponse, error) {
	return f.UpdateFn(ctx, actor, id, req)
}
func (f *fakeJobService) Patch(ctx context.Context, actor access.Actor, id string, req job.PatchJobRequest) (job.JobResponse, error) {
	return f.PatchFn(ctx, actor, id, req)
}
func (f *fakeJobService) Delete(ctx context.Context, actor access.Actor, id string) error {
	return f.DeleteFn(ctx, actor, id)
}

func setupRouter(svc job.Service, actor access.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := job.NewHandler(svc, pagination.Config{PageSize: 10, MaxPageSize: 100})
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextActor, actor)
		c.Next()
	})
	r.GET("/jobs", h.List)
	r.GET("/jobs/:id", h.GetByID)
	r.POST("/jobs", h.Create)
	r.PUT("/jobs/:id", h.Update)
	r.PATCH("/jobs/:id", h.Patch)
	r.DELETE("/jobs/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJobHandler_Create(t *testing.T) {
	actor := recruiter()

	t.Run("success ignores client supplied recruiter", func(t *testing.T) {
		svc := &fakeJobService{
			CreateFn: func(_ context.Context, a access.Actor, req job.CreateJobRequest) (job.JobResponse, error) {
				assert.Equal(t, actor, a)
				assert.Equal(t, "Go Developer", req.Title)
				assert.Equal(t, "1200.00", req.Salary.StringFixed(2))
				return job.JobResponse{ID: uuid.NewString(), Title: req.Title, Salary: "1200.00"}, nil
			},
		}
		w := serve(setupRouter(svc, actor), http.MethodPost, "/jobs",
			`{"title":"Go Developer","description":"d","location":"Remote","salary":"1200","recruiter":"someone-else"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Job created successfully.", body["message"])
	})

	t.Run("negative salary rejected by binding", func(t *testing.T) {
		w := serve(setupRouter(&fakeJobService{}, actor), http.MethodPost, "/jobs",
			`{"title":"Go","description":"d","location":"Remote","salary":"-5"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "salary")
	})

	t.Run("salary beyond ten digits rejected by binding", func(t *testing.T) {
		w := serve(setupRouter(&fakeJobService{}, actor), http.MethodPost, "/jobs",
			`{"title":"Go","description":"d","location":"Remote","salary":"123456789012.34"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Salary must be less than or equal to 99999999.99")
	})

	t.Run("salary with three decimal places", func(t *testing.T) {
		svc := &fakeJobService{
			CreateFn: func(context.Context, access.Actor, job.CreateJobRequest) (job.JobResponse, error) {
				return job.JobResponse{}, joberrors.ErrSalaryPrecision
			},
		}
		w := serve(setupRouter(svc, actor), http.MethodPost, "/jobs",
			`{"title":"Go","description":"d","location":"Remote","salary":"10.125"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Ensure that there are no more than 2 decimal places.")
	})

	t.Run("missing salary", func(t *testing.T) {
		w := serve(setupRouter(&fakeJobService{}, actor), http.MethodPost, "/jobs",
			`{"title":"Go","description":"d","location":"Remote"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing recruiter profile", func(t *testing.T) {
		svc := &fakeJobService{
			CreateFn: func(context.Context, access.Actor, job.CreateJobRequest) (job.JobResponse, error) {
				return job.JobResponse{}, joberrors.ErrRecruiterProfileRequired
			},
		}
		w := serve(setupRouter(svc, actor), http.MethodPost, "/jobs",
			`{"title":"Go","description":"d","location":"Remote","salary":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Recruiter profile not found.")
	})
}

func TestJobHandler_List(t *testing.T) {
	svc := &fakeJobService{
		ListFn: func(_ context.Context, _ access.Actor, q job.ListJobsQuery, p pagination.Params) ([]job.JobResponse, int64, error) {
			assert.Equal(t, "go", q.Search)
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 100, p.PageSize)
			return []job.JobResponse{{Title: "Go"}}, 101, nil
		},
	}
	w := serve(setupRouter(svc, recruiter()), http.MethodGet, "/jobs?search=go&page=2&page_size=500", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		Meta    struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Job List retrieved successfully.", body.Message)
	assert.Equal(t, int64(101), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestJobHandler_Instance(t *testing.T) {
	id := uuid.NewString()

	t.Run("patch denied", func(t *testing.T) {
		svc := &fakeJobService{
			PatchFn: func(context.Context, access.Actor, string, job.PatchJobRequest) (job.JobResponse, error) {
				return job.JobResponse{}, joberrors.ErrForbidden
			},
		}
		w := serve(setupRouter(svc, recruiter()), http.MethodPatch, "/jobs/"+id, `{"title":"x"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("patch with oversized salary", func(t *testing.T) {
		w := serve(setupRouter(&fakeJobService{}, recruiter()), http.MethodPatch, "/jobs/"+id, `{"salary":100000000}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get not found", func(t *testing.T) {
		svc := &fakeJobService{
			GetByIDFn: func(context.Context, access.Actor, string) (job.JobResponse, error) {
				return job.JobResponse{}, joberrors.ErrJobNotFound
			},
		}
		w := serve(setupRouter(svc, recruiter()), http.MethodGet, "/jobs/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete returns no content", func(t *testing.T) {
		svc := &fakeJobService{
			DeleteFn: func(_ context.Context, _ access.Actor, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}
		w := serve(setupRouter(svc, recruiter()), http.MethodDelete, "/jobs/"+id, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
