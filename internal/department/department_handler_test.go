package department_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-orgadmin/internal/department"
	departmenterrors "go-orgadmin/internal/department/errors"
	"go-orgadmin/internal/ownership"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	ListFn       func(ctx context.Context, caller ownership.Caller, skip, limit int) (department.DepartmentsResponse, error)
	GetByIDFn    func(ctx context.Context, caller ownership.Caller, id string) (department.DepartmentResponse, error)
	GetOptionsFn func(ctx context.Context) ([]department.DepartmentOption, error)
	CreateFn     func(ctx context.Context, caller ownership.Caller, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	UpdateFn     func(ctx context.Context, caller ownership.Caller, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn     func(ctx context.Context, caller ownership.Caller, id string) error
}

func (f *fakeDepartmentService) List(ctx context.Context, caller ownership.Caller, skip, limit int) (department.DepartmentsResponse, error) {
	return f.ListFn(ctx, caller, skip, limit)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, caller ownership.Caller, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, caller, id)
}
func (f *fakeDepartmentService) GetOptions(ctx context.Context) ([]department.DepartmentOption, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeDepartmentService) Create(ctx context.Context, caller ownership.Caller, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, caller, req)
}
func (f *fakeDepartmentService) Update(ctx context.Context, caller ownership.Caller, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, caller, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, caller ownership.Caller, id string) error {
	return f.DeleteFn(ctx, caller, id)
}

func newTestContext(t *testing.T, method, target, body string, caller ownership.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ownership.ContextKey, caller)
	return c, w
}

func TestDepartmentHandler_Create(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, got ownership.Caller, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				assert.Equal(t, caller.ID, got.ID)
				return department.DepartmentResponse{ID: uuid.New().String(), Code: req.Code, Name: req.Name}, nil
			},
		}

		h := department.NewHandler(svc)
		c, w := newTestContext(t, http.MethodPost, "/deps", `{"code":"ENG","name":"Engineering"}`, caller)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Engineering")
	})

	t.Run("missing code -> validation error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		c, w := newTestContext(t, http.MethodPost, "/deps", `{"name":"Engineering"}`, caller)

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("conflict from service", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, got ownership.Caller, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentCodeExists
			},
		}

		h := department.NewHandler(svc)
		c, w := newTestContext(t, http.MethodPost, "/deps", `{"code":"ENG","name":"Engineering"}`, caller)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})
}

func TestDepartmentHandler_List(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	t.Run("uses default pagination", func(t *testing.T) {
		svc := &fakeDepartmentService{
			ListFn: func(ctx context.Context, got ownership.Caller, skip, limit int) (department.DepartmentsResponse, error) {
				assert.Equal(t, 0, skip)
				assert.Equal(t, 10, limit)
				return department.DepartmentsResponse{Data: []department.DepartmentResponse{}, Count: 0}, nil
			},
		}

		h := department.NewHandler(svc)
		c, w := newTestContext(t, http.MethodGet, "/deps", "", caller)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":0`)
	})

	t.Run("passes skip and limit through", func(t *testing.T) {
		svc := &fakeDepartmentService{
			ListFn: func(ctx context.Context, got ownership.Caller, skip, limit int) (department.DepartmentsResponse, error) {
				assert.Equal(t, 10, skip)
				assert.Equal(t, 5, limit)
				return department.DepartmentsResponse{}, nil
			},
		}

		h := department.NewHandler(svc)
		c, w := newTestContext(t, http.MethodGet, "/deps?skip=10&limit=5", "", caller)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDepartmentHandler_GetByID(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	t.Run("not found", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetByIDFn: func(ctx context.Context, got ownership.Caller, id string) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		}

		h := department.NewHandler(svc)
		c, w := newTestContext(t, http.MethodGet, "/deps/missing", "", caller)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDepartmentHandler_GetOptions(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	svc := &fakeDepartmentService{
		GetOptionsFn: func(ctx context.Context) ([]department.DepartmentOption, error) {
			return []department.DepartmentOption{{ID: uuid.New().String(), Name: "Engineering"}}, nil
		},
	}

	h := department.NewHandler(svc)
	c, w := newTestContext(t, http.MethodGet, "/deps/options", "", caller)

	h.GetOptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Engineering")
}

func TestDepartmentHandler_Delete(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	t.Run("success returns message body", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, got ownership.Caller, id string) error {
				return nil
			},
		}

		h := department.NewHandler(svc)
		c, w := newTestContext(t, http.MethodDelete, "/deps/some-id", "", caller)
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Department deleted successfully")
	})
}
