package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-orgadmin/internal/employee"
	employeeerrors "go-orgadmin/internal/employee/errors"
	"go-orgadmin/internal/ownership"
	"go-orgadmin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	m.Run()
}

type fakeEmployeeService struct {
	ListFn    func(ctx context.Context, caller ownership.Caller, skip, limit int) (employee.EmployeesResponse, error)
	GetByIDFn func(ctx context.Context, caller ownership.Caller, id string) (employee.EmployeeResponse, error)
	CreateFn  func(ctx context.Context, caller ownership.Caller, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, caller ownership.Caller, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, caller ownership.Caller, id string) error
}

func (f *fakeEmployeeService) List(ctx context.Context, caller ownership.Caller, skip, limit int) (employee.EmployeesResponse, error) {
	return f.ListFn(ctx, caller, skip, limit)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, caller ownership.Caller, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, caller, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, caller ownership.Caller, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, caller, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, caller ownership.Caller, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, caller, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, caller ownership.Caller, id string) error {
	return f.DeleteFn(ctx, caller, id)
}

func newTestContext(t *testing.T, method, target, body string, caller ownership.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ownership.ContextKey, caller)
	return c, w
}

func TestEmployeeHandler_Create(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, got ownership.Caller, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, caller.ID, got.ID)
				return employee.EmployeeResponse{ID: uuid.New().String(), WorkEmail: req.WorkEmail}, nil
			},
		}

		h := employee.NewHandler(svc)
		body := `{"work_email":"jane@corp.example","name":"Jane","mobile_number":"0812345678"}`
		c, w := newTestContext(t, http.MethodPost, "/emps", body, caller)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("mobile number with five digits -> validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		body := `{"work_email":"jane@corp.example","name":"Jane","mobile_number":"08123"}`
		c, w := newTestContext(t, http.MethodPost, "/emps", body, caller)

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Mobile Number")
	})

	t.Run("malformed email -> validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		body := `{"work_email":"not-an-email","name":"Jane","mobile_number":"0812345678"}`
		c, w := newTestContext(t, http.MethodPost, "/emps", body, caller)

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("dangling department -> 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, got ownership.Caller, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
			},
		}

		h := employee.NewHandler(svc)
		depID := uuid.New().String()
		body := `{"work_email":"jane@corp.example","name":"Jane","mobile_number":"0812345678","department_id":"` + depID + `"}`
		c, w := newTestContext(t, http.MethodPost, "/emps", body, caller)

		h.Create(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Department not found")
	})

	t.Run("duplicate email -> 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, got ownership.Caller, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeEmailExists
			},
		}

		h := employee.NewHandler(svc)
		body := `{"work_email":"jane@corp.example","name":"Jane","mobile_number":"0812345678"}`
		c, w := newTestContext(t, http.MethodPost, "/emps", body, caller)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	svc := &fakeEmployeeService{
		ListFn: func(ctx context.Context, got ownership.Caller, skip, limit int) (employee.EmployeesResponse, error) {
			assert.Equal(t, 10, skip)
			assert.Equal(t, 10, limit)
			return employee.EmployeesResponse{Data: []employee.EmployeeResponse{}, Count: 15}, nil
		},
	}

	h := employee.NewHandler(svc)
	c, w := newTestContext(t, http.MethodGet, "/emps?skip=10", "", caller)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":15`)
}

func TestEmployeeHandler_Update(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	t.Run("forbidden surfaces as 403", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, got ownership.Caller, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, apperror.ErrForbidden
			},
		}

		h := employee.NewHandler(svc)
		c, w := newTestContext(t, http.MethodPatch, "/emps/some-id", `{"name":"New"}`, caller)
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}

		h.Update(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	caller := ownership.Caller{ID: uuid.New()}

	svc := &fakeEmployeeService{
		DeleteFn: func(ctx context.Context, got ownership.Caller, id string) error {
			return nil
		},
	}

	h := employee.NewHandler(svc)
	c, w := newTestContext(t, http.MethodDelete, "/emps/some-id", "", caller)
	c.Params = gin.Params{{Key: "id", Value: "some-id"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee deleted successfully")
}
