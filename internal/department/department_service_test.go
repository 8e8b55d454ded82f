package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-orgadmin/internal/department"
	departmenterrors "go-orgadmin/internal/department/errors"
	departmentMock "go-orgadmin/internal/department/mock"
	"go-orgadmin/internal/ownership"
	"go-orgadmin/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
		TranslateError:       true,
	})
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(gormDB, repo, rdb)

	return &serviceDeps{
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	caller := ownership.Caller{ID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := department.CreateDepartmentRequest{Code: "ENG", Name: "Engineering"}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, "ENG", d.Code)
				assert.Equal(t, "Engineering", d.Name)
				assert.Equal(t, caller.ID, d.OwnerID)
				assert.NotEqual(t, uuid.Nil, d.ID)
				return nil
			})

		deps.redismock.ExpectDel(department.DepartmentOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, caller, req)

		assert.NoError(t, err)
		assert.Equal(t, "ENG", resp.Code)
		assert.Equal(t, caller.ID.String(), resp.OwnerID)
	})

	t.Run("duplicate code -> conflict error", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := department.CreateDepartmentRequest{Code: "ENG", Name: "Engineering"}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(gorm.ErrDuplicatedKey)

		_, err := deps.service.Create(ctx, caller, req)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentCodeExists)
	})

	t.Run("repo error passthrough", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, caller, department.CreateDepartmentRequest{Code: "X", Name: "Y"})

		assert.Error(t, err)
	})
}

func TestDepartmentService_List(t *testing.T) {
	ctx := context.Background()
	caller := ownership.Caller{ID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		rows := []department.Department{
			{ID: uuid.New(), Code: "ENG", Name: "Engineering", OwnerID: caller.ID},
			{ID: uuid.New(), Code: "FIN", Name: "Finance", OwnerID: caller.ID},
		}

		deps.repo.EXPECT().Count(ctx, caller).Return(int64(12), nil)
		deps.repo.EXPECT().FindPage(ctx, caller, 0, 10).Return(rows, nil)

		resp, err := deps.service.List(ctx, caller, 0, 10)

		assert.NoError(t, err)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, int64(12), resp.Count)
		assert.Equal(t, "Engineering", resp.Data[0].Name)
	})

	t.Run("count error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().Count(ctx, caller).Return(int64(0), errors.New("db error"))

		_, err := deps.service.List(ctx, caller, 0, 10)

		assert.Error(t, err)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()
	owner := ownership.Caller{ID: uuid.New()}
	stranger := ownership.Caller{ID: uuid.New()}
	superuser := ownership.Caller{ID: uuid.New(), IsSuperuser: true}

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, owner, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("malformed id -> unprocessable, never hits the store", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(ctx, owner, "not-a-uuid")

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
		assert.Equal(t, http.StatusUnprocessableEntity, apperror.ToHTTP(err).Status)
	})

	t.Run("forbidden for non-owner", func(t *testing.T) {
		deps := setupServiceTest(t)
		dept := &department.Department{ID: uuid.New(), Code: "ENG", OwnerID: owner.ID}

		deps.repo.EXPECT().FindByID(ctx, dept.ID.String()).Return(dept, nil)

		_, err := deps.service.GetByID(ctx, stranger, dept.ID.String())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("superuser reads any record", func(t *testing.T) {
		deps := setupServiceTest(t)
		dept := &department.Department{ID: uuid.New(), Code: "ENG", Name: "Engineering", OwnerID: owner.ID}

		deps.repo.EXPECT().FindByID(ctx, dept.ID.String()).Return(dept, nil)

		resp, err := deps.service.GetByID(ctx, superuser, dept.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, dept.ID.String(), resp.ID)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	owner := ownership.Caller{ID: uuid.New()}
	stranger := ownership.Caller{ID: uuid.New()}

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		dept := &department.Department{ID: uuid.New(), Code: "ENG", Name: "Engineering", OwnerID: owner.ID}
		newName := "Platform Engineering"

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, dept.ID.String()).Return(dept, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, "ENG", d.Code)
				assert.Equal(t, newName, d.Name)
				return nil
			})

		deps.redismock.ExpectDel(department.DepartmentOptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, owner, dept.ID.String(), department.UpdateDepartmentRequest{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "ENG", resp.Code)
		assert.Equal(t, newName, resp.Name)
	})

	t.Run("not found before forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, stranger, id, department.UpdateDepartmentRequest{})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("malformed id -> unprocessable", func(t *testing.T) {
		deps := setupServiceTest(t)
		newName := "Platform"

		_, err := deps.service.Update(ctx, owner, "not-a-uuid", department.UpdateDepartmentRequest{Name: &newName})

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})

	t.Run("forbidden -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		dept := &department.Department{ID: uuid.New(), Code: "ENG", OwnerID: owner.ID}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, dept.ID.String()).Return(dept, nil)

		_, err := deps.service.Update(ctx, stranger, dept.ID.String(), department.UpdateDepartmentRequest{})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("duplicate code on rename -> conflict error", func(t *testing.T) {
		deps := setupServiceTest(t)
		dept := &department.Department{ID: uuid.New(), Code: "ENG", OwnerID: owner.ID}
		newCode := "FIN"

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, dept.ID.String()).Return(dept, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := deps.service.Update(ctx, owner, dept.ID.String(), department.UpdateDepartmentRequest{Code: &newCode})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentCodeExists)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := ownership.Caller{ID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		dept := &department.Department{ID: uuid.New(), Code: "ENG", OwnerID: owner.ID}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, dept.ID.String()).Return(dept, nil)
		deps.repo.EXPECT().Delete(ctx, dept).Return(nil)

		deps.redismock.ExpectDel(department.DepartmentOptionsKey).SetVal(1)

		err := deps.service.Delete(ctx, owner, dept.ID.String())

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, owner, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("malformed id -> unprocessable", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Delete(ctx, owner, "not-a-uuid")

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads from repo and fills cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		rows := []department.Department{{ID: id, Name: "Engineering"}}
		opts := []department.DepartmentOption{{ID: id.String(), Name: "Engineering"}}
		data, _ := json.Marshal(opts)

		deps.redismock.ExpectGet(department.DepartmentOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx).Return(rows, nil)
		deps.redismock.ExpectSet(department.DepartmentOptionsKey, data, 30*time.Minute).SetVal("OK")

		got, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, opts, got)
	})

	t.Run("cache hit skips the repo", func(t *testing.T) {
		deps := setupServiceTest(t)
		opts := []department.DepartmentOption{{ID: uuid.New().String(), Name: "Finance"}}
		data, _ := json.Marshal(opts)

		deps.redismock.ExpectGet(department.DepartmentOptionsKey).SetVal(string(data))

		got, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, opts, got)
	})
}
