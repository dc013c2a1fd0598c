package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"go-hrms/internal/auth"
	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/employee"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	findByIDFn       func(ctx context.Context, id string) (*employee.Employee, error)
	findByUsernameFn func(ctx context.Context, username string) (*employee.Employee, error)
	updateFn         func(ctx context.Context, empl *employee.Employee) error
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) FindAll(ctx context.Context, filter employee.ListEmployeesQuery) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByUsername(ctx context.Context, username string) (*employee.Employee, error) {
	if f.findByUsernameFn != nil {
		return f.findByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindLeads(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func activeUser(t *testing.T, password string) *employee.Employee {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &employee.Employee{
		ID:       uuid.New(),
		Name:     "Babar Azam",
		Username: "babar",
		Password: string(hashed),
		Role:     "EMPLOYEE",
		Status:   "Active",
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	user := activeUser(t, "babar123")
	repo := &fakeEmployeeRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*employee.Employee, error) {
			if username == user.Username {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := auth.NewService(repo)

	t.Run("success", func(t *testing.T) {
		token, resp, err := svc.Login(ctx, "babar", "babar123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "EMPLOYEE", resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "babar", "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ghost", "babar123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	user := activeUser(t, "babar123")
	user.Status = "Inactive"
	repo := &fakeEmployeeRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*employee.Employee, error) {
			return user, nil
		},
	}
	svc := auth.NewService(repo)

	_, _, err := svc.Login(ctx, "babar", "babar123")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()
	user := activeUser(t, "babar123")

	repo := &fakeEmployeeRepo{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			if id == user.ID.String() {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := auth.NewService(repo)

	resp, err := svc.GetMe(ctx, user.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, user.Username, resp.Username)

	_, err = svc.GetMe(ctx, uuid.New().String())
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)

	_, err = svc.GetMe(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	user := activeUser(t, "oldpass")

	var updated *employee.Employee
	repo := &fakeEmployeeRepo{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return user, nil
		},
		updateFn: func(ctx context.Context, empl *employee.Employee) error {
			updated = empl
			return nil
		},
	}
	svc := auth.NewService(repo)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "nope",
			NewPassword:     "newpass",
		})
		assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
	})

	t.Run("success stores a new hash", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "oldpass",
			NewPassword:     "newpass",
		})
		assert.NoError(t, err)
		if assert.NotNil(t, updated) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass")))
		}
	})
}
