package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/innovatec/registration-api/internal/domain"
)

type fakeAdminRepo struct {
	byEmail map[string]domain.AdminUser
	err     error
}

func (f *fakeAdminRepo) Create(_ context.Context, admin domain.AdminUser) (domain.AdminUser, error) {
	if f.err != nil {
		return domain.AdminUser{}, f.err
	}

	admin.ID = 1
	if f.byEmail == nil {
		f.byEmail = map[string]domain.AdminUser{}
	}
	f.byEmail[admin.Email] = admin

	return admin, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (domain.AdminUser, error) {
	if f.err != nil {
		return domain.AdminUser{}, f.err
	}

	admin, ok := f.byEmail[email]
	if !ok {
		return domain.AdminUser{}, ErrAdminNotFound
	}

	return admin, nil
}

func TestAuthService_SignupHashesThePassword(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.AdminUser{
		Email:    "admin@example.com",
		Password: "hunter2hunter2",
		Name:     "Admin",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("hunter2hunter2")))
}

func TestAuthService_Login(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := NewAuthService(repo)
	_, err := svc.Signup(context.Background(), domain.AdminUser{
		Email:    "admin@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	admin, err := svc.Login(context.Background(), "admin@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", admin.Email)

	_, err = svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
