package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/innovatec/registration-api/internal/domain"
	"github.com/innovatec/registration-api/internal/repository"
)

var (
	ErrAdminEmailExists = repository.ErrAdminEmailExists
	ErrAdminNotFound    = repository.ErrAdminNotFound
	ErrWrongPassword    = errors.New("wrong password")
)

type AdminRepository interface {
	Create(ctx context.Context, admin domain.AdminUser) (domain.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (domain.AdminUser, error)
}

type AuthService struct {
	repo AdminRepository
}

func NewAuthService(repo AdminRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Signup(ctx context.Context, admin domain.AdminUser) (domain.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AdminUser{}, err
	}
	admin.Password = string(hash)

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AdminUser, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.AdminUser{}, ErrAdminNotFound
		}

		return domain.AdminUser{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return domain.AdminUser{}, ErrWrongPassword
	}

	return admin, nil
}
