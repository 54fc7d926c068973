package repository

import (
	"context"
	"fmt"

	"github.com/innovatec/registration-api/internal/domain"
	"github.com/innovatec/registration-api/internal/repository/dao"
)

var (
	ErrAdminEmailExists = dao.ErrAdminEmailExists
	ErrAdminNotFound    = dao.ErrAdminNotFound
)

type AdminDAO interface {
	Insert(ctx context.Context, admin dao.AdminUser) (dao.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (dao.AdminUser, error)
}

type AdminRepository struct {
	dao AdminDAO
}

func NewAdminRepository(dao AdminDAO) *AdminRepository {
	return &AdminRepository{
		dao: dao,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin domain.AdminUser) (domain.AdminUser, error) {
	created, err := r.dao.Insert(ctx, dao.AdminUser{
		Email:    admin.Email,
		Password: admin.Password,
		Name:     admin.Name,
	})
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AdminRepository) daoToDomain(a dao.AdminUser) domain.AdminUser {
	return domain.AdminUser{
		ID:        a.ID,
		Email:     a.Email,
		Password:  a.Password,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
