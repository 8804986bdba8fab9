package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return identity.ErrUserExists
		}
		return httperr.Upstream("postgres", err)
	}
	return nil
}

func (r *UserGormRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, httperr.Upstream("postgres", err)
	}
	return &u, nil
}

var _ identity.UserRepository = (*UserGormRepository)(nil)
