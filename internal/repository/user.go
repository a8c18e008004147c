package repository

import (
	"context"

	"cargodeploy-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByExternalID retrieves a user by the identity provider subject
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "external_id = ?", externalID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FirstOrCreate loads the user with user.ExternalID, creating it from user's fields when absent
func (r *UserRepository) FirstOrCreate(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).
		Where(models.User{ExternalID: user.ExternalID}).
		FirstOrCreate(user).Error
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
