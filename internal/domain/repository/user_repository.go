package repository

import (
	"go-hospital-resource-management/internal/domain/entity"

	"gorm.io/gorm"
)

// Repository methods take the *gorm.DB they should run on so callers can pass
// either the pooled handle or an open transaction.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	UpdatePasswordHash(db *gorm.DB, username, passwordHash string) error
}
