package repository

import (
	"go-hospital-resource-management/internal/domain/entity"

	"gorm.io/gorm"
)

type BedRepository interface {
	Create(db *gorm.DB, bed *entity.Bed) error
	FindAll(db *gorm.DB) ([]entity.Bed, error)
	FindByStatus(db *gorm.DB, status entity.BedStatus) ([]entity.Bed, error)
	DeleteByID(db *gorm.DB, id uint) (int64, error)
	SearchByWardOrStatus(db *gorm.DB, term string) ([]entity.Bed, error)

	// OccupyIfAvailable flips the bed to occupied only when it is currently
	// available, reporting whether the guarded update matched a row.
	OccupyIfAvailable(db *gorm.DB, id uint) (bool, error)
	// Release sets the bed back to available unconditionally.
	Release(db *gorm.DB, id uint) error
}
