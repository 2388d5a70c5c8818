package repository

import (
	"go-hospital-resource-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	DeleteByID(db *gorm.DB, id uint) (int64, error)
	SearchByNameOrSpecialty(db *gorm.DB, term string) ([]entity.Doctor, error)
}
