package repository

import (
	"go-hospital-resource-management/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	DeleteByID(db *gorm.DB, id uint) (int64, error)
	SearchByName(db *gorm.DB, term string) ([]entity.Patient, error)
}
