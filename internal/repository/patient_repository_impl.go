package repository

import (
	"go-hospital-resource-management/internal/domain/entity"
	domainRepo "go-hospital-resource-management/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Order("id").Find(&patients).Error
	return patients, err
}

func (r *patientRepository) DeleteByID(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&entity.Patient{}, id)
	return res.RowsAffected, res.Error
}

func (r *patientRepository) SearchByName(db *gorm.DB, term string) ([]entity.Patient, error) {
	var patients []entity.Patient
	// LOWER(...) LIKE keeps the match case-insensitive on every driver.
	err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("id").Find(&patients).Error
	return patients, err
}
