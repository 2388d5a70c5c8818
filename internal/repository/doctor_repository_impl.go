package repository

import (
	"go-hospital-resource-management/internal/domain/entity"
	domainRepo "go-hospital-resource-management/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Order("id").Find(&doctors).Error
	return doctors, err
}

func (r *doctorRepository) DeleteByID(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&entity.Doctor{}, id)
	return res.RowsAffected, res.Error
}

func (r *doctorRepository) SearchByNameOrSpecialty(db *gorm.DB, term string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	pattern := "%" + term + "%"
	err := db.Where("LOWER(name) LIKE LOWER(?) OR LOWER(specialty) LIKE LOWER(?)", pattern, pattern).
		Order("id").Find(&doctors).Error
	return doctors, err
}
