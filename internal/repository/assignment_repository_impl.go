package repository

import (
	"go-hospital-resource-management/internal/domain/entity"
	domainRepo "go-hospital-resource-management/internal/domain/repository"

	"gorm.io/gorm"
)

type assignmentRepository struct{}

func NewAssignmentRepository() domainRepo.AssignmentRepository {
	return &assignmentRepository{}
}

func (r *assignmentRepository) Create(db *gorm.DB, assignment *entity.Assignment) error {
	return db.Create(assignment).Error
}

func (r *assignmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Assignment, error) {
	var assignment entity.Assignment
	err := db.Where("id = ?", id).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindAllDetailed(db *gorm.DB) ([]entity.AssignmentDetail, error) {
	var details []entity.AssignmentDetail
	err := db.Table("assignments").
		Select("assignments.id, patients.name AS patient_name, beds.id AS bed_id, beds.ward, doctors.name AS doctor_name, assignments.assignment_date").
		Joins("JOIN patients ON patients.id = assignments.patient_id").
		Joins("JOIN beds ON beds.id = assignments.bed_id").
		Joins("JOIN doctors ON doctors.id = assignments.doctor_id").
		Order("assignments.id").
		Scan(&details).Error
	return details, err
}

func (r *assignmentRepository) DeleteByID(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&entity.Assignment{}, id)
	return res.RowsAffected, res.Error
}
