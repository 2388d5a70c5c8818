package repository

import (
	"go-hospital-resource-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(db *gorm.DB, assignment *entity.Assignment) error
	FindByID(db *gorm.DB, id uint) (*entity.Assignment, error)
	FindAllDetailed(db *gorm.DB) ([]entity.AssignmentDetail, error)
	DeleteByID(db *gorm.DB, id uint) (int64, error)
}
