package repository

import (
	"go-hospital-resource-management/internal/domain/entity"
	domainRepo "go-hospital-resource-management/internal/domain/repository"

	"gorm.io/gorm"
)

type bedRepository struct{}

func NewBedRepository() domainRepo.BedRepository {
	return &bedRepository{}
}

func (r *bedRepository) Create(db *gorm.DB, bed *entity.Bed) error {
	return db.Create(bed).Error
}

func (r *bedRepository) FindAll(db *gorm.DB) ([]entity.Bed, error) {
	var beds []entity.Bed
	err := db.Order("id").Find(&beds).Error
	return beds, err
}

func (r *bedRepository) FindByStatus(db *gorm.DB, status entity.BedStatus) ([]entity.Bed, error) {
	var beds []entity.Bed
	err := db.Where("status = ?", status).Order("id").Find(&beds).Error
	return beds, err
}

func (r *bedRepository) DeleteByID(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&entity.Bed{}, id)
	return res.RowsAffected, res.Error
}

func (r *bedRepository) SearchByWardOrStatus(db *gorm.DB, term string) ([]entity.Bed, error) {
	var beds []entity.Bed
	err := db.Where("LOWER(ward) LIKE LOWER(?) OR status = ?", "%"+term+"%", term).
		Order("id").Find(&beds).Error
	return beds, err
}

// OccupyIfAvailable is the compare-and-set half of assignment creation: the
// WHERE guard makes two racing assignments against the same bed serialize at
// the store, so only one sees an affected row.
func (r *bedRepository) OccupyIfAvailable(db *gorm.DB, id uint) (bool, error) {
	res := db.Model(&entity.Bed{}).
		Where("id = ? AND status = ?", id, entity.BedStatusAvailable).
		Update("status", entity.BedStatusOccupied)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *bedRepository) Release(db *gorm.DB, id uint) error {
	return db.Model(&entity.Bed{}).
		Where("id = ?", id).
		Update("status", entity.BedStatusAvailable).Error
}
