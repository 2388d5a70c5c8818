package entity

import "time"

// BedStatus represents the occupancy state of a bed
type BedStatus string

const (
	BedStatusAvailable   BedStatus = "available"
	BedStatusOccupied    BedStatus = "occupied"
	BedStatusMaintenance BedStatus = "maintenance"
)

// IsValidBedStatus reports whether s is one of the three accepted values.
func IsValidBedStatus(s string) bool {
	switch BedStatus(s) {
	case BedStatusAvailable, BedStatusOccupied, BedStatusMaintenance:
		return true
	}
	return false
}

// Bed represents a ward bed. Status is only flipped by the assignment flow
// once the bed exists.
type Bed struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Ward        string    `gorm:"type:varchar(50);not null" json:"ward"`
	Status      BedStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	LastCleaned time.Time `gorm:"autoCreateTime" json:"last_cleaned"`
}

func (Bed) TableName() string {
	return "beds"
}

// IsAvailable checks if the bed can receive an assignment
func (b *Bed) IsAvailable() bool {
	return b.Status == BedStatusAvailable
}
