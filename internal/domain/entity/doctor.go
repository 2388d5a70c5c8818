package entity

// Doctor represents an attending doctor
type Doctor struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Specialty string `gorm:"type:varchar(100);not null" json:"specialty"`
	Contact   string `gorm:"type:varchar(15)" json:"contact,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
