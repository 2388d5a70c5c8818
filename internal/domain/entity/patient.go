package entity

import "time"

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Patient represents an admitted patient
type Patient struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Age           int       `gorm:"not null" json:"age"`
	Gender        string    `gorm:"type:varchar(10);not null" json:"gender"`
	Contact       string    `gorm:"type:varchar(15)" json:"contact,omitempty"`
	AdmissionDate time.Time `gorm:"autoCreateTime" json:"admission_date"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsValidGender reports whether g is one of the three accepted values.
func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}
