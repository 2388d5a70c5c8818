package entity

import "time"

// Assignment binds one patient, one bed, and one doctor. Creating one marks
// the bed occupied; deleting it frees the bed again.
type Assignment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PatientID      uint      `gorm:"not null;index" json:"patient_id"`
	BedID          uint      `gorm:"not null;index" json:"bed_id"`
	DoctorID       uint      `gorm:"not null;index" json:"doctor_id"`
	AssignmentDate time.Time `gorm:"autoCreateTime" json:"assignment_date"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"patient,omitempty"`
	Bed     Bed     `gorm:"foreignKey:BedID;constraint:OnDelete:RESTRICT" json:"bed,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"doctor,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentDetail is the joined projection used by assignment listings.
// It is scanned from a join, not mapped to a table of its own.
type AssignmentDetail struct {
	ID             uint      `json:"id"`
	PatientName    string    `json:"patient_name"`
	BedID          uint      `json:"bed_id"`
	Ward           string    `json:"ward"`
	DoctorName     string    `json:"doctor_name"`
	AssignmentDate time.Time `json:"assignment_date"`
}
