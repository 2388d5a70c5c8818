package dto

import "time"

// CreateAssignmentRequest carries a new patient-bed-doctor assignment
type CreateAssignmentRequest struct {
	PatientID uint `json:"patient_id" validate:"required"`
	BedID     uint `json:"bed_id" validate:"required"`
	DoctorID  uint `json:"doctor_id" validate:"required"`
}

// AssignmentResponse is the joined projection listed to callers
type AssignmentResponse struct {
	ID             uint      `json:"id"`
	PatientName    string    `json:"patient_name"`
	BedID          uint      `json:"bed_id"`
	Ward           string    `json:"ward"`
	DoctorName     string    `json:"doctor_name"`
	AssignmentDate time.Time `json:"assignment_date"`
}

// AssignmentListResponse wraps an assignment listing
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}
