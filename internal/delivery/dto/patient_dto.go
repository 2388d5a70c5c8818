package dto

import "time"

// AddPatientRequest carries a patient admission
type AddPatientRequest struct {
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age" validate:"required,gt=0"`
	Gender  string `json:"gender" validate:"required,oneof=Male Female Other"`
	Contact string `json:"contact" validate:"omitempty,max=15"`
}

// PatientResponse represents a patient row in responses
type PatientResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	Contact       string    `json:"contact,omitempty"`
	AdmissionDate time.Time `json:"admission_date"`
}

// PatientListResponse wraps a patient listing
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
