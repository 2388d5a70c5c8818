package dto

// AddDoctorRequest carries a new doctor record
type AddDoctorRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	Contact   string `json:"contact" validate:"omitempty,max=15"`
}

// DoctorResponse represents a doctor row in responses
type DoctorResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Contact   string `json:"contact,omitempty"`
}

// DoctorListResponse wraps a doctor listing
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
