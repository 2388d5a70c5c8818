package converter

import (
	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/domain/entity"
)

// AssignmentDetailToResponse converts the joined assignment projection to its DTO
func AssignmentDetailToResponse(detail *entity.AssignmentDetail) *dto.AssignmentResponse {
	if detail == nil {
		return nil
	}

	return &dto.AssignmentResponse{
		ID:             detail.ID,
		PatientName:    detail.PatientName,
		BedID:          detail.BedID,
		Ward:           detail.Ward,
		DoctorName:     detail.DoctorName,
		AssignmentDate: detail.AssignmentDate,
	}
}

// AssignmentDetailsToResponses converts a slice of joined assignment projections
func AssignmentDetailsToResponses(details []entity.AssignmentDetail) []dto.AssignmentResponse {
	responses := make([]dto.AssignmentResponse, 0, len(details))
	for i := range details {
		responses = append(responses, *AssignmentDetailToResponse(&details[i]))
	}
	return responses
}
