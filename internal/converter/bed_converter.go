package converter

import (
	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/domain/entity"
)

// BedToResponse converts a Bed entity to BedResponse DTO
func BedToResponse(bed *entity.Bed) *dto.BedResponse {
	if bed == nil {
		return nil
	}

	return &dto.BedResponse{
		ID:          bed.ID,
		Ward:        bed.Ward,
		Status:      string(bed.Status),
		LastCleaned: bed.LastCleaned,
	}
}

// BedsToResponses converts a slice of Bed entities
func BedsToResponses(beds []entity.Bed) []dto.BedResponse {
	responses := make([]dto.BedResponse, 0, len(beds))
	for i := range beds {
		responses = append(responses, *BedToResponse(&beds[i]))
	}
	return responses
}
