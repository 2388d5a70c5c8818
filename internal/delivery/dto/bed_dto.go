package dto

import "time"

// AddBedRequest carries a new bed record
type AddBedRequest struct {
	Ward   string `json:"ward" validate:"required"`
	Status string `json:"status" validate:"required,oneof=available occupied maintenance"`
}

// BedResponse represents a bed row in responses
type BedResponse struct {
	ID          uint      `json:"id"`
	Ward        string    `json:"ward"`
	Status      string    `json:"status"`
	LastCleaned time.Time `json:"last_cleaned"`
}

// BedListResponse wraps a bed listing
type BedListResponse struct {
	Beds  []BedResponse `json:"beds"`
	Total int           `json:"total"`
}
