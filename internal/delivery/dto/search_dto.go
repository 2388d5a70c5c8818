package dto

// SearchResponse holds the rows matching a search, one slice per entity kind.
// Only the slice for the searched kind is populated; an unknown kind yields
// Total 0 with every slice empty.
type SearchResponse struct {
	Type     string            `json:"type"`
	Term     string            `json:"term"`
	Patients []PatientResponse `json:"patients,omitempty"`
	Doctors  []DoctorResponse  `json:"doctors,omitempty"`
	Beds     []BedResponse     `json:"beds,omitempty"`
	Total    int               `json:"total"`
}
