package model

type Venue struct {
	VenueID uint   `json:"venue_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

type CourtType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Court struct {
	CourtID uint   `json:"court_id"`
	VenueID uint   `json:"venue_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}
