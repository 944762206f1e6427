package models

// DisplayRace is the card-ready projection of a Race.
type DisplayRace struct {
	ID           string   `json:"id"`
	Image        string   `json:"image"`
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	Location     string   `json:"location"`
	Distances    []string `json:"distances"`
	Difficulty   string   `json:"difficulty"`
	Participants *int     `json:"participants,omitempty"`
}

// Coordinates is a map pin position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapRace is a DisplayRace with its map position.
type MapRace struct {
	DisplayRace
	Coordinates Coordinates `json:"coordinates"`
}

// RaceDetail is the detail-page view: the stored record plus render-time fields.
type RaceDetail struct {
	Race
	PlainDescription  string   `json:"plainDescription"`
	FormattedDate     string   `json:"formattedDate"`
	Location          string   `json:"location"`
	Distances         []string `json:"distances"`
	ParticipantsLabel string   `json:"participantsLabel,omitempty"`
}
