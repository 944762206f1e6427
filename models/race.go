package models

import "github.com/uptrace/bun"

// Race is one race event as stored in the bundled dataset (or the races table).
// Date and Distance are kept exactly as published; the races package
// normalizes them on read.
type Race struct {
	bun.BaseModel `bun:"table:races,alias:rc"`

	ID              string   `bun:"id,pk" json:"id"`
	Name            string   `bun:"name,notnull" json:"name"`
	Date            string   `bun:"date,notnull" json:"date"`
	City            string   `bun:"city,notnull" json:"city"`
	State           string   `bun:"state,notnull" json:"state"`
	Distance        string   `bun:"distance,notnull" json:"distance"`
	Difficulty      string   `bun:"difficulty,notnull" json:"difficulty"`
	Description     string   `bun:"description,notnull" json:"description"`
	ImageURL        string   `bun:"image_url,notnull" json:"imageUrl"`
	Latitude        float64  `bun:"latitude,notnull" json:"latitude"`
	Longitude       float64  `bun:"longitude,notnull" json:"longitude"`
	HasKidsRace     bool     `bun:"has_kids_race,notnull,default:false" json:"hasKidsRace"`
	RegistrationURL string   `bun:"registration_url,notnull" json:"registrationUrl"`
	Participants    *int     `bun:"participants" json:"participants,omitempty"`
	DistanceOptions []string `bun:"distance_options,array" json:"distanceOptions,omitempty"`
	ElevationGain   *int     `bun:"elevation_gain" json:"elevationGain,omitempty"`
	CourseType      *string  `bun:"course_type" json:"courseType,omitempty"`
	StartTime       *string  `bun:"start_time" json:"startTime,omitempty"`
	RegistrationFee *string  `bun:"registration_fee" json:"registrationFee,omitempty"`
}

// Location returns "<city>, <state>".
func (r *Race) Location() string {
	return r.City + ", " + r.State
}

// ParticipantCount returns the participant count, treating a missing value as 0.
func (r *Race) ParticipantCount() int {
	if r.Participants == nil {
		return 0
	}
	return *r.Participants
}
