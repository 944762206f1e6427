package races

import (
	"strings"

	"github.com/samber/lo"

	"github.com/padraicbc/racefinder/models"
)

// Dedup drops records whose trimmed, case-insensitive name and raw date
// repeat an earlier record. The first occurrence wins.
func Dedup(records []models.Race) []models.Race {
	return lo.UniqBy(records, func(r models.Race) string {
		return strings.ToLower(strings.TrimSpace(r.Name)) + "\x00" + r.Date
	})
}

// Transform builds the card view of r. Participants is only set when positive.
func Transform(r models.Race) models.DisplayRace {
	d := models.DisplayRace{
		ID:         r.ID,
		Image:      r.ImageURL,
		Name:       r.Name,
		Date:       FormatDate(r.Date),
		Location:   r.Location(),
		Distances:  displayDistances(r.Distance, r.DistanceOptions),
		Difficulty: r.Difficulty,
	}
	if n := r.ParticipantCount(); n > 0 {
		d.Participants = &n
	}
	return d
}

// TransformAll maps Transform over records.
func TransformAll(records []models.Race) []models.DisplayRace {
	return lo.Map(records, func(r models.Race, _ int) models.DisplayRace { return Transform(r) })
}

// WithCoordinates builds the map view of r.
func WithCoordinates(r models.Race) models.MapRace {
	return models.MapRace{
		DisplayRace: Transform(r),
		Coordinates: models.Coordinates{Lat: r.Latitude, Lng: r.Longitude},
	}
}
