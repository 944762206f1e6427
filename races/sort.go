package races

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/padraicbc/racefinder/models"
)

// SortKey selects the order of a race list.
type SortKey string

const (
	SortDate         SortKey = "date"
	SortDistance     SortKey = "distance"
	SortLocation     SortKey = "location"
	SortName         SortKey = "name"
	SortParticipants SortKey = "participants"
)

// ParseSortKey maps a request value onto a SortKey. Unknown values sort by name.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDate, SortDistance, SortLocation, SortName, SortParticipants:
		return k
	default:
		return SortName
	}
}

// SortRaces returns a sorted copy of records. The sort is stable, so ties
// keep their input order.
func SortRaces(records []models.Race, key SortKey) []models.Race {
	out := slices.Clone(records)

	switch key {
	case SortDate:
		slices.SortStableFunc(out, func(a, b models.Race) int {
			da, okA := ParseDate(a.Date)
			db, okB := ParseDate(b.Date)
			switch {
			case okA && okB:
				return da.Compare(db)
			case okA:
				return -1
			case okB:
				return 1
			default:
				return 0
			}
		})
	case SortDistance:
		slices.SortStableFunc(out, func(a, b models.Race) int {
			return distanceRank(NormalizeDistance(a.Distance)) - distanceRank(NormalizeDistance(b.Distance))
		})
	case SortLocation:
		// collators keep scratch buffers, so one per call
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b models.Race) int {
			return col.CompareString(a.Location(), b.Location())
		})
	case SortParticipants:
		slices.SortStableFunc(out, func(a, b models.Race) int {
			return b.ParticipantCount() - a.ParticipantCount()
		})
	default:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b models.Race) int {
			return col.CompareString(a.Name, b.Name)
		})
	}

	return out
}
