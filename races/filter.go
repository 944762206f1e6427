package races

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/padraicbc/racefinder/models"
)

// DateRange bounds a race date. Both ends are inclusive calendar days; a zero
// bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Criteria is a set of user filters. Every empty field is a no-op; the
// non-empty ones are combined with AND.
type Criteria struct {
	SearchQuery string
	// Distances holds normalized categories, see DistanceCategories.
	Distances  []string
	Difficulty string
	// States is an exact match for one value and membership for several.
	States      []string
	HasKidsRace *bool
	DateRange   *DateRange
}

// IsZero reports whether c filters nothing.
func (c Criteria) IsZero() bool {
	return c.SearchQuery == "" && len(c.Distances) == 0 && c.Difficulty == "" &&
		len(c.States) == 0 && c.HasKidsRace == nil && c.DateRange == nil
}

// FilterRaces returns the records matching every criterion in c, in input order.
// Search matches the raw description, markup included.
func FilterRaces(records []models.Race, c Criteria) []models.Race {
	query := strings.ToLower(c.SearchQuery)
	return lo.Filter(records, func(r models.Race, _ int) bool {
		if query != "" && !strings.Contains(searchText(&r), query) {
			return false
		}
		if len(c.Distances) > 0 && !lo.Contains(c.Distances, NormalizeDistance(r.Distance)) {
			return false
		}
		if c.Difficulty != "" && r.Difficulty != c.Difficulty {
			return false
		}
		if len(c.States) > 0 && !lo.Contains(c.States, r.State) {
			return false
		}
		if c.HasKidsRace != nil && r.HasKidsRace != *c.HasKidsRace {
			return false
		}
		if c.DateRange != nil && !c.DateRange.contains(r.Date) {
			return false
		}
		return true
	})
}

func searchText(r *models.Race) string {
	return strings.ToLower(strings.Join([]string{
		r.Name, r.City, r.State, r.Distance, r.Difficulty, r.Description,
	}, " "))
}

func (dr *DateRange) contains(date string) bool {
	d, ok := ParseDate(date)
	if !ok {
		return false
	}
	if !dr.From.IsZero() && d.Before(Day(dr.From)) {
		return false
	}
	if !dr.To.IsZero() && d.After(Day(dr.To)) {
		return false
	}
	return true
}

// BaseFilter restricts the record set every caller sees to upcoming races in
// a set of states. It is deployment configuration, not a user filter.
type BaseFilter struct {
	// WindowMonths is the look-ahead from today, inclusive. <= 0 disables it.
	WindowMonths int
	// States is the allow-list of state values. Empty allows every state.
	States []string
}

// DefaultBaseFilter is the deployed restriction: six months ahead, three
// west coast states.
var DefaultBaseFilter = BaseFilter{WindowMonths: 6, States: []string{"CA", "OR", "WA"}}

// Allows reports whether r falls inside the window starting at today and its
// state is allowed.
func (b BaseFilter) Allows(r models.Race, today time.Time) bool {
	if len(b.States) > 0 && !lo.Contains(b.States, r.State) {
		return false
	}
	if b.WindowMonths <= 0 {
		return true
	}
	d, ok := ParseDate(r.Date)
	if !ok {
		return false
	}
	start := Day(today)
	end := start.AddDate(0, b.WindowMonths, 0)
	return !d.Before(start) && !d.After(end)
}
