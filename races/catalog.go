// Package races holds the race query pipeline: the immutable record set, the
// deployment base filter, user filters, sorting, dedup and the card
// projection. Nothing here does I/O or mutates shared state.
package races

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/padraicbc/racefinder/models"
)

// Catalog is the read-only race record set.
type Catalog struct {
	records []models.Race
	base    BaseFilter
	now     func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock replaces time.Now for the base filter window.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// New returns a Catalog over a copy of records.
func New(records []models.Race, base BaseFilter, opts ...Option) *Catalog {
	c := &Catalog{
		records: slices.Clone(records),
		base: BaseFilter{
			WindowMonths: base.WindowMonths,
			States:       slices.Clone(base.States),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the size of the full, unfiltered record set.
func (c *Catalog) Len() int { return len(c.records) }

// BaseFilter returns the deployment restriction in use.
func (c *Catalog) BaseFilter() BaseFilter { return c.base }

// All returns the base set: records inside the base filter, raw shape.
func (c *Catalog) All() []models.Race {
	today := c.now()
	return lo.Filter(c.records, func(r models.Race, _ int) bool { return c.base.Allows(r, today) })
}

// ByID looks id up in the full record set, ignoring the base filter.
func (c *Catalog) ByID(id string) (models.Race, bool) {
	return lo.Find(c.records, func(r models.Race) bool { return r.ID == id })
}

// Cards returns the full, unfiltered record set as cards.
func (c *Catalog) Cards() []models.DisplayRace {
	return TransformAll(c.records)
}

// WithCoordinates returns the full, unfiltered record set as map pins.
func (c *Catalog) WithCoordinates() []models.MapRace {
	return lo.Map(c.records, func(r models.Race, _ int) models.MapRace { return WithCoordinates(r) })
}

// Filter applies criteria to the base set.
func (c *Catalog) Filter(criteria Criteria) []models.Race {
	return FilterRaces(c.All(), criteria)
}

// Query is the combined pipeline used by pages: base filter, user filter,
// sort, dedup, then card projection. Sorting precedes dedup so the surviving
// duplicate is the first one in the requested order.
func (c *Catalog) Query(criteria Criteria, sortBy SortKey) []models.DisplayRace {
	return TransformAll(Dedup(SortRaces(c.Filter(criteria), sortBy)))
}

// States returns the distinct states present in the base set, sorted.
func (c *Catalog) States() []string {
	states := lo.Uniq(lo.Map(c.All(), func(r models.Race, _ int) string { return r.State }))
	slices.Sort(states)
	return states
}

// Difficulties returns the distinct difficulty labels present in the base
// set, in first-seen order.
func (c *Catalog) Difficulties() []string {
	return lo.Uniq(lo.Map(c.All(), func(r models.Race, _ int) string { return r.Difficulty }))
}
