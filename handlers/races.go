package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/padraicbc/racefinder/models"
	"github.com/padraicbc/racefinder/races"
	"github.com/padraicbc/racefinder/sanitize"
)

type filterOptions struct {
	Distances    []string `json:"distances"`
	Difficulties []string `json:"difficulties"`
	States       []string `json:"states"`
	SortKeys     []string `json:"sortKeys"`
}

// Races runs the combined query: base filter, query-string filters, sort,
// dedup, card projection.
func (h *Handler) Races(c echo.Context) error {
	q := c.QueryParams()

	criteria, err := parseCriteria(q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sortBy := races.SortDate
	if s := q.Get("sort"); s != "" {
		sortBy = races.ParseSortKey(s)
	}

	return c.JSON(http.StatusOK, h.catalog.Query(criteria, sortBy))
}

// AllRaces returns the base set in its stored shape.
func (h *Handler) AllRaces(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.All())
}

// Cards returns every record as a card, ignoring the base filter.
func (h *Handler) Cards(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Cards())
}

// Map returns every record as a card with coordinates.
func (h *Handler) Map(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.WithCoordinates())
}

// Race returns the detail view for one race id.
func (h *Handler) Race(c echo.Context) error {
	r, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "race not found")
	}
	return c.JSON(http.StatusOK, detail(r))
}

// Filters returns the vocabulary the filter sidebar offers.
func (h *Handler) Filters(c echo.Context) error {
	return c.JSON(http.StatusOK, filterOptions{
		Distances:    races.DistanceCategories,
		Difficulties: h.catalog.Difficulties(),
		States:       h.catalog.States(),
		SortKeys: []string{
			string(races.SortDate), string(races.SortDistance), string(races.SortLocation),
			string(races.SortName), string(races.SortParticipants),
		},
	})
}

func detail(r models.Race) models.RaceDetail {
	card := races.Transform(r)
	d := models.RaceDetail{
		Race:             r,
		PlainDescription: sanitize.StripHTML(r.Description),
		FormattedDate:    card.Date,
		Location:         card.Location,
		Distances:        card.Distances,
	}
	if card.Participants != nil {
		d.ParticipantsLabel = message.NewPrinter(language.English).Sprintf("%d", *card.Participants)
	}
	return d
}

// parseCriteria maps query parameters onto filter criteria. distance and
// state may repeat; from and to take either date format.
func parseCriteria(q url.Values) (races.Criteria, error) {
	criteria := races.Criteria{
		SearchQuery: q.Get("q"),
		Difficulty:  strings.TrimSpace(q.Get("difficulty")),
		Distances: lo.Uniq(lo.FilterMap(q["distance"], func(d string, _ int) (string, bool) {
			d = strings.TrimSpace(d)
			return races.NormalizeDistance(d), d != ""
		})),
		States: lo.Compact(lo.Map(q["state"], func(s string, _ int) string { return strings.TrimSpace(s) })),
	}

	if v := q.Get("kids"); v != "" {
		kids, err := strconv.ParseBool(v)
		if err != nil {
			return races.Criteria{}, errBadKids
		}
		criteria.HasKidsRace = &kids
	}

	from, to := q.Get("from"), q.Get("to")
	if from != "" || to != "" {
		var dr races.DateRange
		if from != "" {
			d, ok := races.ParseDate(from)
			if !ok {
				return races.Criteria{}, errBadDate("from", from)
			}
			dr.From = d
		}
		if to != "" {
			d, ok := races.ParseDate(to)
			if !ok {
				return races.Criteria{}, errBadDate("to", to)
			}
			dr.To = d
		}
		if !dr.From.IsZero() && !dr.To.IsZero() && dr.To.Before(dr.From) {
			return races.Criteria{}, errInvalidRange
		}
		criteria.DateRange = &dr
	}

	return criteria, nil
}
