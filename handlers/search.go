package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/racefinder/models"
	"github.com/padraicbc/racefinder/races"
)

// The conversational search has no model behind it yet: every message gets
// the same reply and the same query.
const (
	cannedReply = "I found several flat marathon courses perfect for PR attempts. " +
		"These races feature minimal elevation gain and fast, certified courses:"
	cannedLimit = 2
)

var (
	cannedCriteria = races.Criteria{Distances: []string{races.DistanceMarathon}}
	examplePrompts = []string{
		"Find me a flat marathon for a PR attempt",
		"Family-friendly 5K races this summer",
		"Trail races within 2 hours of Seattle",
	}
)

type searchRequest struct {
	Message string `json:"message"`
}

type searchResponse struct {
	Reply string               `json:"reply"`
	Races []models.DisplayRace `json:"races"`
}

// SearchPrompts returns example prompts for the search modal.
func (h *Handler) SearchPrompts(c echo.Context) error {
	return c.JSON(http.StatusOK, examplePrompts)
}

// Search answers a conversational search message.
func (h *Handler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errEmptyMessage.Error())
	}

	found := h.catalog.Query(cannedCriteria, races.SortParticipants)
	if len(found) > cannedLimit {
		found = found[:cannedLimit]
	}
	h.log.Debug("search", zap.String("message", req.Message), zap.Int("races", len(found)))

	return c.JSON(http.StatusOK, searchResponse{Reply: cannedReply, Races: found})
}
