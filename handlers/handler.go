package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/racefinder/races"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	catalog *races.Catalog
	log     *zap.Logger
}

// New creates a Handler over the race catalog.
func New(catalog *races.Catalog, log *zap.Logger) *Handler {
	return &Handler{catalog: catalog, log: log}
}

// Register mounts the race API on g.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/races", h.Races)
	g.GET("/races/all", h.AllRaces)
	g.GET("/races/cards", h.Cards)
	g.GET("/races/map", h.Map)
	g.GET("/races/:id", h.Race)
	g.GET("/filters", h.Filters)
	g.GET("/search/prompts", h.SearchPrompts)
	g.POST("/search", h.Search)
}
