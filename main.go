package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/racefinder/config"
	"github.com/padraicbc/racefinder/dataset"
	"github.com/padraicbc/racefinder/db"
	"github.com/padraicbc/racefinder/handlers"
	applog "github.com/padraicbc/racefinder/logger"
	mw "github.com/padraicbc/racefinder/middleware"
	"github.com/padraicbc/racefinder/models"
	"github.com/padraicbc/racefinder/races"
)

//go:embed all:build/*
var embeddedFiles embed.FS

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	records, err := loadRecords(context.Background(), cfg)
	if err != nil {
		logger.Fatal("load races failed", zap.String("source", cfg.DataSource), zap.Error(err))
	}

	catalog := races.New(records, cfg.BaseFilter())
	logger.Info("races loaded",
		zap.String("source", cfg.DataSource),
		zap.Int("records", catalog.Len()),
		zap.Int("baseSet", len(catalog.All())),
		zap.Int("windowMonths", cfg.WindowMonths),
		zap.Strings("states", cfg.States),
	)

	version, err := mw.DatasetVersion(records)
	if err != nil {
		logger.Fatal("dataset version failed", zap.Error(err))
	}

	h := handlers.New(catalog, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))

	e.GET("/health", h.Health)

	today := func() string { return races.Day(time.Now()).Format(time.DateOnly) }
	h.Register(e.Group("/api", mw.ETag(version, today)))

	// Strip the "build/" prefix so URLs work correctly
	subFS, err := fs.Sub(embeddedFiles, "build")
	if err != nil {
		logger.Fatal("open embedded build fs failed", zap.Error(err))
	}
	fileServer := http.FileServer(http.FS(subFS))
	e.GET("/*", func(c echo.Context) error {
		path := c.Request().URL.Path

		// If request is for a static file, serve it
		if strings.Contains(path, ".") {
			http.StripPrefix("/", fileServer).ServeHTTP(c.Response(), c.Request())
			return nil
		}
		// Otherwise, serve `index.html` for client-side routing (SPA fallback)
		indexFile, err := subFS.Open("index.html")
		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}
		defer indexFile.Close()

		return c.Stream(http.StatusOK, "text/html", indexFile)
	})

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	logger.Info("starting server", zap.String("mode", "tls"), zap.Strings("domains", cfg.TLSDomains))
	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}

// loadRecords reads the race record set once, from the configured source.
func loadRecords(ctx context.Context, cfg *config.Config) ([]models.Race, error) {
	switch cfg.DataSource {
	case config.SourceFile:
		return dataset.LoadFile(cfg.DataFile)
	case config.SourcePostgres:
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		bdb, err := db.Setup(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer bdb.Close()

		records, err := db.LoadRaces(ctx, bdb)
		if err != nil {
			return nil, err
		}
		if err := dataset.Validate(records); err != nil {
			return nil, fmt.Errorf("races table: %w", err)
		}
		return records, nil
	default:
		return dataset.Bundled()
	}
}
