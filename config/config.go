// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/padraicbc/racefinder/races"
)

// Dataset sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// Dataset – where the race records come from, read once at start.
	DataSource string
	DataFile   string

	// Base filter applied to every listing.
	WindowMonths int
	States       []string

	// PostgreSQL – only for the postgres source and cmd/importraces.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// MySQL – legacy listing database, used only by cmd/importraces.
	MySQLDSN string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg, err := load(newViper())
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func load(v *viper.Viper) (*Config, error) {
	// Defaults
	v.SetDefault("PORT", ":9000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("TLS_DOMAINS", "racefinder.app,www.racefinder.app")
	v.SetDefault("DATA_SOURCE", SourceEmbedded)
	v.SetDefault("RACE_WINDOW_MONTHS", races.DefaultBaseFilter.WindowMonths)
	v.SetDefault("RACE_STATES", strings.Join(races.DefaultBaseFilter.States, ","))
	v.SetDefault("DB_USER", "racefinder")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "racefinder")
	v.SetDefault("DB_SSLMODE", "disable")

	cfg := &Config{
		Debug:        v.GetBool("DEBUG"),
		Port:         v.GetString("PORT"),
		TLSDomains:   splitTrimmed(v.GetString("TLS_DOMAINS")),
		DataSource:   strings.ToLower(strings.TrimSpace(v.GetString("DATA_SOURCE"))),
		DataFile:     v.GetString("DATA_FILE"),
		WindowMonths: v.GetInt("RACE_WINDOW_MONTHS"),
		States:       splitTrimmed(v.GetString("RACE_STATES")),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		DBUser:       v.GetString("DB_USER"),
		DBPass:       v.GetString("DB_PASS"),
		DBHost:       v.GetString("DB_HOST"),
		DBPort:       v.GetString("DB_PORT"),
		DBName:       v.GetString("DB_NAME"),
		DBSSLMode:    v.GetString("DB_SSLMODE"),
		MySQLDSN:     v.GetString("MYSQL_DSN"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BaseFilter returns the deployment restriction for race listings.
func (c *Config) BaseFilter() races.BaseFilter {
	return races.BaseFilter{WindowMonths: c.WindowMonths, States: c.States}
}

// HasPostgres reports whether enough is set to reach PostgreSQL.
func (c *Config) HasPostgres() bool {
	return c.DatabaseURL != "" || c.DBPass != ""
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

func (c *Config) validate() error {
	switch c.DataSource {
	case SourceEmbedded:
	case SourceFile:
		if c.DataFile == "" {
			return fmt.Errorf("config: DATA_FILE must be set for DATA_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if !c.HasPostgres() {
			return fmt.Errorf("config: DATABASE_URL or DB_PASS must be set for DATA_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("config: unknown DATA_SOURCE %q", c.DataSource)
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
