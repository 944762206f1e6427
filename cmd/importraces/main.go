// cmd/importraces/main.go
// Loads race records into the PostgreSQL races table for DATA_SOURCE=postgres.
//
// Usage:
//
//	go run ./cmd/importraces                      # bundled dataset
//	go run ./cmd/importraces -file races.json     # dataset file, either variant
//	MYSQL_DSN="user:pass@tcp(host:3306)/listings?parseTime=true" \
//	go run ./cmd/importraces -from-mysql          # legacy listings table
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/padraicbc/racefinder/config"
	"github.com/padraicbc/racefinder/dataset"
	bundb "github.com/padraicbc/racefinder/db"
	"github.com/padraicbc/racefinder/models"
)

func main() {
	file := flag.String("file", "", "dataset file (default: bundled dataset)")
	fromMySQL := flag.Bool("from-mysql", false, "read the legacy race_listings table from MYSQL_DSN")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()
	if !cfg.HasPostgres() {
		log.Fatal("DATABASE_URL or DB_PASS required")
	}

	records, err := readRecords(ctx, cfg, *file, *fromMySQL)
	if err != nil {
		log.Fatalf("read races: %v", err)
	}
	if err := dataset.Validate(records); err != nil {
		log.Fatalf("validate races: %v", err)
	}
	log.Printf("read %d races", len(records))

	pgDB, err := bundb.Setup(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	n, err := bundb.InsertRaces(ctx, pgDB, records)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	fmt.Printf("%d races imported\n", n)
}

func readRecords(ctx context.Context, cfg *config.Config, file string, fromMySQL bool) ([]models.Race, error) {
	switch {
	case fromMySQL:
		return readMySQL(ctx, cfg.MySQLDSN)
	case file != "":
		return dataset.LoadFile(file)
	default:
		return dataset.Bundled()
	}
}

func readMySQL(ctx context.Context, dsn string) ([]models.Race, error) {
	if dsn == "" {
		return nil, fmt.Errorf("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/listings?parseTime=true")
	}
	myDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	log.Println("connected to MySQL")

	rows, err := myDB.QueryContext(ctx, `
		SELECT id, name, race_date, city, state, distance, difficulty, description,
		       image_url, lat, lng, kids_race, registration_url, participants
		FROM race_listings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query race_listings: %w", err)
	}
	defer rows.Close()

	var out []models.Race
	for rows.Next() {
		var (
			r            models.Race
			date         sql.NullTime
			participants sql.NullInt64
		)
		if err := rows.Scan(&r.ID, &r.Name, &date, &r.City, &r.State, &r.Distance, &r.Difficulty,
			&r.Description, &r.ImageURL, &r.Latitude, &r.Longitude, &r.HasKidsRace,
			&r.RegistrationURL, &participants); err != nil {
			return nil, fmt.Errorf("scan race_listings: %w", err)
		}
		r.Date = fmtDate(date)
		r.Participants = nullInt(participants)
		out = append(out, r)
	}
	return out, rows.Err()
}

// --- helpers ---

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// fmtDate keeps undated listings as "TBD" so they stay out of dated listings.
func fmtDate(t sql.NullTime) string {
	if !t.Valid {
		return "TBD"
	}
	return t.Time.Format(time.DateOnly)
}
