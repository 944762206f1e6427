package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/samber/lo"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/racefinder/config"
	"github.com/padraicbc/racefinder/models"
)

const batchSize = 500

// Setup opens a PostgreSQL connection using the provided config.
func Setup(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

// CreateTables creates the races table if it does not exist.
func CreateTables(ctx context.Context, db bun.IDB) error {
	if _, err := db.NewCreateTable().Model((*models.Race)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("creating table for %T: %w", (*models.Race)(nil), err)
	}
	return nil
}

// LoadRaces reads the whole races table, ordered by id.
func LoadRaces(ctx context.Context, db bun.IDB) ([]models.Race, error) {
	var records []models.Race
	if err := db.NewSelect().Model(&records).OrderExpr("rc.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("loading races: %w", err)
	}
	return records, nil
}

// upsertColumns are overwritten when an imported id already exists.
var upsertColumns = []string{
	"name", "date", "city", "state", "distance", "difficulty", "description",
	"image_url", "latitude", "longitude", "has_kids_race", "registration_url",
	"participants", "distance_options", "elevation_gain", "course_type",
	"start_time", "registration_fee",
}

// InsertRaces upserts records by id in one transaction and returns the number
// of rows written.
func InsertRaces(ctx context.Context, db *bun.DB, records []models.Race) (int, error) {
	n := 0
	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, batch := range lo.Chunk(records, batchSize) {
			q := tx.NewInsert().Model(&batch).On("CONFLICT (id) DO UPDATE")
			for _, col := range upsertColumns {
				q = q.Set(col + " = EXCLUDED." + col)
			}
			res, err := q.Exec(ctx)
			if err != nil {
				return fmt.Errorf("inserting races: %w", err)
			}
			affected, _ := res.RowsAffected()
			n += int(affected)
		}
		return nil
	})
	return n, err
}
