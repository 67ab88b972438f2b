package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/config"
	"github.com/afonsocarlos/cofre/internal/service"
	"github.com/afonsocarlos/cofre/internal/storage"

	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive number", arg)
	}
	return id, nil
}

// parseDate parses a --date style flag value. Dates have day
// granularity and are anchored to UTC midnight.
func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(cli.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return d.UTC(), nil
}

// parsePeriod resolves the optional --from/--to pair. An empty --from
// defaults to the zero time, an empty --to to the end of today, so a
// single bound still behaves inclusively.
func parsePeriod(from, to string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := endOfDay(time.Now().UTC())

	if from != "" {
		d, err := parseDate(from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = d
	}
	if to != "" {
		d, err := parseDate(to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = endOfDay(d)
	}

	return start, end, nil
}

// endOfDay returns the last millisecond of the given day, so inclusive
// range queries cover the whole of the --to date.
func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), d.Location())
}
