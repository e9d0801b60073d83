package main

import (
	"context"
	"flag"

	"address-datagen/internal/app"
	"address-datagen/internal/catalog"
	"address-datagen/internal/config"
	"address-datagen/internal/repository"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	postcodesFile := flag.String("postcodes", "", "Path to the postcode CSV file to import")
	streetsFile := flag.String("streets", "", "Path to the street TSV file to import")
	configPath := flag.String("config", "configs", "config directory or file")
	flag.Parse()

	if err := app.SetupLogging("info", true); err != nil {
		log.Fatal().Err(err).Msg("cannot set up logging")
	}
	if *postcodesFile == "" && *streetsFile == "" {
		log.Fatal().Msg("at least one of --postcodes and --streets is required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer conn.Close(ctx)

	repo := repository.NewRepository(conn)
	if err := repo.CreateSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create tables")
	}

	if *postcodesFile != "" {
		if _, err := importPostcodes(ctx, repo, *postcodesFile); err != nil {
			log.Fatal().Err(err).Msg("postcode import failed")
		}
	}
	if *streetsFile != "" {
		if _, err := importStreets(ctx, repo, *streetsFile); err != nil {
			log.Fatal().Err(err).Msg("street import failed")
		}
	}
}

// importPostcodes loads a postcode file and stores the records not yet in the database.
// It returns the number of new rows.
func importPostcodes(ctx context.Context, repo *repository.Repository, path string) (int64, error) {
	log.Info().Str("file", path).Msg("importing postcodes")

	records, err := catalog.LoadPostcodes(path)
	if err != nil {
		return 0, err
	}
	before, err := repo.Count(ctx, "postcodes")
	if err != nil {
		return 0, err
	}
	added, err := repo.ImportPostalRecords(ctx, records)
	if err != nil {
		return 0, err
	}
	if err := verifyImport(ctx, repo, "postcodes", before, added, len(records)); err != nil {
		return 0, err
	}

	log.Info().Int("records", len(records)).Int64("added", added).Int64("skipped", int64(len(records))-added).Msg("imported postcodes")
	return added, nil
}

// importStreets loads a street file and stores the names not yet in the database.
// It returns the number of new rows.
func importStreets(ctx context.Context, repo *repository.Repository, path string) (int64, error) {
	log.Info().Str("file", path).Msg("importing streets")

	streets, err := catalog.LoadStreets(path)
	if err != nil {
		return 0, err
	}
	before, err := repo.Count(ctx, "streets")
	if err != nil {
		return 0, err
	}
	added, err := repo.ImportStreets(ctx, streets)
	if err != nil {
		return 0, err
	}
	if err := verifyImport(ctx, repo, "streets", before, added, len(streets)); err != nil {
		return 0, err
	}

	log.Info().Int("records", len(streets)).Int64("added", added).Int64("skipped", int64(len(streets))-added).Msg("imported streets")
	return added, nil
}

// verifyImport checks that table grew by exactly the rows reported as added,
// and that no more rows were added than the file held.
func verifyImport(ctx context.Context, repo *repository.Repository, table string, before, added int64, records int) error {
	if added < 0 || added > int64(records) {
		return errors.Newf("%s import reported %d new rows from %d records", table, added, records)
	}
	count, err := repo.Count(ctx, table)
	if err != nil {
		return err
	}
	if count != before+added {
		return errors.Newf("record count mismatch in %s: expected %d, got %d", table, before+added, count)
	}
	return nil
}
