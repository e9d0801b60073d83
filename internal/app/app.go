// Package app wires configuration, catalogs and the generator together for the commands.
package app

import (
	"context"
	"os"
	"time"

	"address-datagen/internal/catalog"
	"address-datagen/internal/config"
	"address-datagen/internal/generator"
	"address-datagen/internal/models"
	"address-datagen/internal/typo"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CatalogStore reads the catalogs from a database.
type CatalogStore interface {
	ListPostalRecords(ctx context.Context) ([]models.PostalRecord, error)
	ListStreets(ctx context.Context) ([]models.Street, error)
}

// SetupLogging configures the global zerolog logger. console switches to human-readable output.
func SetupLogging(level string, console bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "app: invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	if console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}

// LoadCatalog reads both catalogs from the configured source. store is only used for the
// postgres source and may be nil otherwise.
func LoadCatalog(ctx context.Context, cfg config.CatalogConfig, store CatalogStore) (*catalog.Catalog, error) {
	var (
		postcodes []models.PostalRecord
		streets   []models.Street
		err       error
	)
	switch cfg.Source {
	case config.SourceFile:
		if postcodes, err = catalog.LoadPostcodes(cfg.PostcodesFile); err != nil {
			return nil, err
		}
		if streets, err = catalog.LoadStreets(cfg.StreetsFile); err != nil {
			return nil, err
		}
	case config.SourcePostgres:
		if store == nil {
			return nil, errors.New("app: the postgres catalog source needs a database")
		}
		if postcodes, err = store.ListPostalRecords(ctx); err != nil {
			return nil, err
		}
		if streets, err = store.ListStreets(ctx); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf("app: unknown catalog source %q", cfg.Source)
	}

	cat, err := catalog.New(postcodes, streets)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("source", cfg.Source).
		Int("postcodes", len(postcodes)).
		Int("streets", len(streets)).
		Msg("catalog loaded")
	return cat, nil
}

// NewGenerator builds the address generator with typo injection at the configured rate.
func NewGenerator(cfg config.Generation, cat *catalog.Catalog) (*generator.Generator, error) {
	return generator.New(cfg, cat, typo.New(cfg.TypoProb))
}
