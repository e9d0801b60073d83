// Package catalog loads the read-only postal-code and street-name catalogs the generator samples from.
package catalog

import (
	"math/rand/v2"

	"address-datagen/internal/models"

	"github.com/cockroachdb/errors"
)

// ErrEmptyCatalog is returned when a catalog has nothing to sample from.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Catalog holds both lookup catalogs. It is immutable once built and safe for concurrent use.
type Catalog struct {
	postcodes []models.PostalRecord
	streets   []models.Street
}

// New builds a catalog, rejecting empty inputs.
func New(postcodes []models.PostalRecord, streets []models.Street) (*Catalog, error) {
	if len(postcodes) == 0 {
		return nil, errors.Wrap(ErrEmptyCatalog, "catalog: no postal records")
	}
	if len(streets) == 0 {
		return nil, errors.Wrap(ErrEmptyCatalog, "catalog: no street names")
	}
	return &Catalog{postcodes: postcodes, streets: streets}, nil
}

// Rows returns the postal records in catalog order. Callers must not modify the slice.
func (c *Catalog) Rows() []models.PostalRecord {
	return c.postcodes
}

// SampleStreet draws a street name uniformly.
func (c *Catalog) SampleStreet(rng *rand.Rand) string {
	return c.streets[rng.IntN(len(c.streets))].Name
}

// SampleRow draws a postal record uniformly.
func (c *Catalog) SampleRow(rng *rand.Rand) (int, models.PostalRecord) {
	i := rng.IntN(len(c.postcodes))
	return i, c.postcodes[i]
}
