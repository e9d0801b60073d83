package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"

	"address-datagen/internal/models"

	"github.com/cockroachdb/errors"
)

// LoadPostcodes reads a CSV file whose header names the county, state and postcode columns.
func LoadPostcodes(path string) ([]models.PostalRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: failed to open postcode file")
	}
	defer file.Close()

	return ReadPostcodes(file)
}

// ReadPostcodes parses postcode CSV from r. Column order is free and extra columns are ignored.
func ReadPostcodes(r io.Reader) ([]models.PostalRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "catalog: failed to read postcode header")
	}
	cols, err := columns(header, "county", "state", "postcode")
	if err != nil {
		return nil, err
	}

	var records []models.PostalRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: failed to read postcode line %d", line)
		}
		rec := models.PostalRecord{ID: len(records) + 1}
		fields := []*string{&rec.County, &rec.State, &rec.Postcode}
		for i, col := range cols {
			if col >= len(row) {
				return nil, errors.Newf("catalog: postcode line %d has %d columns, expected at least %d", line, len(row), col+1)
			}
			*fields[i] = strings.TrimSpace(row[col])
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadStreets reads the tab separated street list written by the street crawl.
func LoadStreets(path string) ([]models.Street, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: failed to open street file")
	}
	defer file.Close()

	return ReadStreets(file)
}

// ReadStreets parses "ind<TAB>street" rows from r. Blank names are dropped, duplicates removed
// and the result sorted by name, then re-indexed from 0.
func ReadStreets(r io.Reader) ([]models.Street, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "catalog: failed to read street header")
	}
	cols, err := columns(header, "street")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: failed to read street line %d", line)
		}
		if cols[0] >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[cols[0]])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	streets := make([]models.Street, len(names))
	for i, name := range names {
		streets[i] = models.Street{ID: i, Name: name}
	}
	return streets, nil
}

func columns(header []string, names ...string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	out := make([]int, len(names))
	for i, n := range names {
		idx, ok := pos[n]
		if !ok {
			return nil, errors.Newf("catalog: missing column %q in header %v", n, header)
		}
		out[i] = idx
	}
	return out, nil
}
