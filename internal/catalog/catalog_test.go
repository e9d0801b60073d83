package catalog

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"address-datagen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPostcodes(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []models.PostalRecord
		expectError bool
	}{
		{
			name:  "standard columns",
			input: "county,state,postcode\nEssex,England,CM1 1AA\nKent,England,ME1 2BB\n",
			expected: []models.PostalRecord{
				{ID: 1, County: "Essex", State: "England", Postcode: "CM1 1AA"},
				{ID: 2, County: "Kent", State: "England", Postcode: "ME1 2BB"},
			},
		},
		{
			name:  "reordered and extra columns",
			input: "postcode,lat,County,state\n6XB IOR,51.1,Essex,England\n",
			expected: []models.PostalRecord{
				{ID: 1, County: "Essex", State: "England", Postcode: "6XB IOR"},
			},
		},
		{
			name:        "missing column",
			input:       "county,postcode\nEssex,CM1 1AA\n",
			expectError: true,
		},
		{
			name:        "short row",
			input:       "county,state,postcode\nEssex,England\n",
			expectError: true,
		},
		{
			name:        "no header",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ReadPostcodes(strings.NewReader(tt.input))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReadStreets(t *testing.T) {
	input := "ind\tstreet\n0\tAbbey Road\n1\t \n2\tAcacia Avenue\n3\tAbbey Road\n4\tO\"Brien's Way\n"

	result, err := ReadStreets(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []models.Street{
		{ID: 0, Name: "Abbey Road"},
		{ID: 1, Name: "Acacia Avenue"},
		{ID: 2, Name: "O\"Brien's Way"},
	}, result)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	postcodes := filepath.Join(dir, "postcodes.csv")
	streets := filepath.Join(dir, "streets.tsv")
	require.NoError(t, os.WriteFile(postcodes, []byte("county,state,postcode\nEssex,England,CM1 1AA\n"), 0o644))
	require.NoError(t, os.WriteFile(streets, []byte("ind\tstreet\n0\tAbbey Road\n"), 0o644))

	p, err := LoadPostcodes(postcodes)
	require.NoError(t, err)
	s, err := LoadStreets(streets)
	require.NoError(t, err)

	cat, err := New(p, s)
	require.NoError(t, err)
	assert.Len(t, cat.Rows(), 1)
	assert.Equal(t, "Abbey Road", cat.SampleStreet(rand.New(rand.NewPCG(1, 1))))

	_, err = LoadPostcodes(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestNew_EmptyCatalog(t *testing.T) {
	_, err := New(nil, []models.Street{{Name: "Abbey Road"}})
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = New([]models.PostalRecord{{Postcode: "CM1 1AA"}}, nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCatalog_SampleRow(t *testing.T) {
	rows := []models.PostalRecord{{ID: 1, Postcode: "A"}, {ID: 2, Postcode: "B"}, {ID: 3, Postcode: "C"}}
	cat, err := New(rows, []models.Street{{Name: "Abbey Road"}})
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(2, 3))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		idx, row := cat.SampleRow(rng)
		assert.Equal(t, rows[idx], row)
		seen[idx] = true
	}
	assert.Len(t, seen, 3)
}
