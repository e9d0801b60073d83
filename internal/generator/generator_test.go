package generator

import (
	"math/rand/v2"
	"strings"
	"testing"

	"address-datagen/internal/catalog"
	"address-datagen/internal/config"
	"address-datagen/internal/label"
	"address-datagen/internal/models"
	"address-datagen/internal/typo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRow = models.PostalRecord{ID: 1, County: "Essex", State: "England", Postcode: "6XB IOR"}

func newTestGenerator(t *testing.T, mutate func(*config.Generation), mutator label.Mutator) *Generator {
	t.Helper()
	cfg := config.DefaultGeneration()
	if mutate != nil {
		mutate(&cfg)
	}
	cat, err := catalog.New(
		[]models.PostalRecord{testRow},
		[]models.Street{{ID: 0, Name: "Abbey"}, {ID: 1, Name: "Mill Lane End"}},
	)
	require.NoError(t, err)
	g, err := New(cfg, cat, mutator)
	require.NoError(t, err)
	return g
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// labels builds an expected label sequence from (field, count) pairs.
func labels(pairs ...any) []int {
	var out []int
	for i := 0; i < len(pairs); i += 2 {
		f := pairs[i].(label.Field)
		for n := 0; n < pairs[i+1].(int); n++ {
			out = append(out, int(f))
		}
	}
	return out
}

func TestNew(t *testing.T) {
	cat, err := catalog.New([]models.PostalRecord{testRow}, []models.Street{{Name: "Abbey"}})
	require.NoError(t, err)

	t.Run("invalid probability", func(t *testing.T) {
		cfg := config.DefaultGeneration()
		cfg.LevelProb = 1.5
		_, err := New(cfg, cat, nil)
		assert.ErrorContains(t, err, "level_prob")
	})

	t.Run("missing street sampler", func(t *testing.T) {
		_, err := New(config.DefaultGeneration(), nil, nil)
		assert.Error(t, err)
	})
}

func TestAddress_Properties(t *testing.T) {
	g := newTestGenerator(t, nil, typo.New(0.02))

	for seed := uint64(0); seed < 500; seed++ {
		address, err := g.Address(seeded(seed), testRow)
		require.NoError(t, err, "seed %d", seed)
		require.NotEmpty(t, address.Text, "seed %d", seed)
		assert.Equal(t, address.Len(), address.Labels.Rows(), "seed %d: %q", seed, address.Text)
		assert.NoError(t, address.Labels.Validate(), "seed %d: %q", seed, address.Text)

		rows, cols := address.Labels.Dims()
		assert.Equal(t, label.NumLabels, cols)
		assert.Positive(t, rows)
	}
}

func TestAddress_EveryFieldCanAppear(t *testing.T) {
	g := newTestGenerator(t, func(cfg *config.Generation) {
		cfg.LevelProb = 0.5
		cfg.LevelNumberSuffixProb = 0.5
		cfg.HouseNumberProb = 0.5
		cfg.HouseNumberFirstSuffixProb = 0.5
		cfg.HouseNumberLastProb = 0.5
		cfg.HouseNumberLastSuffixProb = 0.5
		cfg.StreetSuffixProb = 0.5
		cfg.FlatNumberSuffixProb = 0.5
		cfg.FlatNumberProb = 0.5
		cfg.StateProb = 0.5
	}, nil)

	seen := make(map[label.Field]bool)
	for seed := uint64(0); seed < 2000; seed++ {
		address, err := g.Address(seeded(seed), testRow)
		require.NoError(t, err)
		for _, idx := range address.Labels.Indices() {
			seen[label.Field(idx)] = true
		}
	}
	for _, f := range label.Fields() {
		assert.True(t, seen[f], "field %s never generated", f)
	}
	assert.True(t, seen[label.Blank])
}

func TestAddress_Deterministic(t *testing.T) {
	g := newTestGenerator(t, nil, typo.New(0.5))

	for seed := uint64(0); seed < 50; seed++ {
		a, err := g.Address(seeded(seed), testRow)
		require.NoError(t, err)
		b, err := g.Address(seeded(seed), testRow)
		require.NoError(t, err)
		assert.Equal(t, a.Text, b.Text)
		assert.True(t, a.Labels.Equal(b.Labels))
	}
}

func TestAddress_GeneralFirstOrdering(t *testing.T) {
	g := newTestGenerator(t, func(cfg *config.Generation) {
		cfg.LevelProb = 0
		cfg.FlatProb = 0
		cfg.HouseNumberProb = 0
		cfg.StreetSuffixProb = 0
		cfg.StreetTypeProb = 0
		cfg.CountyProb = 1
		cfg.StateProb = 0
		cfg.PostcodeProb = 0
		cfg.SeparatorMinLength = 1
		cfg.SeparatorMaxLength = 1
		cfg.SeparatorChars = ","
		cfg.OrderingStandardWeight = 0
		cfg.OrderingFlatFirstWeight = 0
		cfg.OrderingHouseFirstWeight = 0
		cfg.OrderingGeneralFirstWeight = 1
	}, nil)

	for seed := uint64(0); seed < 20; seed++ {
		address, err := g.Address(seeded(seed), testRow)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(address.Text, "Essex,"), address.Text)
		assert.Equal(t, label.County, address.Labels.Field(0))
		assert.Equal(t, label.Blank, address.Labels.Field(5))
		assert.Equal(t, label.StreetName, address.Labels.Field(6))
	}
}

func TestDrawOrdering_FollowsWeights(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	rng := seeded(7)

	const draws = 20000
	counts := make([]int, len(Orderings))
	for i := 0; i < draws; i++ {
		counts[g.drawOrdering(rng)]++
	}
	for i, w := range g.cfg.OrderingWeights() {
		assert.InDelta(t, w, float64(counts[i])/draws, 0.03, "ordering %d", i)
	}
}

func TestDrawOrdering_SeededAndZeroWeights(t *testing.T) {
	g := newTestGenerator(t, func(cfg *config.Generation) {
		cfg.OrderingStandardWeight = 0
		cfg.OrderingFlatFirstWeight = 1
		cfg.OrderingHouseFirstWeight = 0
		cfg.OrderingGeneralFirstWeight = 3
	}, nil)

	a, b := seeded(11), seeded(11)
	for i := 0; i < 5000; i++ {
		got := g.drawOrdering(a)
		require.Equal(t, got, g.drawOrdering(b), "draw %d", i)
		assert.Contains(t, []int{1, 3}, got)
	}
}

func TestDrawFlat_SuffixWhenNumberAbsent(t *testing.T) {
	g := newTestGenerator(t, func(cfg *config.Generation) {
		cfg.FlatProb = 1
		cfg.FlatNumberProb = 0
	}, nil)

	for seed := uint64(0); seed < 200; seed++ {
		p := g.DrawFlat(seeded(seed))
		require.NotNil(t, p)
		assert.Zero(t, p.Number)
		require.Len(t, p.Suffix, 1)
		assert.Contains(t, allLetters, p.Suffix)
	}
}

func TestDrawFlat_SuffixWithNumber(t *testing.T) {
	g := newTestGenerator(t, func(cfg *config.Generation) {
		cfg.FlatProb = 1
		cfg.FlatNumberProb = 1
		cfg.FlatNumberSuffixProb = 1
	}, nil)

	for seed := uint64(0); seed < 200; seed++ {
		p := g.DrawFlat(seeded(seed))
		require.NotNil(t, p)
		assert.GreaterOrEqual(t, p.Number, 1)
		assert.LessOrEqual(t, p.Number, 600)
		assert.Contains(t, flatLetters, p.Suffix)
	}
}

func TestDrawLastNumber(t *testing.T) {
	g := newTestGenerator(t, nil, nil)

	tests := []struct {
		name     string
		first    int
		lo       int
		hi       int
		expectOK bool
	}{
		{name: "after a first number", first: 35, lo: 36, hi: 600, expectOK: true},
		{name: "without a first number", first: 0, lo: 1, hi: 600, expectOK: true},
		{name: "one below max", first: 599, lo: 600, hi: 600, expectOK: true},
		{name: "first is max", first: 600, expectOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(0); seed < 200; seed++ {
				last, ok := g.DrawLastNumber(seeded(seed), tt.first)
				require.Equal(t, tt.expectOK, ok)
				if !ok {
					continue
				}
				assert.GreaterOrEqual(t, last, tt.lo)
				assert.LessOrEqual(t, last, tt.hi)
			}
		})
	}
}

func TestDrawHouseNumber_RangeIncreases(t *testing.T) {
	g := newTestGenerator(t, func(cfg *config.Generation) {
		cfg.HouseNumberProb = 1
		cfg.HouseNumberLastProb = 1
	}, nil)

	for seed := uint64(0); seed < 300; seed++ {
		p := g.DrawHouseNumber(seeded(seed))
		require.NotNil(t, p)
		if p.First > 0 && p.Last > 0 {
			assert.Greater(t, p.Last, p.First)
		}
	}
}

func TestRenderLevel(t *testing.T) {
	g := newTestGenerator(t, nil, nil)

	tests := []struct {
		name         string
		parts        *LevelParts
		expectedText string
		expected     []int
	}{
		{
			name:         "skipped",
			parts:        nil,
			expectedText: "",
			expected:     []int{},
		},
		{
			name:         "ordinal fused with number",
			parts:        &LevelParts{Number: 1, Suffix: "st", Type: "floor", Order: 0},
			expectedText: "1st floor",
			expected:     labels(label.LevelNumber, 1, label.LevelNumberSuffix, 2, label.Blank, 1, label.LevelType, 5),
		},
		{
			name:         "type first with prefix",
			parts:        &LevelParts{Prefix: "the", Number: 2, Type: "level", Order: 1},
			expectedText: "level the 2",
			expected: labels(label.LevelType, 5, label.Blank, 1, label.LevelNumberPrefix, 3, label.Blank, 1,
				label.LevelNumber, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.RenderLevel(seeded(1), tt.parts)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, got.Text)
			assert.Equal(t, tt.expected, got.Labels.Indices())
		})
	}
}

func TestRenderFlat(t *testing.T) {
	g := newTestGenerator(t, nil, nil)

	tests := []struct {
		name         string
		parts        *FlatParts
		expectedText string
		expected     []int
	}{
		{
			name:         "number, suffix and type",
			parts:        &FlatParts{Number: 1, Suffix: "C", Type: "apartment", Order: 0},
			expectedText: "1 C apartment",
			expected: labels(label.FlatNumber, 1, label.Blank, 1, label.FlatNumberSuffix, 1, label.Blank, 1,
				label.FlatType, 9),
		},
		{
			name:         "type first",
			parts:        &FlatParts{Number: 12, Type: "flat", Order: 1},
			expectedText: "flat 12",
			expected:     labels(label.FlatType, 4, label.Blank, 1, label.FlatNumber, 2),
		},
		{
			name:         "type first keeps suffix after number",
			parts:        &FlatParts{Number: 4, Suffix: "B", Type: "unit", Order: 1},
			expectedText: "unit 4 B",
			expected: labels(label.FlatType, 4, label.Blank, 1, label.FlatNumber, 1, label.Blank, 1,
				label.FlatNumberSuffix, 1),
		},
		{
			name:         "suffix only",
			parts:        &FlatParts{Suffix: "Q"},
			expectedText: "Q",
			expected:     labels(label.FlatNumberSuffix, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.RenderFlat(seeded(1), tt.parts)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, got.Text)
			assert.Equal(t, tt.expected, got.Labels.Indices())
		})
	}
}

func TestHouseNumberRange(t *testing.T) {
	g := newTestGenerator(t, nil, nil)

	tests := []struct {
		name         string
		parts        *HouseParts
		expectedText string
		expected     []int
	}{
		{
			name:         "range with suffixes",
			parts:        &HouseParts{First: 35, FirstSuffix: "D", Last: 37, LastSuffix: "D"},
			expectedText: "35D-37D",
			expected: labels(label.HouseNumberFirst, 2, label.HouseNumberFirstSuffix, 1, label.Blank, 1,
				label.HouseNumberLast, 2, label.HouseNumberLastSuffix, 1),
		},
		{
			name:         "first only",
			parts:        &HouseParts{First: 8},
			expectedText: "8",
			expected:     labels(label.HouseNumberFirst, 1),
		},
		{
			name:         "last only",
			parts:        &HouseParts{Last: 9, LastSuffix: "a"},
			expectedText: "9a",
			expected:     labels(label.HouseNumberLast, 1, label.HouseNumberLastSuffix, 1),
		},
		{
			name:         "skipped",
			parts:        nil,
			expectedText: "",
			expected:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			house, err := g.RenderHouseNumber(seeded(1), tt.parts)
			require.NoError(t, err)
			got, err := house.Range("-")
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, got.Text)
			assert.Equal(t, tt.expected, got.Labels.Indices())
		})
	}
}

func TestRenderStreet(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	parts := &StreetParts{Name: "Abbey", Suffix: "North", Type: "Road"}

	expectedText := []string{
		"Abbey North Road",
		"Abbey Road North",
		"North Abbey Road",
		"North Road Abbey",
		"Road Abbey North",
		"Road North Abbey",
	}
	for order, want := range expectedText {
		p := *parts
		p.Order = order
		got, err := g.RenderStreet(seeded(1), &p)
		require.NoError(t, err)
		assert.Equal(t, want, got.Text)
		assert.NoError(t, got.Validate())
	}

	got, err := g.RenderStreet(seeded(1), &StreetParts{Name: "Abbey", Type: "Rd"})
	require.NoError(t, err)
	assert.Equal(t, "Abbey Rd", got.Text)
	assert.Equal(t, labels(label.StreetName, 5, label.Blank, 1, label.StreetTypeCode, 2), got.Labels.Indices())
}

func TestDrawStreet_Abbreviation(t *testing.T) {
	g := newTestGenerator(t, func(cfg *config.Generation) {
		cfg.StreetTypeProb = 1
		cfg.StreetTypeAbbrevProb = 1
		cfg.StreetSuffixProb = 0
	}, nil)

	for seed := uint64(0); seed < 50; seed++ {
		p := g.DrawStreet(seeded(seed))
		assert.Contains(t, []string{"Abbey", "Mill Lane End"}, p.Name)
		assert.Empty(t, p.Suffix)
		assert.NotEmpty(t, p.Type)
		assert.LessOrEqual(t, len(p.Type), 4, "abbreviation expected, got %q", p.Type)
	}
}

func TestRenderGeneral(t *testing.T) {
	g := newTestGenerator(t, nil, nil)

	got, err := g.RenderGeneral(seeded(1), &GeneralParts{County: "Essex", Postcode: "6XB IOR", Order: 0})
	require.NoError(t, err)
	assert.Equal(t, "Essex 6XB IOR", got.Text)
	assert.Equal(t, labels(label.County, 5, label.Blank, 1, label.Postcode, 7), got.Labels.Indices())

	got, err = g.RenderGeneral(seeded(1), &GeneralParts{})
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.Zero(t, got.Labels.Rows())
}
