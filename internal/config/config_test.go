package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGeneration(t *testing.T) {
	g := DefaultGeneration()

	assert.Equal(t, 0.1, g.LevelProb)
	assert.Equal(t, 9, g.LevelNumberMax)
	assert.Equal(t, 0.99, g.FlatProb)
	assert.Equal(t, 0.15, g.HouseNumberProb)
	assert.Equal(t, 600, g.HouseNumberMax)
	assert.Equal(t, " ", g.FieldSeparator)
	assert.Equal(t, `,./\  `, g.SeparatorChars)
	assert.Equal(t, []float64{0.55, 0.2, 0.15, 0.1}, g.OrderingWeights())
	assert.NoError(t, g.Validate())
}

func TestSchemaCoversGeneration(t *testing.T) {
	numbers := DefaultGeneration().numbers()
	seen := map[string]bool{}
	for _, p := range Schema() {
		assert.False(t, seen[p.Key], "duplicate key %s", p.Key)
		seen[p.Key] = true
		if p.Kind == KindString {
			continue
		}
		val, ok := numbers[p.Key]
		require.True(t, ok, "numeric key %s not validated", p.Key)
		assert.InDelta(t, p.Default, val, 1e-9, p.Key)
	}
	assert.Len(t, numbers, len(Schema())-3)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
		assert.Equal(t, SourceFile, cfg.Catalog.Source)
		assert.Equal(t, uint64(1), cfg.Seed)
		assert.GreaterOrEqual(t, cfg.Workers, 1)
		assert.Equal(t, DefaultGeneration(), cfg.Generation)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := "seed: 42\nworkers: 2\ncatalog:\n  source: postgres\ngeneration:\n  level_prob: 0.5\n  field_separator: \"\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Equal(t, 2, cfg.Workers)
		assert.Equal(t, SourcePostgres, cfg.Catalog.Source)
		assert.Equal(t, 0.5, cfg.Generation.LevelProb)
		assert.Equal(t, "", cfg.Generation.FieldSeparator)
		assert.Equal(t, 0.99, cfg.Generation.FlatProb)
	})

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("ADDRGEN_GENERATION_TYPO_PROB", "0.3")
		t.Setenv("ADDRGEN_SERVER_ADDRESS", ":9090")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 0.3, cfg.Generation.TypoProb)
		assert.Equal(t, ":9090", cfg.ServerAddress)
	})
}

func TestLoad_Overrides(t *testing.T) {
	tests := []struct {
		name        string
		overrides   map[string]string
		check       func(t *testing.T, cfg Config)
		expectError string
	}{
		{
			name:      "bare generation key",
			overrides: map[string]string{"house_number_prob": "0.9"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 0.9, cfg.Generation.HouseNumberProb)
			},
		},
		{
			name:      "qualified key",
			overrides: map[string]string{"generation.flat_number_max": "99", "workers": "3"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 99, cfg.Generation.FlatNumberMax)
				assert.Equal(t, 3, cfg.Workers)
			},
		},
		{
			name:        "probability out of range",
			overrides:   map[string]string{"level_prob": "1.5"},
			expectError: "generation.level_prob",
		},
		{
			name:        "negative probability",
			overrides:   map[string]string{"postcode_prob": "-0.1"},
			expectError: "generation.postcode_prob",
		},
		{
			name:        "separator bounds inverted",
			overrides:   map[string]string{"separator_min_length": "4", "separator_max_length": "2"},
			expectError: "separator_min_length=4 exceeds",
		},
		{
			name: "all ordering weights zero",
			overrides: map[string]string{
				"ordering_standard_weight":      "0",
				"ordering_flat_first_weight":    "0",
				"ordering_house_first_weight":   "0",
				"ordering_general_first_weight": "0",
			},
			expectError: "ordering weights",
		},
		{
			name:        "unknown key",
			overrides:   map[string]string{"country_prob": "0.5"},
			expectError: "unknown key",
		},
		{
			name:        "bad catalog source",
			overrides:   map[string]string{"catalog.source": "s3"},
			expectError: "catalog.source",
		},
		{
			name:        "not a number",
			overrides:   map[string]string{"typo_prob": "often"},
			expectError: "unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(Options{Overrides: tt.overrides})
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
