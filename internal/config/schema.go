package config

import (
	"math"

	"address-datagen/internal/label"
)

// Kind is the scalar type of a generation parameter.
type Kind string

const (
	KindFloat  Kind = "float"
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// Param declares one generation parameter: its key under "generation", type, default and
// inclusive valid range. Min and Max are ignored for strings.
type Param struct {
	Key         string
	Kind        Kind
	Default     any
	Min         float64
	Max         float64
	Description string
}

func prob(key string, def float64, desc string) Param {
	return Param{Key: key, Kind: KindFloat, Default: def, Min: 0, Max: 1, Description: desc}
}

func weight(key string, def float64, desc string) Param {
	return Param{Key: key, Kind: KindFloat, Default: def, Min: 0, Max: math.Inf(1), Description: desc}
}

// Schema returns every generation parameter. Presence probabilities are the chance that a
// field is generated, not skipped.
func Schema() []Param {
	return []Param{
		// Level
		prob("level_prob", 0.1, "Probability that a level is generated"),
		prob("level_number_prefix_prob", 0.2, "Probability of the \"the\" prefix"),
		prob("level_number_prob", 1.0, "Probability of a level number"),
		prob("level_number_suffix_prob", 0.1, "Probability of an ordinal suffix on the level number"),
		prob("level_type_prob", 1.0, "Probability of a level type"),
		{Key: "level_number_max", Kind: KindInt, Default: 9, Min: 1, Max: 999, Description: "Largest level number"},

		// Flat
		prob("flat_prob", 0.99, "Probability that a flat is generated"),
		prob("flat_number_prob", 0.99, "Probability of a flat number"),
		prob("flat_number_suffix_prob", 0.1, "Probability of a suffix letter when a flat number exists"),
		prob("flat_type_prob", 0.3, "Probability of a flat type"),
		{Key: "flat_number_max", Kind: KindInt, Default: 600, Min: 1, Max: 100000, Description: "Largest flat number"},

		// House number
		prob("house_number_prob", 0.15, "Probability that a house number is generated"),
		prob("house_number_first_prob", 1.0, "Probability of the first house number"),
		prob("house_number_first_suffix_prob", 0.1, "Probability of a suffix letter on the first number"),
		prob("house_number_last_prob", 0.2, "Probability of a last house number (range end)"),
		prob("house_number_last_suffix_prob", 0.1, "Probability of a suffix letter on the last number"),
		{Key: "house_number_max", Kind: KindInt, Default: 600, Min: 2, Max: 100000, Description: "Largest house number"},

		// Street
		prob("street_suffix_prob", 0.1, "Probability of a directional street suffix"),
		prob("street_suffix_abbrev_prob", 0.5, "Probability that the street suffix is abbreviated"),
		prob("street_type_prob", 0.7, "Probability of a street type"),
		prob("street_type_abbrev_prob", 0.5, "Probability that the street type is abbreviated"),

		// General
		prob("county_prob", 0.25, "Probability of the county"),
		prob("state_prob", 0.1, "Probability of the state"),
		prob("postcode_prob", 0.7, "Probability of the postcode"),

		// Noise and separators
		prob("typo_prob", 0.02, "Probability that a field value receives a typo"),
		{Key: "field_separator", Kind: KindString, Default: " ", Description: "Separator between sub-fields of one field"},
		{Key: "house_number_range_separator", Kind: KindString, Default: "-", Description: "Separator between first and last house number"},
		prob("separator_per_join_prob", 0.5, "Probability that every join point of an address gets its own random separator"),
		{Key: "separator_min_length", Kind: KindInt, Default: 1, Min: 0, Max: 10, Description: "Shortest random separator"},
		{Key: "separator_max_length", Kind: KindInt, Default: 3, Min: 0, Max: 10, Description: "Longest random separator"},
		{Key: "separator_chars", Kind: KindString, Default: label.DefaultSeparatorChars, Description: "Characters mixed into random separators"},

		// Macro orderings
		weight("ordering_standard_weight", 0.55, "Weight of level, flat, house number, street, general"),
		weight("ordering_flat_first_weight", 0.2, "Weight of flat, level, house number, street, general"),
		weight("ordering_house_first_weight", 0.15, "Weight of house number, street, level, flat, general"),
		weight("ordering_general_first_weight", 0.1, "Weight of general, street, house number, level, flat"),
	}
}

// Generation holds the resolved generation parameters.
type Generation struct {
	LevelProb             float64 `mapstructure:"level_prob" yaml:"level_prob"`
	LevelNumberPrefixProb float64 `mapstructure:"level_number_prefix_prob" yaml:"level_number_prefix_prob"`
	LevelNumberProb       float64 `mapstructure:"level_number_prob" yaml:"level_number_prob"`
	LevelNumberSuffixProb float64 `mapstructure:"level_number_suffix_prob" yaml:"level_number_suffix_prob"`
	LevelTypeProb         float64 `mapstructure:"level_type_prob" yaml:"level_type_prob"`
	LevelNumberMax        int     `mapstructure:"level_number_max" yaml:"level_number_max"`

	FlatProb             float64 `mapstructure:"flat_prob" yaml:"flat_prob"`
	FlatNumberProb       float64 `mapstructure:"flat_number_prob" yaml:"flat_number_prob"`
	FlatNumberSuffixProb float64 `mapstructure:"flat_number_suffix_prob" yaml:"flat_number_suffix_prob"`
	FlatTypeProb         float64 `mapstructure:"flat_type_prob" yaml:"flat_type_prob"`
	FlatNumberMax        int     `mapstructure:"flat_number_max" yaml:"flat_number_max"`

	HouseNumberProb            float64 `mapstructure:"house_number_prob" yaml:"house_number_prob"`
	HouseNumberFirstProb       float64 `mapstructure:"house_number_first_prob" yaml:"house_number_first_prob"`
	HouseNumberFirstSuffixProb float64 `mapstructure:"house_number_first_suffix_prob" yaml:"house_number_first_suffix_prob"`
	HouseNumberLastProb        float64 `mapstructure:"house_number_last_prob" yaml:"house_number_last_prob"`
	HouseNumberLastSuffixProb  float64 `mapstructure:"house_number_last_suffix_prob" yaml:"house_number_last_suffix_prob"`
	HouseNumberMax             int     `mapstructure:"house_number_max" yaml:"house_number_max"`

	StreetSuffixProb       float64 `mapstructure:"street_suffix_prob" yaml:"street_suffix_prob"`
	StreetSuffixAbbrevProb float64 `mapstructure:"street_suffix_abbrev_prob" yaml:"street_suffix_abbrev_prob"`
	StreetTypeProb         float64 `mapstructure:"street_type_prob" yaml:"street_type_prob"`
	StreetTypeAbbrevProb   float64 `mapstructure:"street_type_abbrev_prob" yaml:"street_type_abbrev_prob"`

	CountyProb   float64 `mapstructure:"county_prob" yaml:"county_prob"`
	StateProb    float64 `mapstructure:"state_prob" yaml:"state_prob"`
	PostcodeProb float64 `mapstructure:"postcode_prob" yaml:"postcode_prob"`

	TypoProb                  float64 `mapstructure:"typo_prob" yaml:"typo_prob"`
	FieldSeparator            string  `mapstructure:"field_separator" yaml:"field_separator"`
	HouseNumberRangeSeparator string  `mapstructure:"house_number_range_separator" yaml:"house_number_range_separator"`
	SeparatorPerJoinProb      float64 `mapstructure:"separator_per_join_prob" yaml:"separator_per_join_prob"`
	SeparatorMinLength        int     `mapstructure:"separator_min_length" yaml:"separator_min_length"`
	SeparatorMaxLength        int     `mapstructure:"separator_max_length" yaml:"separator_max_length"`
	SeparatorChars            string  `mapstructure:"separator_chars" yaml:"separator_chars"`

	OrderingStandardWeight     float64 `mapstructure:"ordering_standard_weight" yaml:"ordering_standard_weight"`
	OrderingFlatFirstWeight    float64 `mapstructure:"ordering_flat_first_weight" yaml:"ordering_flat_first_weight"`
	OrderingHouseFirstWeight   float64 `mapstructure:"ordering_house_first_weight" yaml:"ordering_house_first_weight"`
	OrderingGeneralFirstWeight float64 `mapstructure:"ordering_general_first_weight" yaml:"ordering_general_first_weight"`
}

// OrderingWeights returns the macro ordering weights in ordering order.
func (g Generation) OrderingWeights() []float64 {
	return []float64{
		g.OrderingStandardWeight,
		g.OrderingFlatFirstWeight,
		g.OrderingHouseFirstWeight,
		g.OrderingGeneralFirstWeight,
	}
}
