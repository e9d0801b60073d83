// Package label implements the per-character field labelling used for address training data:
// the field enumeration, one-hot label matrices, the labeler and the fragment joiner.
package label

import (
	"github.com/cockroachdb/errors"
)

// Field identifies the address component a character belongs to.
// Blank is reserved for separators, whitespace and unlabelled text.
type Field int

const (
	Blank Field = iota
	LevelNumberPrefix
	LevelNumber
	LevelNumberSuffix
	LevelType
	FlatNumber
	FlatNumberSuffix
	FlatType
	HouseNumberFirst
	HouseNumberFirstSuffix
	HouseNumberLast
	HouseNumberLastSuffix
	StreetName
	StreetSuffixCode
	StreetTypeCode
	County
	State
	Postcode
)

// NumLabels is the width of every label matrix: the named fields plus Blank.
const NumLabels = int(Postcode) + 1

var fieldNames = [NumLabels]string{
	"blank",
	"level_number_prefix",
	"level_number",
	"level_number_suffix",
	"level_type",
	"flat_number",
	"flat_number_suffix",
	"flat_type",
	"house_number_first",
	"house_number_first_suffix",
	"house_number_last",
	"house_number_last_suffix",
	"street_name",
	"street_suffix_code",
	"street_type_code",
	"county",
	"state",
	"postcode",
}

// ErrUnknownField is returned by ParseField for names outside the enumeration.
var ErrUnknownField = errors.New("unknown field")

func (f Field) String() string {
	if f < 0 || int(f) >= NumLabels {
		return "invalid"
	}
	return fieldNames[f]
}

// Valid reports whether f is Blank or one of the named fields.
func (f Field) Valid() bool {
	return f >= 0 && int(f) < NumLabels
}

// ParseField resolves a snake_case field name.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return Blank, errors.Wrapf(ErrUnknownField, "label: %q", name)
}

// Fields returns the named fields in label order, without Blank.
func Fields() []Field {
	out := make([]Field, 0, NumLabels-1)
	for i := 1; i < NumLabels; i++ {
		out = append(out, Field(i))
	}
	return out
}
