package generator

import (
	"math/rand/v2"

	"address-datagen/internal/label"
	"address-datagen/internal/models"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Group is one of the five top-level parts of an address.
type Group int

const (
	GroupLevel Group = iota
	GroupFlat
	GroupHouseNumber
	GroupStreet
	GroupGeneral
)

// Orderings are the macro orderings, most probable first, matching the weight order of
// config.Generation.OrderingWeights.
var Orderings = [][]Group{
	{GroupLevel, GroupFlat, GroupHouseNumber, GroupStreet, GroupGeneral},
	{GroupFlat, GroupLevel, GroupHouseNumber, GroupStreet, GroupGeneral},
	{GroupHouseNumber, GroupStreet, GroupLevel, GroupFlat, GroupGeneral},
	{GroupGeneral, GroupStreet, GroupHouseNumber, GroupLevel, GroupFlat},
}

// Address generates one labelled address for row. The returned fragment is validated: every
// character carries exactly one label.
func (g *Generator) Address(rng *rand.Rand, row models.PostalRecord) (label.Fragment, error) {
	groups := make([]label.Fragment, len(Orderings[0]))

	level, err := g.Level(rng)
	if err != nil {
		return label.Fragment{}, errors.Wrap(err, "generator: level")
	}
	groups[GroupLevel] = level

	flat, err := g.Flat(rng)
	if err != nil {
		return label.Fragment{}, errors.Wrap(err, "generator: flat")
	}
	groups[GroupFlat] = flat

	house, err := g.HouseNumber(rng)
	if err != nil {
		return label.Fragment{}, errors.Wrap(err, "generator: house number")
	}
	if groups[GroupHouseNumber], err = house.Range(g.cfg.HouseNumberRangeSeparator); err != nil {
		return label.Fragment{}, errors.Wrap(err, "generator: house number range")
	}

	street, err := g.Street(rng)
	if err != nil {
		return label.Fragment{}, errors.Wrap(err, "generator: street")
	}
	groups[GroupStreet] = street

	general, err := g.General(rng, row)
	if err != nil {
		return label.Fragment{}, errors.Wrap(err, "generator: general")
	}
	groups[GroupGeneral] = general

	ordering := Orderings[g.drawOrdering(rng)]
	ordered := make([]label.Fragment, 0, len(ordering))
	for _, grp := range ordering {
		ordered = append(ordered, groups[grp])
	}

	address, err := label.Join(ordered, g.separator(rng))
	if err != nil {
		return label.Fragment{}, errors.Wrap(err, "generator: address")
	}
	if address.IsEmpty() {
		return label.Fragment{}, errors.AssertionFailedf("generator: no fields were generated for postcode %q", row.Postcode)
	}
	if err := address.Validate(); err != nil {
		return label.Fragment{}, errors.Wrap(err, "generator: address")
	}
	return address, nil
}

// drawOrdering picks a macro ordering index with the configured weights.
func (g *Generator) drawOrdering(rng *rand.Rand) int {
	return int(distuv.NewCategorical(g.orderings, rng).Rand())
}

// separator chooses between one separator for the whole address and a fresh one per join point.
func (g *Generator) separator(rng *rand.Rand) label.Separator {
	if !skip(rng, g.cfg.SeparatorPerJoinProb) {
		return g.separators.Func(rng)
	}
	return label.Fixed(g.separators.Draw(rng))
}
