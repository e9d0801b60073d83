package generator

import (
	"math/rand/v2"

	"address-datagen/internal/label"
	"address-datagen/internal/lookup"
)

// StreetParts records the decisions for a street such as "Abbey North Road".
type StreetParts struct {
	Name   string
	Suffix string // directional or positional qualifier, possibly abbreviated
	Type   string // street type, possibly abbreviated
	Order  int    // index into permutations3 over [name, suffix, type]
}

// DrawStreet decides every part of a street. The street name is always present.
func (g *Generator) DrawStreet(rng *rand.Rand) *StreetParts {
	p := &StreetParts{Name: g.streets.SampleStreet(rng)}
	if !skip(rng, g.cfg.StreetSuffixProb) {
		p.Suffix = g.abbreviate(rng, pick(rng, lookup.StreetSuffixes), g.cfg.StreetSuffixAbbrevProb)
	}
	if !skip(rng, g.cfg.StreetTypeProb) {
		p.Type = g.abbreviate(rng, pick(rng, lookup.StreetTypes), g.cfg.StreetTypeAbbrevProb)
	}
	p.Order = rng.IntN(len(permutations3))
	return p
}

func (g *Generator) abbreviate(rng *rand.Rand, w lookup.Abbreviated, p float64) string {
	if skip(rng, p) {
		return w.Full
	}
	return w.Short
}

// RenderStreet labels and joins the parts.
func (g *Generator) RenderStreet(rng *rand.Rand, p *StreetParts) (label.Fragment, error) {
	slots := []label.Fragment{
		g.value(rng, p.Name, label.StreetName),
		g.value(rng, p.Suffix, label.StreetSuffixCode),
		g.value(rng, p.Type, label.StreetTypeCode),
	}
	return g.arrange(slots, permutations3[p.Order])
}

// Street draws and renders a street.
func (g *Generator) Street(rng *rand.Rand) (label.Fragment, error) {
	return g.RenderStreet(rng, g.DrawStreet(rng))
}
