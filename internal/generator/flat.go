package generator

import (
	"math/rand/v2"
	"strconv"

	"address-datagen/internal/label"
	"address-datagen/internal/lookup"
)

var (
	allLetters  = lookup.Letters(26)
	flatLetters = lookup.Letters(10)
)

// FlatParts records the decisions for a flat such as "1 C apartment".
// Suffix is always set when Number is absent.
type FlatParts struct {
	Number int // 0 when absent
	Suffix string
	Type   string
	Order  int // index into flatOrders
}

// flatOrders: [number, suffix, type] or [type, number, suffix].
var flatOrders = [][]int{{0, 1, 2}, {2, 0, 1}}

// DrawFlat decides every part of a flat, or returns nil when the flat is skipped.
func (g *Generator) DrawFlat(rng *rand.Rand) *FlatParts {
	if skip(rng, g.cfg.FlatProb) {
		return nil
	}
	p := &FlatParts{}
	if !skip(rng, g.cfg.FlatNumberProb) {
		p.Number = between(rng, 1, g.cfg.FlatNumberMax)
		if !skip(rng, g.cfg.FlatNumberSuffixProb) {
			p.Suffix = pick(rng, flatLetters)
		}
	} else {
		// Without a number the suffix letter is what identifies the flat.
		p.Suffix = pick(rng, allLetters)
	}
	if !skip(rng, g.cfg.FlatTypeProb) {
		p.Type = pick(rng, lookup.FlatTypes)
	}
	p.Order = rng.IntN(len(flatOrders))
	return p
}

// RenderFlat labels and joins the parts. A nil flat renders as an empty fragment.
func (g *Generator) RenderFlat(rng *rand.Rand, p *FlatParts) (label.Fragment, error) {
	if p == nil {
		return label.Fragment{Labels: label.Empty()}, nil
	}
	var number label.Fragment
	if p.Number > 0 {
		number = g.value(rng, strconv.Itoa(p.Number), label.FlatNumber)
	}
	slots := []label.Fragment{
		number,
		g.value(rng, p.Suffix, label.FlatNumberSuffix),
		g.value(rng, p.Type, label.FlatType),
	}
	return g.arrange(slots, flatOrders[p.Order])
}

// Flat draws and renders a flat.
func (g *Generator) Flat(rng *rand.Rand) (label.Fragment, error) {
	return g.RenderFlat(rng, g.DrawFlat(rng))
}
