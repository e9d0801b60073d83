package generator

import (
	"math/rand/v2"
	"strconv"

	"address-datagen/internal/label"
	"address-datagen/internal/lookup"
)

// LevelParts records the decisions for a level such as "the 1st floor".
type LevelParts struct {
	Prefix string // "the" or empty
	Number int    // 0 when absent
	Suffix string // ordinal ending, only with a number
	Type   string
	Order  int // index into levelOrders
}

// levelOrders: [prefix, number+suffix, type] or [type, prefix, number+suffix].
var levelOrders = [][]int{{0, 1, 2}, {2, 0, 1}}

// DrawLevel decides every part of a level, or returns nil when the level is skipped.
func (g *Generator) DrawLevel(rng *rand.Rand) *LevelParts {
	if skip(rng, g.cfg.LevelProb) {
		return nil
	}
	p := &LevelParts{}
	if !skip(rng, g.cfg.LevelNumberPrefixProb) {
		p.Prefix = "the"
	}
	if !skip(rng, g.cfg.LevelNumberProb) {
		p.Number = between(rng, 1, g.cfg.LevelNumberMax)
		if !skip(rng, g.cfg.LevelNumberSuffixProb) {
			p.Suffix = lookup.Ordinal(p.Number)
		}
	}
	if !skip(rng, g.cfg.LevelTypeProb) {
		p.Type = pick(rng, lookup.LevelTypes)
	}
	p.Order = rng.IntN(len(levelOrders))
	return p
}

// RenderLevel labels and joins the parts. A nil level renders as an empty fragment.
func (g *Generator) RenderLevel(rng *rand.Rand, p *LevelParts) (label.Fragment, error) {
	if p == nil {
		return label.Fragment{Labels: label.Empty()}, nil
	}
	var number label.Fragment
	if p.Number > 0 {
		number = g.value(rng, strconv.Itoa(p.Number), label.LevelNumber)
		if p.Suffix != "" {
			var err error
			number, err = fuse(number, g.value(rng, p.Suffix, label.LevelNumberSuffix))
			if err != nil {
				return label.Fragment{}, err
			}
		}
	}
	slots := []label.Fragment{
		g.value(rng, p.Prefix, label.LevelNumberPrefix),
		number,
		g.value(rng, p.Type, label.LevelType),
	}
	return g.arrange(slots, levelOrders[p.Order])
}

// Level draws and renders a level.
func (g *Generator) Level(rng *rand.Rand) (label.Fragment, error) {
	return g.RenderLevel(rng, g.DrawLevel(rng))
}
