package generator

import (
	"math/rand/v2"
	"strconv"

	"address-datagen/internal/label"
)

// HouseParts records the decisions for a house number or range such as "35D-37D".
// When both numbers are present Last is greater than First.
type HouseParts struct {
	First       int // 0 when absent
	FirstSuffix string
	Last        int // 0 when absent
	LastSuffix  string
}

// HouseNumber is a rendered house number split into its two blocks, so the assembler decides
// how a range is written. Either block may be empty.
type HouseNumber struct {
	First label.Fragment
	Last  label.Fragment
}

// DrawHouseNumber decides every part of a house number, or returns nil when it is skipped.
func (g *Generator) DrawHouseNumber(rng *rand.Rand) *HouseParts {
	if skip(rng, g.cfg.HouseNumberProb) {
		return nil
	}
	p := &HouseParts{}
	if !skip(rng, g.cfg.HouseNumberFirstProb) {
		p.First = between(rng, 1, g.cfg.HouseNumberMax)
		if !skip(rng, g.cfg.HouseNumberFirstSuffixProb) {
			p.FirstSuffix = pick(rng, allLetters)
		}
	}
	if !skip(rng, g.cfg.HouseNumberLastProb) {
		if last, ok := g.DrawLastNumber(rng, p.First); ok {
			p.Last = last
			if !skip(rng, g.cfg.HouseNumberLastSuffixProb) {
				p.LastSuffix = pick(rng, allLetters)
			}
		}
	}
	return p
}

// DrawLastNumber draws the end of a house number range uniformly from (first, max].
// first is 0 when there is no first number. It reports false when first is already the
// largest house number, as no value can follow it.
func (g *Generator) DrawLastNumber(rng *rand.Rand, first int) (int, bool) {
	if first < 0 {
		first = 0
	}
	if first >= g.cfg.HouseNumberMax {
		return 0, false
	}
	return between(rng, first+1, g.cfg.HouseNumberMax), true
}

// RenderHouseNumber labels both blocks, fusing each number with its suffix.
func (g *Generator) RenderHouseNumber(rng *rand.Rand, p *HouseParts) (HouseNumber, error) {
	if p == nil {
		return HouseNumber{First: label.Fragment{Labels: label.Empty()}, Last: label.Fragment{Labels: label.Empty()}}, nil
	}
	first, err := g.numberBlock(rng, p.First, p.FirstSuffix, label.HouseNumberFirst, label.HouseNumberFirstSuffix)
	if err != nil {
		return HouseNumber{}, err
	}
	last, err := g.numberBlock(rng, p.Last, p.LastSuffix, label.HouseNumberLast, label.HouseNumberLastSuffix)
	if err != nil {
		return HouseNumber{}, err
	}
	return HouseNumber{First: first, Last: last}, nil
}

func (g *Generator) numberBlock(rng *rand.Rand, n int, suffix string, nf, sf label.Field) (label.Fragment, error) {
	if n <= 0 {
		return label.Fragment{Labels: label.Empty()}, nil
	}
	return fuse(g.value(rng, strconv.Itoa(n), nf), g.value(rng, suffix, sf))
}

// HouseNumber draws and renders a house number.
func (g *Generator) HouseNumber(rng *rand.Rand) (HouseNumber, error) {
	return g.RenderHouseNumber(rng, g.DrawHouseNumber(rng))
}

// Range joins both blocks with sep, e.g. "35D" + "-" + "37D".
func (h HouseNumber) Range(sep string) (label.Fragment, error) {
	return label.Join([]label.Fragment{h.First, h.Last}, label.Fixed(sep))
}
