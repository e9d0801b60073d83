// Package generator renders random, fully labelled addresses from catalog rows.
//
// Every field generator first draws an immutable *Parts value holding all of its random
// decisions and then renders it into label fragments. All randomness comes from the
// *rand.Rand passed in, so a seeded source replays the same output.
package generator

import (
	"math/rand/v2"

	"address-datagen/internal/config"
	"address-datagen/internal/label"

	"github.com/cockroachdb/errors"
)

// StreetSampler draws street names from the street catalog.
type StreetSampler interface {
	SampleStreet(rng *rand.Rand) string
}

// Generator holds the read-only state shared by all generated addresses.
// It is safe for concurrent use as long as each goroutine brings its own *rand.Rand.
type Generator struct {
	cfg        config.Generation
	streets    StreetSampler
	labeler    label.Labeler
	separators label.SeparatorPolicy
	orderings  []float64
}

// New validates cfg and builds a Generator. typo may be nil to disable mutations.
func New(cfg config.Generation, streets StreetSampler, typo label.Mutator) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "generator")
	}
	if streets == nil {
		return nil, errors.New("generator: a street sampler is required")
	}
	return &Generator{
		cfg:     cfg,
		streets: streets,
		labeler: label.Labeler{Typo: typo},
		separators: label.SeparatorPolicy{
			MinLength: cfg.SeparatorMinLength,
			MaxLength: cfg.SeparatorMaxLength,
			Chars:     cfg.SeparatorChars,
		},
		orderings: cfg.OrderingWeights(),
	}, nil
}

// skip reports whether an optional element with presence probability p is left out.
func skip(rng *rand.Rand, p float64) bool {
	return rng.Float64() >= p
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// between draws uniformly from [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// permutations3 lists every ordering of three slots.
var permutations3 = [][]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// value labels a field value. Field values are subject to typos.
func (g *Generator) value(rng *rand.Rand, text string, f label.Field) label.Fragment {
	return g.labeler.Label(rng, text, f, true)
}

// arrange joins slots in the given order with the field separator.
func (g *Generator) arrange(slots []label.Fragment, order []int) (label.Fragment, error) {
	ordered := make([]label.Fragment, 0, len(order))
	for _, i := range order {
		ordered = append(ordered, slots[i])
	}
	return label.Join(ordered, label.Fixed(g.cfg.FieldSeparator))
}

// fuse joins a value and its suffix with no separator; each keeps its own label.
func fuse(value, suffix label.Fragment) (label.Fragment, error) {
	return label.Join([]label.Fragment{value, suffix}, label.Fixed(""))
}
