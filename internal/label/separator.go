package label

import (
	"math/rand/v2"
	"strings"
)

// DefaultSeparatorChars are the punctuation marks mixed into random separators.
// The two trailing spaces make a plain space the most likely choice.
const DefaultSeparatorChars = `,./\  `

// SeparatorPolicy describes how random separators are drawn.
type SeparatorPolicy struct {
	MinLength int
	MaxLength int
	Chars     string
}

// Draw returns a single random separator.
func (p SeparatorPolicy) Draw(rng *rand.Rand) string {
	return RandomSeparator(rng, p.MinLength, p.MaxLength, p.Chars)
}

// Func returns a Separator that draws a fresh separator on every call.
func (p SeparatorPolicy) Func(rng *rand.Rand) Separator {
	return func() string { return p.Draw(rng) }
}

// RandomSeparator builds a run of spaces with a length in [minLen, maxLen] and replaces one
// random position with a random character from chars.
func RandomSeparator(rng *rand.Rand, minLen, maxLen int, chars string) string {
	if maxLen < minLen {
		maxLen = minLen
	}
	n := minLen + rng.IntN(maxLen-minLen+1)
	if n <= 0 {
		return ""
	}
	out := []rune(strings.Repeat(" ", n))
	if pool := []rune(chars); len(pool) > 0 {
		out[rng.IntN(n)] = pool[rng.IntN(len(pool))]
	}
	return string(out)
}
