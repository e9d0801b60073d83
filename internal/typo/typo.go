// Package typo injects keyboard-style typing mistakes into field values.
package typo

import (
	"math/rand/v2"
	"unicode"
)

// Edit is a single kind of typing mistake.
type Edit int

const (
	Substitute Edit = iota
	Delete
	Duplicate
	Transpose
)

var edits = []Edit{Substitute, Delete, Duplicate, Transpose}

// qwerty lists the physical neighbours of each lowercase key.
var qwerty = map[rune]string{
	'1': "2q", '2': "13qw", '3': "24we", '4': "35er", '5': "46rt",
	'6': "57ty", '7': "68yu", '8': "79ui", '9': "80io", '0': "9op",
	'q': "12wa", 'w': "qe23as", 'e': "wr34sd", 'r': "et45df", 't': "ry56fg",
	'y': "tu67gh", 'u': "yi78hj", 'i': "uo89jk", 'o': "ip90kl", 'p': "o0l",
	'a': "qwsz", 's': "awedxz", 'd': "serfcx", 'f': "drtgvc", 'g': "ftyhbv",
	'h': "gyujnb", 'j': "huikmn", 'k': "jiolm", 'l': "kop",
	'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn",
	'n': "bhjm", 'm': "njk",
}

// Injector mutates a value with probability Prob by applying one random Edit.
// Values of a single character are only ever substituted, so a field never disappears.
type Injector struct {
	Prob float64
}

// New returns an Injector that mutates values with probability prob.
func New(prob float64) Injector {
	return Injector{Prob: prob}
}

// Mutate returns s, possibly with one typing mistake. The result may be shorter or longer.
func (in Injector) Mutate(rng *rand.Rand, s string) string {
	if s == "" || in.Prob <= 0 || rng.Float64() >= in.Prob {
		return s
	}
	runes := []rune(s)
	edit := edits[rng.IntN(len(edits))]
	if len(runes) == 1 {
		edit = Substitute
	}
	return string(Apply(rng, runes, edit))
}

// Apply performs edit at a random position of runes.
func Apply(rng *rand.Rand, runes []rune, edit Edit) []rune {
	if len(runes) == 0 {
		return runes
	}
	i := rng.IntN(len(runes))
	out := make([]rune, 0, len(runes)+1)
	switch edit {
	case Delete:
		out = append(out, runes[:i]...)
		out = append(out, runes[i+1:]...)
	case Duplicate:
		out = append(out, runes[:i+1]...)
		out = append(out, runes[i:]...)
	case Transpose:
		out = append(out, runes...)
		if len(out) > 1 {
			if i == len(out)-1 {
				i--
			}
			out[i], out[i+1] = out[i+1], out[i]
		}
	default:
		out = append(out, runes...)
		out[i] = neighbour(rng, out[i])
	}
	return out
}

func neighbour(rng *rand.Rand, r rune) rune {
	keys, ok := qwerty[unicode.ToLower(r)]
	if !ok {
		return r
	}
	pool := []rune(keys)
	n := pool[rng.IntN(len(pool))]
	if unicode.IsUpper(r) {
		return unicode.ToUpper(n)
	}
	return n
}
