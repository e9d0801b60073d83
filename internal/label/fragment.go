package label

import (
	"math/rand/v2"
	"unicode/utf8"
)

// Fragment is a piece of address text together with one label row per character.
type Fragment struct {
	Text   string
	Labels Matrix
}

// Len returns the number of characters in the fragment.
func (f Fragment) Len() int {
	return utf8.RuneCountInString(f.Text)
}

// IsEmpty reports whether the fragment carries no text.
func (f Fragment) IsEmpty() bool {
	return f.Text == ""
}

// Validate checks text/label alignment and the one-hot property.
func (f Fragment) Validate() error {
	if n := f.Len(); n != f.Labels.Rows() {
		return alignmentError(f.Text, n, f.Labels.Rows())
	}
	return f.Labels.Validate()
}

// Mutator rewrites a value to simulate noisy input. The result need not keep the input length.
type Mutator interface {
	Mutate(rng *rand.Rand, s string) string
}

// Labeler turns raw values into labelled fragments.
type Labeler struct {
	// Typo, when set, is applied to values labelled with mutate=true.
	Typo Mutator
}

// Label labels every character of text with field. An empty text yields an empty fragment.
// The label matrix is sized after mutation, so it always matches the returned text.
func (l Labeler) Label(rng *rand.Rand, text string, field Field, mutate bool) Fragment {
	if mutate && l.Typo != nil && text != "" {
		text = l.Typo.Mutate(rng, text)
	}
	return Fragment{Text: text, Labels: OneHot(utf8.RuneCountInString(text), field)}
}
