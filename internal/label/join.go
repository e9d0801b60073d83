package label

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Separator produces the text inserted between two joined fragments.
// Random separators return a new value on every call.
type Separator func() string

// Fixed returns a Separator that always yields s.
func Fixed(s string) Separator {
	return func() string { return s }
}

// JoinMatrices concatenates label matrices, inserting Blank rows for the separator between
// consecutive non-empty matrices. sep is called once per matrix after the first, even when
// that matrix is empty and skipped, so a precomputed sequence of separators stays aligned.
func JoinMatrices(ms []Matrix, sep Separator) (Matrix, error) {
	switch len(ms) {
	case 0:
		return Empty(), nil
	case 1:
		return ms[0], nil
	}
	for i, m := range ms {
		if m.Cols() != NumLabels {
			return Matrix{}, errors.AssertionFailedf(
				"label: matrix %d has %d columns, want %d", i, m.Cols(), NumLabels)
		}
	}

	parts := []Matrix{ms[0]}
	rows := ms[0].Rows()
	for _, m := range ms[1:] {
		s := sep()
		if m.Rows() == 0 {
			continue
		}
		if s != "" && rows > 0 {
			parts = append(parts, OneHot(utf8.RuneCountInString(s), Blank))
		}
		parts = append(parts, m)
		rows += m.Rows()
	}
	return stack(parts...), nil
}

// Join concatenates fragments with sep between them. Fragments with empty text are dropped.
// With nothing left the result is an empty fragment; a single survivor is returned as is.
func Join(frags []Fragment, sep Separator) (Fragment, error) {
	kept := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if !f.IsEmpty() {
			kept = append(kept, f)
		}
	}
	switch len(kept) {
	case 0:
		return Fragment{Labels: Empty()}, nil
	case 1:
		return kept[0], nil
	}

	// Separators are drawn up front so a random policy yields the same values for the text
	// and for the labels. The trailing "" keeps one separator per fragment.
	seps := make([]string, 0, len(kept))
	for i := 0; i < len(kept)-1; i++ {
		seps = append(seps, sep())
	}
	seps = append(seps, "")

	var sb strings.Builder
	ms := make([]Matrix, len(kept))
	for i, f := range kept {
		sb.WriteString(f.Text)
		sb.WriteString(seps[i])
		ms[i] = f.Labels
	}

	next := 0
	labels, err := JoinMatrices(ms, func() string {
		s := seps[next]
		next++
		return s
	})
	if err != nil {
		return Fragment{}, err
	}

	text := sb.String()
	if n := utf8.RuneCountInString(text); n != labels.Rows() {
		return Fragment{}, alignmentError(text, n, labels.Rows())
	}
	return Fragment{Text: text, Labels: labels}, nil
}

func alignmentError(text string, n, rows int) error {
	return errors.AssertionFailedf("label: text %q has %d characters but %d label rows", text, n, rows)
}
