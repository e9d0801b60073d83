// Package vocab encodes address text into the fixed character vocabulary consumed by the model.
package vocab

import (
	"strings"
	"unicode"
)

// Alphabet lists the known characters in code order: code = index + 1, unknown runes are 0.
const Alphabet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" \t\n\r\v\f"

var index = func() map[rune]int64 {
	m := make(map[rune]int64, len(Alphabet))
	for i, r := range Alphabet {
		m[r] = int64(i) + 1
	}
	return m
}()

// Size is the number of distinct codes, including 0 for unknown characters.
func Size() int {
	return len(index) + 1
}

// Encode returns the character count of s and one code per character, after lower-casing.
func Encode(s string) (int, []int64) {
	codes := make([]int64, 0, len(s))
	for _, r := range s {
		codes = append(codes, index[unicode.ToLower(r)])
	}
	return len(codes), codes
}

// Decode maps codes back to characters; code 0 becomes the replacement rune.
func Decode(codes []int64) string {
	var sb strings.Builder
	alphabet := []rune(Alphabet)
	for _, c := range codes {
		if c <= 0 || int(c) > len(alphabet) {
			sb.WriteRune(unicode.ReplacementChar)
			continue
		}
		sb.WriteRune(alphabet[c-1])
	}
	return sb.String()
}
