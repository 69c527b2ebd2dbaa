/*
Package tokens splits whitespace separated token lists and iterates over
ordered sequences.

Token lists are what HTML uses for attributes like `class` or `rel`: a string
of tokens separated by runs of whitespace. Cursors are single-use forward
iterators over a snapshot of a slice, similar to what ECMAScript calls an
iterator object.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tokens

import (
	"strings"
	"unicode"
)

// Split splits a list of whitespace separated tokens, excluding empty ones.
// Leading, trailing and repeated whitespace never produce empty tokens;
// Split("") returns an empty (nil) slice.
func Split(text string) []string {
	return strings.FieldsFunc(text, unicode.IsSpace)
}

// Join concatenates tokens, separated by a single space.
// For tokens without whitespace, Split(Join(t)) reproduces t.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

// IndexOf returns the position of the first token equal to tok,
// or -1 if tok is not contained in tokens. Comparison is case-sensitive.
func IndexOf(tokens []string, tok string) int {
	for i, t := range tokens {
		if t == tok {
			return i
		}
	}
	return -1
}

// IsToken is a predicate wether s is a valid single token, i.e. non-empty
// and without whitespace.
func IsToken(s string) bool {
	return s != "" && strings.IndexFunc(s, unicode.IsSpace) < 0
}

// Pair is a key/value entry, as produced by entry cursors.
type Pair[K, V any] struct {
	Key   K
	Value V
}
