package search

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// fold canonicalizes a string for case-insensitive comparison:
// NFC normalization first, so composed and decomposed Unicode forms
// compare equal, then full Unicode case folding.
//
// A cases.Caser is not safe for concurrent use, so each call takes a
// fresh one; they are cheap to construct.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
