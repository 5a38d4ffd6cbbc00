package crypto

import (
	"math"
	"unicode/utf8"
)

// EstimateEntropyBits approximates the entropy of password as
// length * log2(charset size), where the charset is the union of the classes
// enabled in opts (lowercase when none are). Length counts runes.
//
// This assumes every character was chosen independently and uniformly; it
// ignores the bias from the required-character step and any structure a
// pattern-based scorer would find.
func EstimateEntropyBits(password string, opts GeneratorOptions) float64 {
	n := utf8.RuneCountInString(password)
	if n == 0 {
		return 0
	}
	return float64(n) * math.Log2(float64(CharsetSize(opts)))
}

// CharsetSize returns the number of characters available under opts.
func CharsetSize(opts GeneratorOptions) int {
	var size int
	for _, c := range enabledClasses(opts) {
		size += len(c)
	}
	if size == 0 {
		size = len(lowercaseChars)
	}
	return size
}
