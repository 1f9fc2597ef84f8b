// SPDX-License-Identifier: GPL-3.0-or-later

package extract

// Unit is a type not containing any value (analogous to an
// explicit `void` type in C and C++).
//
// Unit is also the trivial [PartsExtractor]: it extracts itself from
// any [*Parts] without looking at it and never rejects.
type Unit struct{}

var _ PartsExtractor[Unit, Infallible] = Unit{}

// ExtractParts implements [PartsExtractor].
func (Unit) ExtractParts(parts *Parts) (Unit, Infallible) {
	return Unit{}, Infallible{}
}

// Infallible is the rejection of extractors that cannot fail.
//
// Its only value is the zero value, which [Rejected] reports as
// "no rejection", so an extractor using it can never reject.
type Infallible struct{}

// Error implements [error].
func (Infallible) Error() string {
	return "infallible"
}
