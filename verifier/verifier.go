// Package verifier implements the verifier cards of a Turing Machine puzzle:
// an ordered list of mutually-exclusive options, each a predicate over
// codeset.Code materialized eagerly as a codeset.CodeSet, plus the static
// 48-entry Catalog referenced by verifier number.
package verifier

import (
	"fmt"

	"github.com/tmsolve/turingmachine/codeset"
)

// MaxOptions is the largest number of options any catalog verifier carries
// (verifier #48, comparing all three colour pairs).
const MaxOptions = 9

// OptionBits is the number of bits reserved per verifier slot when an
// Assignment is packed into a single machine word: wide enough to represent
// a one-hot choice among up to MaxOptions options.
const OptionBits = MaxOptions

// VerifierOption is one choice within a Verifier: a short description and
// the precomputed set of codes for which the option's predicate holds.
type VerifierOption struct {
	Description string
	Codes       codeset.CodeSet
}

// newOption evaluates checker over the whole code universe once and
// discards the closure afterward; only the description and the resulting
// CodeSet are retained.
func newOption(description string, checker func(codeset.Code) bool) VerifierOption {
	return VerifierOption{
		Description: description,
		Codes:       codeset.FromPredicate(checker),
	}
}

// Verifier is a verifier card: a description plus an ordered list of
// mutually-exclusive options. A well-formed Verifier's options partition
// codeset.All() -- every code satisfies exactly one option's predicate.
type Verifier struct {
	Description string
	Options     []VerifierOption
}

func newVerifier(description string, options ...VerifierOption) Verifier {
	return Verifier{Description: description, Options: options}
}

// NumOptions returns how many options this verifier offers.
func (v Verifier) NumOptions() int { return len(v.Options) }

// Option returns the option at the given index (0-based).
func (v Verifier) Option(index int) VerifierOption { return v.Options[index] }

// Partitions reports whether v's options partition the code universe: every
// code satisfies exactly one option. Exercised by catalog tests, not called
// from production code paths.
func (v Verifier) Partitions() bool {
	for code := range codeset.All().Iter() {
		hits := 0
		for _, opt := range v.Options {
			if opt.Codes.Contains(code) {
				hits++
			}
		}
		if hits != 1 {
			return false
		}
	}
	return true
}

// ChosenVerifier is the index (0-based) of a verifier within a Game's
// ordered verifier list.
type ChosenVerifier int

// String formats the chosen verifier as an uppercase letter: 0 -> A, 1 -> B, ...
func (c ChosenVerifier) String() string {
	return string(rune('A' + int(c)))
}

// ErrVerifierRange is returned by Get when the requested number is outside
// the catalog's valid 1..=numVerifiers range.
var ErrVerifierRange = fmt.Errorf("verifier number must be in 1..=%d", numVerifiers)

// Get returns the catalog verifier with the given one-based number.
func Get(number int) (Verifier, error) {
	if number < 1 || number > numVerifiers {
		return Verifier{}, fmt.Errorf("verifier: %w: got %d", ErrVerifierRange, number)
	}
	return catalog()[number-1], nil
}

// Count returns how many verifiers the catalog holds.
func Count() int { return numVerifiers }
