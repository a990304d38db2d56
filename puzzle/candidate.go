package puzzle

import (
	"math/bits"

	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/verifier"
)

// Answer is the oracle's response to a probe of one verifier against a
// guessed code.
type Answer int

const (
	AnswerCheck Answer = iota
	AnswerCross
)

func (a Answer) String() string {
	if a == AnswerCheck {
		return "check"
	}
	return "cross"
}

// Outcome classifies the result of filtering a CandidateSet.
type Outcome int

const (
	// OutcomeNarrowed means the filtered set is a proper, non-empty subset
	// of the input: the probe carried information.
	OutcomeNarrowed Outcome = iota
	// OutcomeUseless means the filtered set is identical to the input: the
	// probe carried no information.
	OutcomeUseless
	// OutcomeNoSolution means the filtered set is empty: the supplied
	// answer is inconsistent with every remaining candidate.
	OutcomeNoSolution
)

// CandidateSet is a bitmap over a CandidateTable's row indices: the current
// pruning state of a puzzle in progress.
type CandidateSet struct {
	rows  uint64
	table *CandidateTable
}

// Full returns the CandidateSet containing every row of table.
func Full(table *CandidateTable) CandidateSet {
	n := table.Len()
	var rows uint64
	if n >= 64 {
		rows = ^uint64(0)
	} else {
		rows = uint64(1)<<uint(n) - 1
	}
	return CandidateSet{rows: rows, table: table}
}

// EmptySet returns the CandidateSet containing no rows of table.
func EmptySet(table *CandidateTable) CandidateSet {
	return CandidateSet{table: table}
}

// Size returns the number of rows still in s.
func (s CandidateSet) Size() int { return bits.OnesCount64(s.rows) }

// Codes returns the union of the codes of every row still in s.
func (s CandidateSet) Codes() codeset.CodeSet {
	var out codeset.CodeSet
	for i := 0; i < s.table.Len(); i++ {
		if s.rows&(uint64(1)<<uint(i)) != 0 {
			out = out.Insert(s.table.Row(i).Code)
		}
	}
	return out
}

// Solution returns the unique code shared by every remaining row, if one
// exists: true iff s is non-empty and every retained row implies the same
// code (by code identity, not row identity -- several rows may share a
// code when a verifier choice was redundant to a different Assignment).
func (s CandidateSet) Solution() (codeset.Code, bool) {
	if s.rows == 0 {
		return codeset.Code{}, false
	}
	var found codeset.Code
	have := false
	for i := 0; i < s.table.Len(); i++ {
		if s.rows&(uint64(1)<<uint(i)) == 0 {
			continue
		}
		code := s.table.Row(i).Code
		if !have {
			found, have = code, true
			continue
		}
		if code != found {
			return codeset.Code{}, false
		}
	}
	return found, have
}

// Filter prunes s against the oracle's answer to probing guess against
// verifier v: every row whose chosen option for v does not agree with
// answer is discarded.
func (s CandidateSet) Filter(game *Game, v verifier.ChosenVerifier, guess codeset.Code, answer Answer) (CandidateSet, Outcome) {
	verif := game.Verifiers[int(v)]

	var mask uint64
	for oi, opt := range verif.Options {
		givesCheck := opt.Codes.Contains(guess)
		if givesCheck == (answer == AnswerCheck) {
			mask |= uint64(1) << uint(verifier.OptionBits*int(v)+oi)
		}
	}

	table := s.table
	var kept uint64
	for i := 0; i < table.Len(); i++ {
		if s.rows&(uint64(1)<<uint(i)) == 0 {
			continue
		}
		if uint64(table.Row(i).Assignment)&mask != 0 {
			kept |= uint64(1) << uint(i)
		}
	}

	result := CandidateSet{rows: kept, table: table}
	switch {
	case kept == 0:
		return result, OutcomeNoSolution
	case kept == s.rows:
		return result, OutcomeUseless
	default:
		return result, OutcomeNarrowed
	}
}
