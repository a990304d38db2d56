package search

import "errors"

// ErrInvalidMove is returned by Apply when move is illegal in the State's
// current phase.
var ErrInvalidMove = errors.New("move illegal in current phase")

// ErrNoSolution is returned by Apply when an Answer empties the
// CandidateSet, proving the game inconsistent against the supplied
// verifier numbers, and by FindBestMove when no move exists because the
// root itself is already unsolvable.
var ErrNoSolution = errors.New("no candidate remains consistent with the given answers")
