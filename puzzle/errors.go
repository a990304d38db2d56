package puzzle

import "errors"

// ErrNoCandidates is returned by NewGame when the chosen verifiers yield an
// empty CandidateTable: no Assignment pins down a unique, non-redundant
// code.
var ErrNoCandidates = errors.New("no candidate assignments satisfy the selected verifiers")
