package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/verifier"
)

func TestFormatCode(t *testing.T) {
	code, _ := codeset.FromDigits(1, 2, 3)
	assert.Equal(t, "△=1 □=2 ○=3", FormatCode(code))
}

func TestFormatVerifier(t *testing.T) {
	v, err := verifier.Get(1)
	require.NoError(t, err)

	out := FormatVerifier(1, v)
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "a) ")
	assert.Contains(t, out, "b) ")
}

func TestFormatCandidateTable(t *testing.T) {
	g, err := puzzle.NewGame([]int{4, 9, 11, 14})
	require.NoError(t, err)

	out := FormatCandidateTable(g.Table())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, g.Table().Len(), len(lines))
}

func TestFormatBoardMarksMembers(t *testing.T) {
	code, _ := codeset.FromDigits(1, 1, 1)
	s := codeset.Single(code)

	out := FormatBoard(s.Contains)
	assert.Contains(t, out, "#")
	assert.Contains(t, out, "○=1")
}
