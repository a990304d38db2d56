package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/verifier"
)

func newTestGame(t *testing.T, numbers []int) *puzzle.Game {
	t.Helper()
	g, err := puzzle.NewGame(numbers)
	require.NoError(t, err)
	return g
}

func TestNewStateStartsIdle(t *testing.T) {
	g := newTestGame(t, []int{4, 9, 11, 14})
	s := NewState(g)

	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Equal(t, Cost{}, s.Cost())
	assert.False(t, s.AwaitingAnswer())
}

func TestApplyChooseCodeTransitionsToCodePicked(t *testing.T) {
	g := newTestGame(t, []int{4, 9, 11, 14})
	s := NewState(g)

	code, _ := codeset.FromDigits(1, 1, 1)
	next, _, err := s.Apply(Move{Kind: MoveChooseCode, Code: code})
	require.NoError(t, err)

	assert.Equal(t, PhaseCodePicked, next.Phase())
	assert.Equal(t, 1, next.Cost().CodesGuessed)
}

func TestApplyChooseVerifierIllegalInIdle(t *testing.T) {
	g := newTestGame(t, []int{4, 9, 11, 14})
	s := NewState(g)

	_, _, err := s.Apply(Move{Kind: MoveChooseVerifier, Verifier: verifier.ChosenVerifier(0)})
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestApplyAnswerIllegalOutsideAwaitingAnswer(t *testing.T) {
	g := newTestGame(t, []int{4, 9, 11, 14})
	s := NewState(g)

	_, _, err := s.Apply(Move{Kind: MoveAnswer, Answer: puzzle.AnswerCheck})
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestNodeCountIncreasesDuringSearch(t *testing.T) {
	g := newTestGame(t, []int{4, 9, 11, 14})
	s := NewState(g)

	ResetNodeCount()
	_, _, err := s.FindBestMove()
	require.NoError(t, err)

	assert.Greater(t, NodeCount(), int64(0))
}

func TestBookletRuleReturnsToIdleAfterThreeQueries(t *testing.T) {
	g := newTestGame(t, []int{4, 9, 11, 14})
	s := NewState(g)

	code, _ := codeset.FromDigits(1, 1, 1)
	s, _, err := s.Apply(Move{Kind: MoveChooseCode, Code: code})
	require.NoError(t, err)

	for i := 0; i < 3 && !s.Solved(); i++ {
		s, _, err = s.Apply(Move{Kind: MoveChooseVerifier, Verifier: verifier.ChosenVerifier(i % g.NumVerifiers())})
		require.NoError(t, err)

		for _, answer := range [2]puzzle.Answer{puzzle.AnswerCheck, puzzle.AnswerCross} {
			trial, outcome, err := s.Apply(Move{Kind: MoveAnswer, Answer: answer})
			if err == nil && outcome != puzzle.OutcomeNoSolution {
				s = trial
				break
			}
		}
	}

	if !s.Solved() {
		assert.Equal(t, PhaseIdle, s.Phase())
	}
}
