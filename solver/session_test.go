package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henkexbg/gowordlesolver/words"
)

func TestPlayOpenerIsSecret(t *testing.T) {
	dict := words.Default()
	idx := NewIndex(dict)

	result, err := Play(idx, Simulator{Secret: DefaultOpener}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Won, result.Status)
	assert.Equal(t, 1, result.Turns)
	assert.Equal(t, []words.Word{DefaultOpener}, result.Guesses)
}

func TestPlaySimulated(t *testing.T) {
	dict := words.Default()
	idx := NewIndex(dict)

	for _, secret := range []string{"abbey", "crane", "geese", "robin"} {
		result, err := Play(idx, Simulator{Secret: ww(secret)}, Options{MaxTurns: dict.Len()})
		require.NoError(t, err)
		assert.Equal(t, Won, result.Status, "secret %s", secret)
		assert.Equal(t, ww(secret), result.Guesses[len(result.Guesses)-1])
		assert.Equal(t, result.Turns, len(result.Guesses))
	}
}

// allAbsent lies: every letter of every guess is reported absent.
type allAbsent struct{}

func (allAbsent) Evaluate(guess words.Word) (Feedback, error) {
	var fb Feedback
	for i, r := range guess {
		fb[i] = LetterResult{Letter: r, Outcome: Absent}
	}
	return fb, nil
}

func TestPlayOutOfCandidates(t *testing.T) {
	// every word shares a letter with the opener, so one all-absent answer
	// empties the candidate set
	dict := dictFrom(t, "salet", "least", "slate", "stale")
	idx := NewIndex(dict)

	result, err := Play(idx, allAbsent{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, OutOfCandidates, result.Status)
	assert.Equal(t, 1, result.Turns)
}

func TestPlayTurnLimitReached(t *testing.T) {
	dict := words.Default()
	idx := NewIndex(dict)

	result, err := Play(idx, Simulator{Secret: ww("abbey")}, Options{MaxTurns: 1})
	require.NoError(t, err)
	assert.Equal(t, TurnLimitReached, result.Status)
	assert.Equal(t, 1, result.Turns)
}

func TestPlayDefaultOptions(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, DefaultOpener, opts.Opener)
	assert.Equal(t, DefaultMaxTurns, opts.MaxTurns)
	assert.NotNil(t, opts.Logger)
}
