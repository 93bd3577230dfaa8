package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henkexbg/gowordlesolver/words"
)

// With a consistent simulated authority and a turn limit of the dictionary
// size, every session must terminate in a win: each guess eliminates at
// least itself, and the secret is never filtered out.
func TestRunSolvesEveryWord(t *testing.T) {
	dict := words.Default()
	stats, err := Run(dict, Options{MaxTurns: dict.Len(), Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, dict.Len(), stats.Successes)
	assert.Zero(t, stats.Failures)
	assert.GreaterOrEqual(t, stats.AverageTurns, 1.0)
	assert.GreaterOrEqual(t, stats.MaxTurns, 1)
	assert.LessOrEqual(t, float64(stats.MaxTurns), float64(dict.Len()))
	assert.Greater(t, stats.Elapsed.Nanoseconds(), int64(0))
}

func TestRunSequentialMatchesParallel(t *testing.T) {
	dict := words.Default()

	sequential, err := Run(dict, Options{MaxTurns: 10, Workers: 1})
	require.NoError(t, err)
	parallel, err := Run(dict, Options{MaxTurns: 10, Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, sequential.Successes, parallel.Successes)
	assert.Equal(t, sequential.Failures, parallel.Failures)
	assert.Equal(t, sequential.MaxTurns, parallel.MaxTurns)
	assert.InDelta(t, sequential.AverageTurns, parallel.AverageTurns, 1e-9)
}

func TestRunDefaultTurnLimit(t *testing.T) {
	dict := words.Default()
	stats, err := Run(dict, Options{})
	require.NoError(t, err)
	assert.Equal(t, dict.Len(), stats.Successes+stats.Failures)
}
