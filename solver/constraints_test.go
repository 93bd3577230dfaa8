package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactOccurrenceTightening(t *testing.T) {
	// ebony has exactly one e; agree guesses two, neither correctly placed
	c := NewConstraints()
	c.Update(Score(ww("ebony"), ww("agree")))

	assert := assert.New(t)
	assert.True(c.absent.Contains('a'))
	assert.True(c.absent.Contains('g'))
	assert.True(c.absent.Contains('r'))
	assert.False(c.absent.Contains('e'), "e occurred this turn, must not be absent")

	o := c.occ['e']
	require.NotNil(t, o)
	assert.True(o.ExactKnown)
	assert.Equal(1, o.Exact)

	// both guessed e positions are ruled out
	assert.True(c.excluded['e'][3])
	assert.True(c.excluded['e'][4])
}

func TestAbsentWithMatchLocksExactCount(t *testing.T) {
	// model has one e; elder places one e and wastes the other
	c := NewConstraints()
	c.Update(Score(ww("model"), ww("elder")))

	assert := assert.New(t)
	o := c.occ['e']
	require.NotNil(t, o)
	assert.True(o.ExactKnown)
	assert.Equal(1, o.Exact)
	assert.False(c.absent.Contains('e'))
	assert.True(c.absent.Contains('r'))

	partial := c.Partial()
	assert.Equal(Slot{Letter: 'd', Known: true}, partial[2])
	assert.Equal(Slot{Letter: 'e', Known: true}, partial[3])
}

func TestMinimumBoundPromotion(t *testing.T) {
	c := NewConstraints()
	// one misplaced s
	c.Update(Score(ww("chess"), ww("stare")))
	require.NotNil(t, c.occ['s'])
	assert.Equal(t, 1, c.occ['s'].Min)
	assert.False(t, c.occ['s'].ExactKnown)

	// two s hits raise the minimum to two
	c.Update(Score(ww("chess"), ww("gloss")))
	assert.Equal(t, 2, c.occ['s'].Min)
}

func TestConfirmedSlotNeverRegresses(t *testing.T) {
	c := NewConstraints()
	c.Update(Score(ww("crane"), ww("crown")))
	partial := c.Partial()
	require.True(t, partial[0].Known)
	require.True(t, partial[1].Known)

	// a later turn whose feedback says nothing about those slots
	c.Update(Score(ww("crane"), ww("moist")))
	partial = c.Partial()
	assert.Equal(t, Slot{Letter: 'c', Known: true}, partial[0])
	assert.Equal(t, Slot{Letter: 'r', Known: true}, partial[1])
}

func TestExclusionPrunedOncePlaced(t *testing.T) {
	c := NewConstraints()
	// r misplaced: earth vs robin
	c.Update(Score(ww("robin"), ww("earth")))
	require.True(t, c.excluded['r'][2])

	// r matched at position 0; the exclusion set no longer discriminates
	c.Update(Score(ww("robin"), ww("rocky")))
	assert.Nil(t, c.excluded['r'])
}

func TestAbsentAndBoundMutuallyExclusive(t *testing.T) {
	// play out full games and check the invariant after every turn
	secrets := []string{"abbey", "geese", "salad", "model", "chess", "crane"}
	guesses := []string{"salet", "melee", "azazz", "elder", "stare", "gloss", "crown"}
	for _, secret := range secrets {
		c := NewConstraints()
		for _, guess := range guesses {
			c.Update(Score(ww(secret), ww(guess)))
			for letter, o := range c.occ {
				if o.Min > 0 || (o.ExactKnown && o.Exact > 0) {
					assert.False(t, c.absent.Contains(letter),
						"letter %c absent and bounded for secret %s", letter, secret)
				}
			}
		}
	}
}

func TestPermits(t *testing.T) {
	c := NewConstraints()
	c.Update(Score(ww("ebony"), ww("agree")))

	assert := assert.New(t)
	assert.True(c.Permits(ww("ebony")), "the secret always stays permitted")
	assert.False(c.Permits(ww("crane")), "contains absent a and r")
	assert.False(c.Permits(ww("spoil")), "missing the required e")
	assert.False(c.Permits(ww("geese")), "too many e")
	assert.False(c.Permits(ww("whole")), "e in an excluded position")
}
