package solver

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/henkexbg/gowordlesolver/words"
)

// Slot is one position of the partial word: either a confirmed letter or
// still unknown. The Known flag is explicit so no letter value doubles as a
// wildcard.
type Slot struct {
	Letter rune
	Known  bool
}

// Occurrence bounds the number of times a letter appears in the secret.
// Min is revisable upward; once ExactKnown is set the count is final for the
// session and the filter treats it as a hard equality.
type Occurrence struct {
	Min        int
	Exact      int
	ExactKnown bool
}

func (o *Occurrence) ok(count int) bool {
	if o.ExactKnown {
		return count == o.Exact
	}
	return count >= o.Min
}

// Constraints accumulates everything learned about the secret word across
// the turns of one session: confirmed letters per position, letters known
// absent, per-letter occurrence bounds, and per-letter rejected positions.
// It is owned by exactly one session and never shared.
type Constraints struct {
	partial  [words.Length]Slot
	absent   mapset.Set          // runes confirmed to not appear at all
	occ      map[rune]*Occurrence
	excluded map[rune]map[int]bool // letter -> positions it cannot occupy
}

// NewConstraints returns an empty store: nothing known yet.
func NewConstraints() *Constraints {
	return &Constraints{
		absent:   mapset.NewThreadUnsafeSet(),
		occ:      make(map[rune]*Occurrence),
		excluded: make(map[rune]map[int]bool),
	}
}

// Partial returns the current best-known word.
func (c *Constraints) Partial() [words.Length]Slot {
	return c.partial
}

func (c *Constraints) excludePosition(letter rune, pos int) {
	if c.excluded[letter] == nil {
		c.excluded[letter] = make(map[int]bool)
	}
	c.excluded[letter][pos] = true
}

// Update folds one turn's feedback into the store. The steps run in a fixed
// order: tally this turn's confirmed count per letter, apply matches, apply
// misplacements, resolve absents, promote minimum bounds, then prune
// exclusion sets that no longer discriminate.
func (c *Constraints) Update(fb Feedback) {
	// confirmed count per letter within this turn only
	confirmed := make(map[rune]int)
	for _, lr := range fb {
		if lr.Outcome == Match || lr.Outcome == Misplaced {
			confirmed[lr.Letter]++
		}
	}

	for i, lr := range fb {
		if lr.Outcome == Match {
			c.partial[i] = Slot{Letter: lr.Letter, Known: true}
		}
	}
	for i, lr := range fb {
		if lr.Outcome == Misplaced {
			c.excludePosition(lr.Letter, i)
		}
	}

	// An Absent for a letter that also matched or misplaced elsewhere in the
	// same guess means "no more occurrences than already confirmed", not
	// "never appears": lock in the exact count. Only a letter with zero
	// confirmed occurrences this turn truly never appears. The absent
	// position itself is also ruled out for the letter: had it been there it
	// would have been a Match.
	for i, lr := range fb {
		if lr.Outcome != Absent {
			continue
		}
		n := confirmed[lr.Letter]
		if n == 0 {
			c.absent.Add(lr.Letter)
			continue
		}
		o := c.occ[lr.Letter]
		if o == nil {
			o = &Occurrence{}
			c.occ[lr.Letter] = o
		}
		if !o.ExactKnown {
			o.Exact = n
			o.ExactKnown = true
		}
		if o.Min < n {
			o.Min = n
		}
		c.excludePosition(lr.Letter, i)
	}

	// raise minimums to this turn's confirmed counts
	for letter, n := range confirmed {
		o := c.occ[letter]
		if o == nil {
			o = &Occurrence{}
			c.occ[letter] = o
		}
		if !o.ExactKnown && o.Min < n {
			o.Min = n
		}
	}

	c.pruneExclusions()
}

// pruneExclusions drops a letter's position-exclusion set once the partial
// word already confirms as many instances as the letter's known bound; it
// has no further discriminating power then.
func (c *Constraints) pruneExclusions() {
	for letter := range c.excluded {
		placed := 0
		for _, slot := range c.partial {
			if slot.Known && slot.Letter == letter {
				placed++
			}
		}
		if placed == 0 {
			continue
		}
		o := c.occ[letter]
		switch {
		case o == nil:
			delete(c.excluded, letter)
		case o.ExactKnown && placed >= o.Exact:
			delete(c.excluded, letter)
		case !o.ExactKnown && placed >= o.Min:
			delete(c.excluded, letter)
		}
	}
}

// Permits reports whether w is consistent with every accumulated constraint.
// This is the candidate filter in per-word predicate form; Index.Narrow is
// the bitset equivalent used on the hot path.
func (c *Constraints) Permits(w words.Word) bool {
	for i, slot := range c.partial {
		if slot.Known && w[i] != slot.Letter {
			return false
		}
	}
	var counts ['z' - 'a' + 1]int
	for _, r := range w {
		if c.absent.Contains(r) {
			return false
		}
		counts[r-'a']++
	}
	for letter, o := range c.occ {
		if !o.ok(counts[letter-'a']) {
			return false
		}
	}
	for i, slot := range c.partial {
		if slot.Known {
			continue
		}
		if positions := c.excluded[w[i]]; positions != nil && positions[i] {
			return false
		}
	}
	return true
}
