package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/henkexbg/gowordlesolver/words"
)

// Index is a per-dictionary bitset index used by the candidate filter.
// positions[i][r] holds the words whose i-th letter is r; counts[r][k] holds
// the words containing at least k+1 occurrences of r. Built once per
// dictionary and shared read-only between sessions.
type Index struct {
	dict      *words.Dictionary
	positions [words.Length]map[rune]*bitset.BitSet
	counts    map[rune][]*bitset.BitSet
}

// NewIndex builds the index for d.
func NewIndex(d *words.Dictionary) *Index {
	idx := &Index{
		dict:   d,
		counts: make(map[rune][]*bitset.BitSet),
	}
	for i := range idx.positions {
		idx.positions[i] = make(map[rune]*bitset.BitSet)
	}
	n := uint(d.Len())
	for w := 0; w < d.Len(); w++ {
		word := d.At(w)
		perLetter := make(map[rune]int, words.Length)
		for i, r := range word {
			set := idx.positions[i][r]
			if set == nil {
				set = bitset.New(n)
				idx.positions[i][r] = set
			}
			set.Set(uint(w))
			perLetter[r]++
		}
		for r, count := range perLetter {
			for len(idx.counts[r]) < count {
				idx.counts[r] = append(idx.counts[r], bitset.New(n))
			}
			for k := 0; k < count; k++ {
				idx.counts[r][k].Set(uint(w))
			}
		}
	}
	return idx
}

// AllWords returns a fresh working set with every dictionary word present.
func (idx *Index) AllWords() *bitset.BitSet {
	return bitset.New(uint(idx.dict.Len())).Complement()
}

// atLeast returns the set of words with count or more occurrences of letter,
// or nil when no word qualifies.
func (idx *Index) atLeast(letter rune, count int) *bitset.BitSet {
	sets := idx.counts[letter]
	if count < 1 || count > len(sets) {
		return nil
	}
	return sets[count-1]
}

// Narrow removes from candidates every word inconsistent with c. The working
// set is only ever intersected or differenced, so candidates shrink
// monotonically turn over turn.
func (idx *Index) Narrow(c *Constraints, candidates *bitset.BitSet) {
	partial := c.Partial()

	// confirmed slots: keep only words with that letter in that position
	for i, slot := range partial {
		if !slot.Known {
			continue
		}
		if set := idx.positions[i][slot.Letter]; set != nil {
			candidates.InPlaceIntersection(set)
		} else {
			candidates.ClearAll()
		}
	}

	// absent letters: drop every word containing one
	for letter := range c.absentLetters() {
		if set := idx.atLeast(letter, 1); set != nil {
			candidates.InPlaceDifference(set)
		}
	}

	// occurrence bounds: minimum is a floor, exact is a hard equality
	for letter, o := range c.occ {
		min := o.Min
		if o.ExactKnown {
			min = o.Exact
		}
		if min > 0 {
			if set := idx.atLeast(letter, min); set != nil {
				candidates.InPlaceIntersection(set)
			} else {
				candidates.ClearAll()
			}
		}
		if o.ExactKnown {
			if set := idx.atLeast(letter, o.Exact+1); set != nil {
				candidates.InPlaceDifference(set)
			}
		}
	}

	// position exclusions apply to still-unconfirmed slots; confirmed slots
	// were already pinned by the intersection above
	for letter, positions := range c.excluded {
		for pos := range positions {
			if partial[pos].Known {
				continue
			}
			if set := idx.positions[pos][letter]; set != nil {
				candidates.InPlaceDifference(set)
			}
		}
	}
}

// CandidateWords expands a working set into words in dictionary order.
func (idx *Index) CandidateWords(candidates *bitset.BitSet) []words.Word {
	indices := make([]uint, candidates.Count())
	candidates.NextSetMany(0, indices)
	ret := make([]words.Word, len(indices))
	for i, w := range indices {
		ret[i] = idx.dict.At(int(w))
	}
	return ret
}

// absentLetters iterates the absent set as runes.
func (c *Constraints) absentLetters() map[rune]struct{} {
	ret := make(map[rune]struct{}, c.absent.Cardinality())
	for v := range c.absent.Iter() {
		ret[v.(rune)] = struct{}{}
	}
	return ret
}
