package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/henkexbg/gowordlesolver/words"
)

func distinctLetters(w words.Word) int {
	var seen ['z' - 'a' + 1]bool
	n := 0
	for _, r := range w {
		if !seen[r-'a'] {
			seen[r-'a'] = true
			n++
		}
	}
	return n
}

// selectGuess picks the candidate with the most distinct letters. Ties go to
// the word that comes first in dictionary order, which NextSet's ascending
// walk gives for free. Returns false when the candidate set is empty.
func selectGuess(idx *Index, candidates *bitset.BitSet) (words.Word, bool) {
	var best words.Word
	bestDistinct := 0
	for i, ok := candidates.NextSet(0); ok; i, ok = candidates.NextSet(i + 1) {
		w := idx.dict.At(int(i))
		if d := distinctLetters(w); d > bestDistinct {
			bestDistinct = d
			best = w
		}
	}
	return best, bestDistinct > 0
}
