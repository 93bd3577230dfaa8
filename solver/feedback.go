// Package solver contains the constraint-accumulation engine: the feedback
// oracle, the per-session constraint store, the bitset candidate filter, the
// guess selector and the turn loop that ties them together.
package solver

import (
	"github.com/henkexbg/gowordlesolver/words"
)

// Outcome classifies a single guessed letter.
type Outcome int

const (
	// Absent means the letter has no un-accounted occurrence in the secret.
	Absent Outcome = iota
	// Misplaced means the letter exists in the secret but not at this position.
	Misplaced
	// Match means the letter is correct and in the correct position.
	Match
)

// LetterResult is the feedback for one guessed position.
type LetterResult struct {
	Letter  rune
	Outcome Outcome
}

// Feedback is one turn's result, one LetterResult per guessed position.
type Feedback [words.Length]LetterResult

// Won reports whether every position is a Match.
func (f Feedback) Won() bool {
	for _, lr := range f {
		if lr.Outcome != Match {
			return false
		}
	}
	return true
}

// String renders the feedback in g/y/r color notation.
func (f Feedback) String() string {
	var colors [words.Length]byte
	for i, lr := range f {
		switch lr.Outcome {
		case Match:
			colors[i] = 'g'
		case Misplaced:
			colors[i] = 'y'
		default:
			colors[i] = 'r'
		}
	}
	return string(colors[:])
}

// Score computes the feedback for guess against secret. Exact matches are
// resolved first and consume their letter from the remaining pool; a second
// pass marks the still-pending positions Misplaced while the pool has an
// instance left, Absent otherwise. The two-pass order is what makes duplicate
// letters come out right: a letter guessed twice but present once yields one
// Misplaced and one Absent, never two Misplaced.
func Score(secret, guess words.Word) Feedback {
	var fb Feedback
	var pool ['z' - 'a' + 1]int
	for i, r := range secret {
		if guess[i] != r {
			pool[r-'a']++
		}
	}
	for i, r := range guess {
		fb[i].Letter = r
		if secret[i] == r {
			fb[i].Outcome = Match
		}
	}
	for i, r := range guess {
		if fb[i].Outcome == Match {
			continue
		}
		if pool[r-'a'] > 0 {
			pool[r-'a']--
			fb[i].Outcome = Misplaced
		} else {
			fb[i].Outcome = Absent
		}
	}
	return fb
}
