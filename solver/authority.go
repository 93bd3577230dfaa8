package solver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/henkexbg/gowordlesolver/words"
)

// ErrBadFeedback is returned when an interactive feedback line cannot be
// parsed. The session treats it as fatal rather than re-prompting.
var ErrBadFeedback = errors.New("malformed feedback")

// Authority knows the secret word, directly or through an operator, and
// scores guesses. The session depends only on this interface.
type Authority interface {
	Evaluate(guess words.Word) (Feedback, error)
}

// Simulator is an Authority configured with the secret word up front.
type Simulator struct {
	Secret words.Word
}

func (s Simulator) Evaluate(guess words.Word) (Feedback, error) {
	return Score(s.Secret, guess), nil
}

// Interactive is an Authority operated by a human relaying feedback from a
// real game. For every guess it prints the word and reads one line of
// whitespace-separated tokens, one per position:
//
//	e     the letter alone: Match (must equal the guessed letter)
//	-     a bare hyphen: Absent
//	e-    letter followed by a hyphen: Misplaced
type Interactive struct {
	In  *bufio.Scanner
	Out io.Writer
}

// NewInteractive wraps a reader/writer pair, typically stdin and stdout.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{In: bufio.NewScanner(in), Out: out}
}

func (ia *Interactive) Evaluate(guess words.Word) (Feedback, error) {
	fmt.Fprintf(ia.Out, "guess: %s\n", guess)
	fmt.Fprint(ia.Out, "result (letter=match, -=absent, letter-=misplaced): ")
	if !ia.In.Scan() {
		if err := ia.In.Err(); err != nil {
			return Feedback{}, fmt.Errorf("reading feedback: %w", err)
		}
		return Feedback{}, fmt.Errorf("%w: no input", ErrBadFeedback)
	}
	return ParseFeedback(guess, ia.In.Text())
}

// ParseFeedback parses one interactive feedback line for the given guess.
func ParseFeedback(guess words.Word, line string) (Feedback, error) {
	var fb Feedback
	tokens := strings.Fields(line)
	if len(tokens) != words.Length {
		return fb, fmt.Errorf("%w: want %d tokens, got %d", ErrBadFeedback, words.Length, len(tokens))
	}
	for i, token := range tokens {
		fb[i].Letter = guess[i]
		switch {
		case token == "-":
			fb[i].Outcome = Absent
		case len(token) == 2 && rune(token[0]) == guess[i] && token[1] == '-':
			fb[i].Outcome = Misplaced
		case len(token) == 1 && rune(token[0]) == guess[i]:
			fb[i].Outcome = Match
		default:
			return fb, fmt.Errorf("%w: token %q at position %d for guess %s", ErrBadFeedback, token, i, guess)
		}
	}
	return fb, nil
}
