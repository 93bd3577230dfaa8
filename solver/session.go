package solver

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/henkexbg/gowordlesolver/words"
)

// DefaultOpener gave the lowest average turn count in benchmarking and is
// used as the fixed first guess unless overridden.
var DefaultOpener = words.MustParse("salet")

// DefaultMaxTurns matches the six guesses the real game allows.
const DefaultMaxTurns = 6

// Status is the terminal state of a session.
type Status int

const (
	// Aborted is the zero value, returned alongside a non-nil error when the
	// authority fails mid-session.
	Aborted Status = iota
	// Won means the secret was guessed within the turn limit.
	Won
	// OutOfCandidates means no dictionary word satisfies the accumulated
	// constraints: the dictionary is insufficient or the feedback source
	// contradicted itself.
	OutOfCandidates
	// TurnLimitReached means the session ran out of turns.
	TurnLimitReached
)

func (s Status) String() string {
	switch s {
	case Aborted:
		return "aborted"
	case Won:
		return "won"
	case OutOfCandidates:
		return "out of candidates"
	case TurnLimitReached:
		return "turn limit reached"
	}
	return "unknown"
}

// Options configures one session.
type Options struct {
	Opener   words.Word // first guess, DefaultOpener if zero
	MaxTurns int        // turn limit, DefaultMaxTurns if zero
	Logger   *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Opener == (words.Word{}) {
		o.Opener = DefaultOpener
	}
	if o.MaxTurns == 0 {
		o.MaxTurns = DefaultMaxTurns
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}

// Result records how one session ended.
type Result struct {
	Status  Status
	Turns   int
	Guesses []words.Word
	Elapsed time.Duration
}

// Play runs one complete solving session against the authority. All session
// state is created here and discarded on return; only the read-only
// dictionary index is shared between sessions. The returned error is non-nil
// only for authority failures (malformed interactive feedback), which are
// fatal to the session.
func Play(idx *Index, authority Authority, opts Options) (Result, error) {
	opts = opts.withDefaults()
	start := time.Now()
	constraints := NewConstraints()
	candidates := idx.AllWords()
	var guesses []words.Word

	for turn := 1; turn <= opts.MaxTurns; turn++ {
		var guess words.Word
		if turn == 1 {
			guess = opts.Opener
		} else {
			next, ok := selectGuess(idx, candidates)
			if !ok {
				opts.Logger.Debug().Int("turn", turn).Msg("no candidates left")
				return Result{
					Status:  OutOfCandidates,
					Turns:   turn - 1,
					Guesses: guesses,
					Elapsed: time.Since(start),
				}, nil
			}
			guess = next
		}
		guesses = append(guesses, guess)

		feedback, err := authority.Evaluate(guess)
		if err != nil {
			return Result{
				Status:  Aborted,
				Turns:   turn,
				Guesses: guesses,
				Elapsed: time.Since(start),
			}, err
		}
		if feedback.Won() {
			opts.Logger.Debug().Str("guess", guess.String()).Int("turn", turn).Msg("solved")
			return Result{
				Status:  Won,
				Turns:   turn,
				Guesses: guesses,
				Elapsed: time.Since(start),
			}, nil
		}

		constraints.Update(feedback)
		idx.Narrow(constraints, candidates)
		opts.Logger.Debug().
			Int("turn", turn).
			Str("guess", guess.String()).
			Str("feedback", feedback.String()).
			Uint("candidates", candidates.Count()).
			Msg("turn complete")
	}

	return Result{
		Status:  TurnLimitReached,
		Turns:   opts.MaxTurns,
		Guesses: guesses,
		Elapsed: time.Since(start),
	}, nil
}
