package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/henkexbg/gowordlesolver/bench"
	"github.com/henkexbg/gowordlesolver/solver"
	"github.com/henkexbg/gowordlesolver/words"
)

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func loadDictionary(path string) (*words.Dictionary, error) {
	if path == "" {
		path = os.Getenv("WDS_DICTIONARY")
	}
	if path == "" {
		d := words.Default()
		log.Info().Int("words", d.Len()).Msg("using embedded dictionary")
		return d, nil
	}
	d, err := words.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", d.Len()).Msg("loaded dictionary")
	return d, nil
}

func sessionOptions(first string, turns int) (solver.Options, error) {
	opts := solver.Options{MaxTurns: turns}
	if first != "" {
		opener, err := words.Parse(first)
		if err != nil {
			return opts, fmt.Errorf("invalid first word: %w", err)
		}
		opts.Opener = opener
	}
	logger := log.Logger
	opts.Logger = &logger
	return opts, nil
}

func printResult(result solver.Result) {
	fmt.Printf("%s in %d turns (%s):", result.Status, result.Turns, result.Elapsed)
	for _, guess := range result.Guesses {
		fmt.Print(" ", guess)
	}
	fmt.Println()
}

func simulate(dict *words.Dictionary, opts solver.Options, secrets []string) error {
	idx := solver.NewIndex(dict)
	for _, raw := range secrets {
		secret, err := words.Parse(raw)
		if err != nil {
			return err
		}
		if !dict.Contains(secret) {
			return fmt.Errorf("secret %s not in dictionary", secret)
		}
		result, err := solver.Play(idx, solver.Simulator{Secret: secret}, opts)
		if err != nil {
			return err
		}
		fmt.Print(secret, ": ")
		printResult(result)
	}
	return nil
}

func playInteractive(dict *words.Dictionary, opts solver.Options) error {
	idx := solver.NewIndex(dict)
	authority := solver.NewInteractive(os.Stdin, os.Stdout)
	result, err := solver.Play(idx, authority, opts)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

func runBench(dict *words.Dictionary, opts solver.Options, workers int, progress bool) error {
	stats, err := bench.Run(dict, bench.Options{
		Opener:   opts.Opener,
		MaxTurns: opts.MaxTurns,
		Workers:  workers,
		Progress: progress,
		Logger:   opts.Logger,
	})
	if err != nil {
		return err
	}
	fmt.Printf("successes: %d, failures: %d, average turns: %.2f, max turns: %d, elapsed: %s\n",
		stats.Successes, stats.Failures, stats.AverageTurns, stats.MaxTurns, stats.Elapsed)
	return nil
}

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("WDS_LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dictPath := ""
	first := ""
	turns := int64(solver.DefaultMaxTurns)
	logLevel := ""
	profile := false
	workers := int64(1)
	progress := false

	cmd := &cli.Command{
		Name:  "wds",
		Usage: "wordle solver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dictionary",
				Aliases:     []string{"d"},
				Usage:       "word list file, one word per line (default: embedded list)",
				Destination: &dictPath,
			},
			&cli.StringFlag{
				Name:        "first",
				Aliases:     []string{"f"},
				Usage:       "opening word, default is '" + solver.DefaultOpener.String() + "'",
				Destination: &first,
			},
			&cli.IntFlag{
				Name:        "turns",
				Aliases:     []string{"t"},
				Value:       solver.DefaultMaxTurns,
				Usage:       "maximum number of turns per session",
				Destination: &turns,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "trace, debug, info, warn or error",
				Destination: &logLevel,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Usage:       "store cpu profile data to analyze",
				Destination: &profile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if logLevel != "" {
				lvl, err := zerolog.ParseLevel(logLevel)
				if err != nil {
					return ctx, fmt.Errorf("invalid log level %q", logLevel)
				}
				zerolog.SetGlobalLevel(lvl)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "sim",
				Usage: "sim <secret>... simulate sessions for the given secret words",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() < 1 {
						return cli.Exit("must supply at least one secret word", 1)
					}
					if profile {
						defer cpuProfile()()
					}
					dict, err := loadDictionary(dictPath)
					if err != nil {
						return err
					}
					opts, err := sessionOptions(first, int(turns))
					if err != nil {
						return err
					}
					return simulate(dict, opts, cmd.Args().Slice())
				},
			},
			{
				Name: "play",
				Usage: `play against a real game by relaying its feedback.
				For each guess enter one token per letter: the letter alone for
				a correct position, '-' for a letter not in the word, or the
				letter followed by '-' for a misplaced letter, e.g. 's a- l e t'`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					dict, err := loadDictionary(dictPath)
					if err != nil {
						return err
					}
					opts, err := sessionOptions(first, int(turns))
					if err != nil {
						return err
					}
					return playInteractive(dict, opts)
				},
			},
			{
				Name:  "bench",
				Usage: "run one session per dictionary word and report aggregate statistics",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "workers",
						Aliases:     []string{"w"},
						Value:       1,
						Usage:       "number of concurrent sessions",
						Destination: &workers,
					},
					&cli.BoolFlag{
						Name:        "progress",
						Aliases:     []string{"p"},
						Usage:       "show progress bar",
						Destination: &progress,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						defer cpuProfile()()
					}
					dict, err := loadDictionary(dictPath)
					if err != nil {
						return err
					}
					opts, err := sessionOptions(first, int(turns))
					if err != nil {
						return err
					}
					return runBench(dict, opts, int(workers), progress)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wds failed")
	}
}
