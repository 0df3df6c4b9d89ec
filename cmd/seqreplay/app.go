package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/geofduf/cursor-sequence/internal/script"
	"github.com/geofduf/cursor-sequence/sequence"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerFactory builds the logger used by a command run.
type loggerFactory func(debug bool) (*zap.Logger, error)

type snapshot struct {
	Key      string                  `json:"key"`
	Sequence *sequence.Sequence[int] `json:"sequence"`
}

// newApp creates the seqreplay instance of [cli.App].
func newApp(newLogger loggerFactory) *cli.App {
	ctl := cli.NewApp()
	ctl.Name = "seqreplay"
	ctl.Usage = "Replay cursor sequence scripts"
	ctl.ErrWriter = os.Stdout
	ctl.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "replay a script and print the resulting sequences",
			UsageText: "seqreplay run --script <file> [--only <key>] [--debug]",
			Action: func(ctx *cli.Context) error {
				return run(ctx, newLogger)
			},
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "script, s",
					Usage: "path to the YAML script",
				},
				cli.StringFlag{
					Name:  "only",
					Usage: "print only the sequence with this key",
				},
				cli.BoolFlag{
					Name:  "debug, d",
					Usage: "enable debug logging and state dumps",
				},
			},
		},
	}
	return ctl
}

func run(ctx *cli.Context, newLogger loggerFactory) error {
	path := ctx.String("script")
	if path == "" {
		return cli.NewExitError("no script specified", 1)
	}
	log, err := newLogger(ctx.Bool("debug"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	s, err := script.Load(path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	statements, err := s.Statements()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	store := sequence.NewStore[int]()
	s.Apply(store)
	log.Info("replaying script",
		zap.String("path", path),
		zap.Int("sequences", len(s.Sequences)),
		zap.Int("statements", len(statements)))

	report, batchErr := store.Batch(statements)
	for _, line := range report {
		log.Warn("statement failed", zap.String("reason", line))
	}

	only := ctx.String("only")
	for _, key := range store.Keys() {
		if only != "" && key != only {
			continue
		}
		x, _ := store.Get(key)
		if ce := log.Check(zapcore.DebugLevel, "sequence state"); ce != nil {
			ce.Write(zap.String("key", key), zap.String("dump", spew.Sdump(x)))
		}
		b, err := json.Marshal(snapshot{Key: key, Sequence: x})
		if err != nil {
			return cli.NewExitError(fmt.Errorf("failed to encode %q: %w", key, err), 1)
		}
		fmt.Fprintf(ctx.App.Writer, "%s\n", b)
	}
	if batchErr != nil {
		return cli.NewExitError(batchErr, 1)
	}
	return nil
}
