// Package demo walks through the decay of a tbool.Bool, printing a
// timestamped line at each step.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/lazypower/tbool/internal/tbool"
)

// Options controls the demo run. A zero ShortLife uses tbool.DefaultLife;
// callers reject it beforehand when zero was asked for explicitly.
// A zero Poll busy-waits.
type Options struct {
	ShortLife time.Duration
	LongLife  time.Duration
	Poll      time.Duration
}

// Result records how long each wait took.
type Result struct {
	ShortDecay time.Duration // default Bool set true until false
	FalseWait  time.Duration // long-life Bool waited on before being set
	LongDecay  time.Duration // long-life Bool set true until false
}

// Run plays both scenarios: a short-lived Bool is set and waited on until it
// decays, then a long-lived Bool is waited on while still false (which
// returns at once), set, and waited on again.
func Run(ctx context.Context, p *Printer, opts Options) (Result, error) {
	var res Result
	var err error

	p.Print("A jolly temporal hello world to you all")

	bit := tbool.New()
	if opts.ShortLife > 0 {
		bit.SetLife(opts.ShortLife)
	}
	p.Printf("Creating a Bool with a %v life, setting it true and waiting for it to expire", bit.Life())
	bit.Set(true)
	if res.ShortDecay, err = WaitWhileTrue(ctx, &bit, opts.Poll); err != nil {
		return res, fmt.Errorf("wait for short decay: %w", err)
	}
	p.Printf("The Bool is now false after %v", res.ShortDecay.Round(time.Millisecond))

	long := tbool.NewWithLife(opts.LongLife)
	p.Printf("Creating a Bool with a %v life", long.Life())
	p.Print("Every Bool starts false, so waiting on it returns straight away")
	if res.FalseWait, err = WaitWhileTrue(ctx, &long, opts.Poll); err != nil {
		return res, fmt.Errorf("wait on false value: %w", err)
	}
	p.Printf("The Bool is false, that took %v", res.FalseWait.Round(time.Microsecond))

	p.Print("Setting it true and waiting...")
	long.Set(true)
	if res.LongDecay, err = WaitWhileTrue(ctx, &long, opts.Poll); err != nil {
		return res, fmt.Errorf("wait for long decay: %w", err)
	}
	p.Printf("The Bool is now false after %v, about %v as expected", res.LongDecay.Round(time.Millisecond), long.Life())

	return res, nil
}
