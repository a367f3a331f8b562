package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lazypower/tbool/internal/config"
	"github.com/lazypower/tbool/internal/demo"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Set temporal booleans true and wait for them to decay",
	Long: `Runs two scenarios: a Bool with the default life is set and waited on,
then a long-lived Bool is waited on while false, set true and waited on again.

With --poll 0 the waits spin; otherwise the value is checked once per interval.`,
	RunE: runDemo,
}

func init() {
	d := config.Default().Demo
	demoCmd.Flags().Duration("short-life", d.ShortLife, "Life of the first Bool")
	demoCmd.Flags().Duration("long-life", d.LongLife, "Life of the second Bool (env "+config.EnvLongLife+")")
	demoCmd.Flags().Duration("poll", d.Poll, "Poll interval, 0 to busy-wait (env "+config.EnvPoll+")")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.FromEnv(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*time.Duration{
		"short-life": &cfg.Demo.ShortLife,
		"long-life":  &cfg.Demo.LongLife,
		"poll":       &cfg.Demo.Poll,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetDuration(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Demo.Poll == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "  wait: busy")
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "  wait: poll every %v\n", cfg.Demo.Poll)
	}

	_, err := demo.Run(ctx, demo.NewPrinter(cmd.OutOrStdout()), demo.Options{
		ShortLife: cfg.Demo.ShortLife,
		LongLife:  cfg.Demo.LongLife,
		Poll:      cfg.Demo.Poll,
	})
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "\ninterrupted")
		return nil
	}
	return err
}
