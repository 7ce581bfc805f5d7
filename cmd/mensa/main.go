package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/mensa/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mensa: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "mensa",
		Short: "Browse OpenMensa canteen menus in the terminal",
		Long: `mensa shows the upcoming opening days of an OpenMensa canteen, the meals
served on each day and the details of a single meal.

The canteen is read from canteen_id in the config file and can be overridden
with --canteen. Edits to the config file are picked up while mensa runs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.CanteenID < 0 {
				return fmt.Errorf("invalid canteen id %d", opts.CanteenID)
			}
			if opts.Refresh < 0 {
				return fmt.Errorf("invalid refresh interval %s", opts.Refresh)
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/mensa/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/mensa/prefs.toml)")
	flags.IntVar(&opts.CanteenID, "canteen", 0, "canteen id, overrides canteen_id from the config file")
	flags.DurationVar(&opts.Refresh, "refresh", 0, "day list refresh interval, overrides refresh from the config file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "write debug records to the log file")
	return cmd
}
