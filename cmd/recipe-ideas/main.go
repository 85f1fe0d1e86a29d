package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Jithendhar18/recipe-ideas/internal/app"
)

type rootOptions struct {
	configPath string
	prefsPath  string
	logFile    string
	verbose    bool
}

func (o *rootOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: o.configPath,
		PrefsPath:  o.prefsPath,
		LogFile:    o.logFile,
		Verbose:    o.verbose,
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "recipe-ideas: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "recipe-ideas",
		Short: "Discover meals from TheMealDB in your terminal",
		Long: `recipe-ideas searches TheMealDB by meal name, ingredient, category or area.

A search term that exactly matches a known ingredient, category or area
filters by it; anything else is a name search.

Run without arguments to start the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.appOptions())
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/recipe-ideas/config.toml)")
	root.PersistentFlags().StringVar(&opts.prefsPath, "prefs", "", "preferences file (default ~/.config/recipe-ideas/prefs.toml)")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "log file for the interactive browser")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newBrowseCmd(opts),
		newSearchCmd(opts),
		newMealCmd(opts),
		newSuggestCmd(opts),
		newSampleCmd(opts),
	)
	return root
}

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Start the interactive browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.appOptions())
		},
	}
}

// withApp builds a non-interactive App for one command and closes it after.
func withApp(opts *rootOptions, fn func(a *app.App) error) error {
	a, err := app.New(opts.appOptions())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
