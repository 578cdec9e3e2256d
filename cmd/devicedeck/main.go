package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/five82/devicedeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "devicedeck: %v\n", err)
		return 1
	}
	return 0
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	prefsPath  string
	verbose    bool
	reloadSecs int
}

func (o *rootOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: o.configPath,
		PrefsPath:  o.prefsPath,
		ReloadSecs: o.reloadSecs,
		Verbose:    o.verbose,
	}
}

// setup wires a runtime for a one-shot subcommand. With --verbose the log
// records are mirrored to stderr.
func (o *rootOptions) setup(cmd *cobra.Command) (*app.Runtime, error) {
	var console io.Writer
	if o.verbose {
		console = cmd.ErrOrStderr()
	}
	return app.Setup(cmd.Context(), o.appOptions(), console)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "devicedeck",
		Short: "Browse a device catalog and compare up to four products side by side",
		Long: `devicedeck is a terminal catalog browser with a product comparison tray.

Run without arguments to start the interactive interface. Mark products with
space, then press c once two or more are selected to open the comparison.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.appOptions())
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/devicedeck/config.toml)")
	root.PersistentFlags().StringVar(&opts.prefsPath, "prefs", "", "preferences file (default ~/.config/devicedeck/prefs.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging (mirrored to stderr for subcommands)")
	root.Flags().IntVar(&opts.reloadSecs, "reload", 0, "catalog reload interval in seconds (overrides config)")

	root.AddCommand(
		newSearchCmd(opts),
		newSpecsCmd(opts),
		newCompareCmd(opts),
		newCatalogCmd(opts),
	)
	return root
}
