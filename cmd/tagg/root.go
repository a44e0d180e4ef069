package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/tagg/internal/app"
	"github.com/handiism/tagg/internal/config"
	"github.com/handiism/tagg/internal/editor"
	"github.com/handiism/tagg/internal/logging"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	config   string
	verbose  bool
	plain    bool
	dryRun   bool
	playlist bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "tagg [dir]",
		Short: "Interactively tag the MP3 files of an album",
		Long: `tagg reads the tags of every MP3 file in dir (default: the current
directory), asks for the album fields once and the track fields of every
file, then writes the tags and renames the files after confirmation.

On any prompt ":b" goes back to the previous field and ":q" quits
without writing anything.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) == 1 {
				dir = args[0]
			}
			return runTagger(cmd, flags, dir)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path (JSON or TOML)")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log details to stderr")
	rootCmd.Flags().BoolVar(&flags.plain, "plain", false, "Read answers line by line without terminal editing")
	rootCmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "Show the summary without writing any file")
	rootCmd.Flags().BoolVar(&flags.playlist, "playlist", false, "Create a playlist of the tagged files")

	rootCmd.AddCommand(newConfigCommand(&flags.config))

	return rootCmd
}

func runTagger(cmd *cobra.Command, flags rootFlags, dir string) error {
	settings, err := loadSettings(flags.config)
	if err != nil {
		return err
	}

	// Apply flags
	if flags.playlist {
		settings.CreatePlaylist = true
	}
	if flags.plain {
		settings.PlainInput = true
	}
	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Options{Level: level, Output: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	dir, err = app.ResolveDir(dir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history := editor.NewHistory(settings.HistorySize)
	reader := editor.NewReader(os.Stdin, cmd.OutOrStdout(), history, settings.PlainInput)

	tagger := app.New(app.Options{
		Settings: settings,
		Reader:   reader,
		Out:      cmd.OutOrStdout(),
		Logger:   logger,
		DryRun:   flags.dryRun,
	})
	err = tagger.Run(ctx, dir)
	if ctx.Err() != nil && err != nil {
		return context.Canceled
	}
	return err
}

// loadSettings reads path, or the default location when path is empty.
// A missing file yields the defaults.
func loadSettings(path string) (*config.Settings, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.DefaultSettings(), nil
		}
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return settings, nil
}
