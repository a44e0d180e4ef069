// Package app runs a complete tagging pass over one album directory.
//
// The flow is: find the tracks, edit the album fields once, edit the
// track fields of every file, show a summary, ask for confirmation and
// only then write the tags. Interrupting any session ends the run
// without touching a file.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/tagg/internal/album"
	"github.com/handiism/tagg/internal/audio"
	"github.com/handiism/tagg/internal/config"
	"github.com/handiism/tagg/internal/editor"
	"github.com/handiism/tagg/internal/finder"
	ioutils "github.com/handiism/tagg/internal/io"
	"github.com/handiism/tagg/internal/model"
	"github.com/handiism/tagg/internal/track"
)

// ErrNotDirectory is returned when the album path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

const confirmPrompt = "Continue? [y/n]: "

// Options configures an App.
type Options struct {
	// Settings defaults to config.DefaultSettings().
	Settings *config.Settings

	// Reader answers every prompt, including the confirmation.
	Reader editor.LineReader

	// Out receives the session output and the summary. Defaults to stdout.
	Out io.Writer

	// Logger defaults to a discarding logger.
	Logger *slog.Logger

	// DryRun stops after the summary.
	DryRun bool
}

// App tags the files of one album directory.
type App struct {
	settings *config.Settings
	reader   editor.LineReader
	out      io.Writer
	logger   *slog.Logger
	dryRun   bool
	finder   *finder.Finder
	images   *ioutils.ImageService
}

// New creates an App.
func New(opts Options) *App {
	if opts.Settings == nil {
		opts.Settings = config.DefaultSettings()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		settings: opts.Settings,
		reader:   opts.Reader,
		out:      opts.Out,
		logger:   opts.Logger,
		dryRun:   opts.DryRun,
		finder:   finder.New(opts.Settings.Extensions, opts.Settings.Concurrency),
		images:   ioutils.NewImageService(),
	}
}

// ResolveDir returns the album directory: arg, or the working directory
// when arg is empty.
func ResolveDir(arg string) (string, error) {
	if arg == "" {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return dir, nil
	}

	info, err := os.Stat(arg)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%s: %w", arg, ErrNotDirectory)
	}
	return filepath.Clean(arg), nil
}

// Run tags the tracks of dir. An interrupted session is not an error.
func (a *App) Run(ctx context.Context, dir string) error {
	items, err := a.finder.Find(ctx, dir)
	if err != nil {
		return fmt.Errorf("unable to find tracks: %w", err)
	}
	a.logger.Info("found tracks", "dir", dir, "count", len(items))

	opts := []editor.Option{
		editor.WithCommands(a.settings.Commands()),
		editor.WithOutput(a.out),
		editor.WithLogger(a.logger),
	}

	albumResult, err := album.NewEditor(album.FromFiles(items), a.reader, opts...).Run(ctx)
	if err != nil {
		return fmt.Errorf("edit album: %w", err)
	}
	if albumResult.Interrupted() {
		a.logger.Info("album session interrupted")
		return nil
	}
	fmt.Fprintln(a.out)

	outputs := make([]model.FileOutput, 0, len(items))
	for _, item := range items {
		fmt.Fprintln(a.out, item.Path)
		trackResult, err := track.NewEditor(track.FromFile(item), a.reader, opts...).Run(ctx)
		if err != nil {
			return fmt.Errorf("edit track %s: %w", item.Path, err)
		}
		if trackResult.Interrupted() {
			a.logger.Info("track session interrupted", "path", item.Path)
			return nil
		}

		out := model.FileOutput{Path: item.Path}
		albumResult.Record.ApplyTo(&out)
		trackResult.Record.ApplyTo(&out)
		outputs = append(outputs, out)
		fmt.Fprintln(a.out)
	}

	fmt.Fprintln(a.out, renderSummary(albumResult.Record, outputs, a.settings))

	if a.dryRun {
		fmt.Fprintln(a.out, "Dry run, no files changed.")
		return nil
	}

	ok, err := a.confirm(ctx)
	if err != nil || !ok {
		return err
	}
	return a.commit(ctx, dir, albumResult.Record, outputs)
}

// confirm asks until the answer is "y" or "n". Aborting the prompt counts
// as "n".
func (a *App) confirm(ctx context.Context) (bool, error) {
	for {
		answer, err := a.reader.ReadLine(ctx, confirmPrompt, editor.DefaultValue{})
		if errors.Is(err, editor.ErrInterrupted) || errors.Is(err, context.Canceled) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}

		switch strings.TrimSpace(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			fmt.Fprintln(a.out, "Wrong answer!")
		}
	}
}

// commit writes every file, then the playlist if enabled.
func (a *App) commit(ctx context.Context, dir string, rec album.Output, outputs []model.FileOutput) error {
	cfg := a.settings.ToTagConfig()
	if a.settings.EmbedCoverArt {
		cfg.Cover = a.loadCover(ctx, dir)
	}
	writer := audio.NewWriter(cfg).WithLogger(a.logger)

	written := make([]model.FileOutput, 0, len(outputs))
	for _, out := range outputs {
		path, err := writer.Write(ctx, out)
		if err != nil {
			return fmt.Errorf("could not write a file: %w", err)
		}
		fmt.Fprintf(a.out, "Tags written to %s\n", path)
		out.Path = path
		written = append(written, out)
	}

	if a.settings.CreatePlaylist {
		return a.writePlaylist(ctx, dir, rec, written)
	}
	return nil
}

// loadCover returns the prepared cover image of dir, or nil. Cover
// problems never stop tagging.
func (a *App) loadCover(ctx context.Context, dir string) []byte {
	path, err := ioutils.FindCoverArt(dir)
	if err != nil || path == "" {
		a.logger.Debug("no cover art", "dir", dir, "error", err)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.logger.Warn("read cover art", "path", path, "error", err)
		return nil
	}

	cover, err := a.images.PrepareCover(ctx, data, a.settings.CoverArtMaxSize)
	if err != nil {
		a.logger.Warn("prepare cover art", "path", path, "error", err)
		return nil
	}
	a.logger.Info("embedding cover art", "path", path, "bytes", len(cover))
	return cover
}

func (a *App) writePlaylist(ctx context.Context, dir string, rec album.Output, files []model.FileOutput) error {
	creator := audio.NewPlaylistCreator(a.settings.ToPlaylistFormat(), a.settings.M3UExtended)

	name := ioutils.SanitizeFileName(rec.Album)
	if name == "" {
		name = "playlist"
	}
	path := filepath.Join(dir, name+creator.Extension())

	content := creator.CreatePlaylist(rec.Album, files)
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	fmt.Fprintf(a.out, "Playlist written to %s\n", path)
	return nil
}
