// Package app bootstraps the viewer or, in serve mode, the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RolfLobo/dembrandt/internal/backend"
	"github.com/RolfLobo/dembrandt/internal/logging"
	"github.com/RolfLobo/dembrandt/internal/logging/events"
	"github.com/RolfLobo/dembrandt/internal/prefs"
	"github.com/RolfLobo/dembrandt/internal/route"
	"github.com/RolfLobo/dembrandt/internal/server"
	"github.com/RolfLobo/dembrandt/internal/source"
	"github.com/RolfLobo/dembrandt/internal/ui"
)

const (
	defaultResultsDir = "results"
	shutdownTimeout   = 10 * time.Second
)

// Config describes user-provided application options.
type Config struct {
	Dir        string
	Remote     string
	Serve      bool
	Listen     string
	Open       string
	Theme      string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	var (
		src     source.Source
		watcher *backend.Watcher
	)
	if cfg.Remote != "" {
		src = source.NewClient(cfg.Remote)
	} else {
		dir := resolveDir(cfg.Dir)
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("results directory: %w", err)
		}
		src = source.NewDir(dir)
		w, err := backend.NewWatcher(dir, backend.DefaultDebounce)
		if err != nil {
			// The viewer still works without change hints.
			logging.Errorf("directory watch unavailable: %v", err)
		} else {
			watcher = w
			defer watcher.Stop()
		}
	}

	pstore := prefs.NewStore()
	saved, err := pstore.Load()
	if err != nil {
		logging.Error(err)
	}

	themeName := cfg.Theme
	if themeName == "" {
		themeName = saved.Theme
	}
	initial := saved.LastLocation
	if cfg.Open != "" {
		initial = route.Encode(route.Site(cfg.Open))
	}

	model := ui.NewModel(src, watcher, pstore, ui.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		ShowFooter:      cfg.ShowFooter,
		Verbose:         cfg.Verbose,
		Theme:           themeName,
		InitialLocation: initial,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Serve exposes the results directory over HTTP until interrupted.
func Serve(cfg Config) error {
	dir := resolveDir(cfg.Dir)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("results directory: %w", err)
	}
	srv := server.New(cfg.Listen, source.NewDir(dir))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errc := make(chan error, 1)
	go func() {
		events.App.Serve(cfg.Listen)
		fmt.Printf("dembrandt serving %s on %s\n", dir, cfg.Listen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-done:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func resolveDir(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return defaultResultsDir
	}
	return dir
}
