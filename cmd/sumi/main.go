package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/sumi/internal/authlog"
	"github.com/tinytelemetry/sumi/internal/logsource"
	"github.com/tinytelemetry/sumi/internal/model"
	"github.com/tinytelemetry/sumi/internal/sudoers"
	"github.com/tinytelemetry/sumi/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var logPath string
	var groupPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/sumi/config.yml)")
	flag.StringVar(&logPath, "log", "", "override auth log path")
	flag.StringVar(&groupPath, "group", "", "override group file path")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Sumi - Sudo Log Viewer\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if logPath != "" {
		cfg.LogPath = logPath
	}
	if groupPath != "" {
		cfg.GroupPath = groupPath
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	lines, users, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	viewer := tui.NewViewerModel(tui.Options{
		LogPath:        cfg.LogPath,
		Lines:          lines,
		Report:         authlog.Classify(lines),
		Users:          users,
		RecentCommands: cfg.RecentCommands,
		TopCommands:    cfg.TopCommands,
	})
	app := tui.NewApp(viewer)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// loadInputs reads the auth log and the group file before the event loop
// starts. The two loads are independent; either failure is fatal.
func loadInputs(cfg cliConfig) ([]model.LogLine, *sudoers.Set, error) {
	var (
		lines []model.LogLine
		users *sudoers.Set
	)

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		if lines, err = logsource.Load(cfg.LogPath); err != nil {
			return fmt.Errorf("cannot read auth log %s: %w", cfg.LogPath, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if users, err = sudoers.Load(cfg.GroupPath); err != nil {
			return fmt.Errorf("cannot read group file %s: %w", cfg.GroupPath, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return lines, users, nil
}
