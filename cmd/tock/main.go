package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tocktui/tock/internal/clock"
	"github.com/tocktui/tock/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/tock/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Tock - Terminal Clock\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	skin, err := tui.LoadSkin(cfg.Skin)
	if err != nil {
		return err
	}

	style, err := clock.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}

	model := tui.NewModel(clock.SystemSource{}, style, cfg.Footer, skin)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("tock requires a real terminal")
		}
		return fmt.Errorf("running clock: %w", err)
	}

	return nil
}
