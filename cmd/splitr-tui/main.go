// splitr TUI — split bills with friends and keep running balances.
//
// Usage:
//
//	splitr-tui [flags]
//
// Flags:
//
//	--currency  Currency symbol shown with balances (default: ₹)
//	--no-seed   Start with an empty roster instead of the starter friends
//	--log-file  Append logs to this file (the TUI owns the terminal)
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Mr-Dark-debug/splitr/internal/config"
	"github.com/Mr-Dark-debug/splitr/internal/database"
	"github.com/Mr-Dark-debug/splitr/internal/ledger"
	"github.com/Mr-Dark-debug/splitr/internal/tui"
	"github.com/Mr-Dark-debug/splitr/pkg/logging"
	"github.com/Mr-Dark-debug/splitr/pkg/timeutil"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config.LoadEnvFile()
	cfg := config.Load()

	flag.StringVar(&cfg.Currency, "currency", cfg.Currency, "Currency symbol shown with balances")
	noSeed := flag.Bool("no-seed", !cfg.SeedFriends, "Start with an empty roster")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file")
	flag.Parse()
	cfg.SeedFriends = !*noSeed

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		closer, err := logging.SetupFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer closer.Close()
	} else {
		logging.Discard()
	}

	store, err := database.NewDBService(database.MemoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	opts := []ledger.Option{ledger.WithAvatarBase(cfg.AvatarBase)}
	if cfg.SeedFriends {
		seed := ledger.SeedFriends()
		if err := database.RecordRoster(store, seed, timeutil.NowNano()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to journal starter friends: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, ledger.WithFriends(seed...))
	}

	session := ledger.NewSession(opts...)
	slog.Info("session started", "friends", len(session.Friends()), "currency", cfg.Currency)

	model := tui.NewModel(session, store, cfg.Currency)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
