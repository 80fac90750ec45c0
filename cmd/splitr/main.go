// splitr CLI — non-interactive bill splitting and scripted sessions.
//
// Usage:
//
//	splitr <command> [flags]
//
// Commands:
//
//	split     Compute the balance change for one bill
//	replay    Run an action script and print the balance report
//	version   Print version information
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mr-Dark-debug/splitr/internal/config"
	"github.com/Mr-Dark-debug/splitr/internal/database"
	"github.com/Mr-Dark-debug/splitr/internal/ledger"
	"github.com/Mr-Dark-debug/splitr/internal/report"
	"github.com/Mr-Dark-debug/splitr/internal/script"
	"github.com/Mr-Dark-debug/splitr/pkg/logging"
	"github.com/Mr-Dark-debug/splitr/pkg/timeutil"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	config.LoadEnvFile()
	cfg := config.Load()
	logging.Setup(os.Stderr, cfg.LogLevel)

	switch os.Args[1] {
	case "split":
		cmdSplit()
	case "replay":
		if err := cmdReplay(cfg); err != nil {
			slog.Error("replay failed", "error", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("splitr v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`splitr — split bills with friends

Usage:
  splitr <command> [flags]

Commands:
  split      Compute the balance change for one bill
  replay     Run an action script and print the balance report
  version    Print version information

Run 'splitr <command> --help' for details on each command.
Run 'splitr-tui' for the interactive interface.`)
}

// cmdSplit prints the delta a bill would apply to the friend's balance.
func cmdSplit() {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	bill := fs.Int64("bill", 0, "Total bill value (required)")
	paid := fs.Int64("paid", 0, "Your expense (required)")
	payerName := fs.String("payer", "user", "Who paid the bill: user or friend")
	fs.Parse(os.Args[2:])

	payer, err := ledger.ParsePayer(*payerName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := ledger.Bill{Total: *bill, PaidByUser: *paid, Payer: payer}
	if !b.Ready() {
		fmt.Fprintln(os.Stderr, "Error: --bill and --paid must both be non-zero")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Printf("Friend's expense: %d\n", b.PaidByFriend())
	fmt.Printf("Balance change:   %+d\n", b.Delta())
}

// cmdReplay runs a script against a fresh session and reports balances.
func cmdReplay(cfg *config.Config) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	scriptPath := fs.String("script", "-", "Action script file, or - for stdin")
	outputFormat := fs.String("format", "markdown", "Output format: markdown, json")
	currency := fs.String("currency", cfg.Currency, "Currency symbol")
	noSeed := fs.Bool("no-seed", !cfg.SeedFriends, "Start with an empty roster")
	fs.Parse(os.Args[2:])

	cfg.Currency = *currency
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *outputFormat != "markdown" && *outputFormat != "json" {
		return fmt.Errorf("unknown format: %s", *outputFormat)
	}

	var in io.Reader = os.Stdin
	if *scriptPath != "-" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	actions, err := script.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}

	store, err := database.NewDBService(database.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening session journal: %w", err)
	}
	defer store.Close()

	opts := []ledger.Option{ledger.WithAvatarBase(cfg.AvatarBase)}
	if !*noSeed {
		seed := ledger.SeedFriends()
		if err := database.RecordRoster(store, seed, timeutil.NowNano()); err != nil {
			return fmt.Errorf("journaling starter friends: %w", err)
		}
		opts = append(opts, ledger.WithFriends(seed...))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := script.NewRunner(store).Run(ctx, ledger.NewSession(opts...), actions)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	slog.Info("replay finished", "applied", res.Applied, "suppressed", res.Suppressed)

	rep := report.NewReporter(store, cfg.Currency).Build(res.Session.Friends())

	if *outputFormat == "json" {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}
	fmt.Print(report.FormatReport(rep))
	return nil
}
