package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sbfarley/gauchowar/internal/aggregate"
	"github.com/sbfarley/gauchowar/internal/config"
	"github.com/sbfarley/gauchowar/internal/fetch"
	"github.com/sbfarley/gauchowar/internal/logger"
	"github.com/sbfarley/gauchowar/internal/pipeline"
	"github.com/sbfarley/gauchowar/internal/player"
	"github.com/sbfarley/gauchowar/internal/report"
	"github.com/sbfarley/gauchowar/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig    string
	flagDataDir   string
	flagFormat    string
	flagVerbose   bool
	flagStartYear int
	flagEndYear   int
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gauchowar",
		Short: "Compare in-state vs out-of-state WAR for UCSB baseball rosters",
		Long: `Scrapes public roster/stats pages for a collegiate baseball program across
seasons, computes a simplified WAR per player-season, and compares in-state
(California) against out-of-state players by position.`,
		RunE: runScrape,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (overrides config)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().IntVar(&flagStartYear, "start-year", 0, "First season to process (overrides config)")
	cmd.Flags().IntVar(&flagEndYear, "end-year", 0, "Last season to process (overrides config)")

	cmd.AddCommand(newAnalyzeCmd())

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Recompute the WAR comparison from the last scrape snapshot",
		RunE:  runAnalyze,
	}
}

// loadConfig merges the config file, environment, and flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDataDir != "" {
		cfg.Output.DataDir = flagDataDir
	}
	if flagStartYear != 0 {
		cfg.Years.Start = flagStartYear
	}
	if flagEndYear != 0 {
		cfg.Years.End = flagEndYear
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the run logger, which also becomes the package default.
func newLogger(cfg *config.Config) *logger.Logger {
	level := logger.ParseLevel(cfg.Logging.Level)
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)
	logger.SetDefault(log)
	return log
}

func parseFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// runScrape is the full pipeline: scrape, snapshot, aggregate, report.
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := parseFormat()
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.Output.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	client := fetch.New(fetch.Options{
		UserAgent:      cfg.Fetch.UserAgent,
		Timeout:        cfg.Fetch.Timeout(),
		RequestsPerSec: cfg.Fetch.RequestsPerSec,
		Burst:          cfg.Fetch.Burst,
		MaxRetries:     uint64(cfg.Fetch.Retry.MaxAttempts - 1),
		InitialDelay:   cfg.Fetch.Retry.InitialDelay(),
		MaxDelay:       cfg.Fetch.Retry.MaxDelay(),
	})

	records, err := pipeline.New(cfg, client, newLogger(cfg)).Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	if err := store.SaveSnapshot(records, cfg.Years.Start, cfg.Years.End); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	playersPath := filepath.Join(store.Dir(), cfg.Output.PlayersCSV)
	if err := writePlayersCSV(playersPath, records); err != nil {
		return err
	}

	summaries := aggregate.Aggregate(records)

	analysisPath := filepath.Join(store.Dir(), cfg.Output.AnalysisCSV)
	if err := writeSummaryCSV(analysisPath, summaries); err != nil {
		return err
	}

	result := &Result{
		GeneratedAt: time.Now().UTC(),
		StartYear:   cfg.Years.Start,
		EndYear:     cfg.Years.End,
		PlayerCount: len(records),
		Summaries:   summaries,
	}
	return WriteOutput(os.Stdout, result, format)
}

// runAnalyze re-aggregates the persisted snapshot.
func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := parseFormat()
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.Output.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	snap, err := store.LoadSnapshot()
	if err != nil {
		return err
	}

	summaries := aggregate.Aggregate(snap.Players)

	analysisPath := filepath.Join(store.Dir(), cfg.Output.AnalysisCSV)
	if err := writeSummaryCSV(analysisPath, summaries); err != nil {
		return err
	}

	result := &Result{
		GeneratedAt: time.Now().UTC(),
		StartYear:   snap.StartYear,
		EndYear:     snap.EndYear,
		PlayerCount: len(snap.Players),
		Summaries:   summaries,
	}
	return WriteOutput(os.Stdout, result, format)
}

func writePlayersCSV(path string, records []*player.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := report.WritePlayersCSV(f, records); err != nil {
		return fmt.Errorf("writing player metrics: %w", err)
	}
	return nil
}

func writeSummaryCSV(path string, summaries []aggregate.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := report.WriteSummaryCSV(f, summaries); err != nil {
		return fmt.Errorf("writing analysis: %w", err)
	}
	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
