package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"barracks-report/internal/archive"
	"barracks-report/internal/config"
	"barracks-report/internal/input"
	"barracks-report/internal/logging"
	"barracks-report/internal/report"
)

type options struct {
	rosterPath string
	groupPath  string
	date       string
	battery    string
	room       string
	outPath    string
	jsonPath   string
	dbEnabled  bool
	initDB     bool
	dbURL      string
	dbSchema   string
	dbTag      string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCommand(config.Load()).Execute(); err != nil {
		exitWithError(err)
	}
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	opts := &options{dbURL: cfg.Database.URL}
	cmd := &cobra.Command{
		Use:           "barracks-report",
		Short:         "Compose the daily barracks status report",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, time.Now())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.rosterPath, "roster", "", "Roster file (.yaml, .yml, .json, .csv, .xlsx)")
	flags.StringVar(&opts.groupPath, "group", "", "Optional group settings file (.yaml, .yml, .json); overrides the roster document's group")
	flags.StringVar(&opts.date, "date", "", "Report date (YYYY-MM-DD); default roster document date, then today")
	flags.StringVar(&opts.battery, "battery", "", "Battery name, e.g. 본부 or 3")
	flags.StringVar(&opts.room, "room", "", "Barracks room number")
	flags.StringVar(&opts.outPath, "out", "", "Write the report text to this file instead of stdout")
	flags.StringVar(&opts.jsonPath, "json", "", "Optional JSON output path")
	flags.BoolVar(&opts.dbEnabled, "db", false, "Archive the report in Postgres (requires BARRACKS_REPORT_DB_URL or DATABASE_URL)")
	flags.BoolVar(&opts.initDB, "init-db", false, "Initialize the archive schema and seed it with this report if empty")
	flags.StringVar(&opts.dbSchema, "db-schema", cfg.Database.Schema, "Postgres schema for archive tables")
	flags.StringVar(&opts.dbTag, "db-tag", "", "Optional label for this archived run")
	flags.StringVar(&opts.logLevel, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", cfg.Log.Format, "Log format (console, json)")
	return cmd
}

func run(ctx context.Context, stdout io.Writer, opts *options, now time.Time) error {
	if opts.rosterPath == "" {
		return errors.New("--roster is required")
	}

	logger, err := logging.New(opts.logLevel, opts.logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	doc, err := input.LoadRoster(opts.rosterPath, logger)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	if opts.groupPath != "" {
		group, err := input.LoadGroup(opts.groupPath)
		if err != nil {
			return fmt.Errorf("load group settings: %w", err)
		}
		doc.Group = group
	}

	req, err := buildRequest(opts, doc, now)
	if err != nil {
		return err
	}
	rep := report.Compose(req)
	logger.Info("composed report",
		zap.String("report_date", rep.ReportDate),
		zap.Int("total", rep.Total),
		zap.Int("absent", rep.Absent),
		zap.Int("sections", len(rep.Sections)))

	if err := writeText(rep.Text, opts.outPath, stdout); err != nil {
		return err
	}
	if opts.outPath != "" {
		logger.Info("report saved", zap.String("path", opts.outPath))
	}

	if opts.jsonPath != "" {
		if err := writeJSON(rep, opts.jsonPath); err != nil {
			return err
		}
		logger.Info("JSON report saved", zap.String("path", opts.jsonPath))
	}

	if opts.dbEnabled || opts.initDB {
		return archiveReport(ctx, rep, opts, logger)
	}
	return nil
}

// buildRequest resolves the unit context: flags win over the roster
// document, and the report date falls back to today.
func buildRequest(opts *options, doc *input.Document, now time.Time) (report.Request, error) {
	req := report.Request{
		Battery:    firstNonEmpty(opts.battery, doc.Battery),
		Room:       firstNonEmpty(opts.room, doc.Room),
		ReportDate: firstNonEmpty(opts.date, doc.ReportDate, now.Format("2006-01-02")),
		Slots:      doc.Slots,
		Group:      doc.Group,
		Notes:      doc.Notes,
	}
	if _, err := report.ParseDate(req.ReportDate); err != nil {
		return report.Request{}, fmt.Errorf("invalid report date: %w", err)
	}
	return req, nil
}

func archiveReport(ctx context.Context, rep report.Report, opts *options, logger *zap.Logger) error {
	if opts.dbURL == "" {
		return errors.New("database URL missing; set BARRACKS_REPORT_DB_URL or DATABASE_URL")
	}
	store, err := archive.Open(ctx, opts.dbURL, opts.dbSchema, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	seeded := false
	if opts.initDB {
		runID, err := store.Seed(ctx, rep, opts.dbTag)
		if err != nil {
			return err
		}
		if runID != "" {
			seeded = true
			logger.Info("seeded archive with initial report", zap.String("run_id", runID))
		}
	}
	if !opts.dbEnabled {
		return nil
	}
	if seeded {
		logger.Info("skipped duplicate insert; current report already used for seed")
		return nil
	}
	runID, err := store.Save(ctx, rep, opts.dbTag)
	if err != nil {
		return err
	}
	logger.Info("stored report in archive", zap.String("run_id", runID))
	return nil
}

func writeText(text, path string, stdout io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text+"\n"), 0644)
}

func writeJSON(rep report.Report, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
