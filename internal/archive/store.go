// Package archive keeps a history of rendered reports in Postgres.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"barracks-report/internal/report"
)

const connectTimeout = 12 * time.Second

var (
	ErrSchemaRequired = errors.New("db schema is required")
	ErrInvalidSchema  = errors.New("invalid schema name")

	schemaPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

type Store struct {
	db     *sql.DB
	schema string
	logger *zap.Logger
}

// Open connects to url with the pgx driver and verifies the connection.
func Open(ctx context.Context, url, schema string, logger *zap.Logger) (*Store, error) {
	schema, err := sanitizeSchema(schema)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db, schema: schema, logger: logger}, nil
}

// New wraps an existing connection pool.
func New(db *sql.DB, schema string, logger *zap.Logger) (*Store, error) {
	schema, err := sanitizeSchema(schema)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, schema: schema, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func sanitizeSchema(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrSchemaRequired
	}
	if !schemaPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %s", ErrInvalidSchema, value)
	}
	return value, nil
}

// Seed saves rep only when the archive holds no runs yet. It returns an
// empty run id when it skipped.
func (s *Store) Seed(ctx context.Context, rep report.Report, tag string) (string, error) {
	if err := s.EnsureSchema(ctx); err != nil {
		return "", err
	}
	var count int
	if err := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s.report_runs`, s.schema)).Scan(&count); err != nil {
		return "", err
	}
	if count > 0 {
		s.logger.Info("archive already holds reports; skipping seed", zap.Int("runs", count))
		return "", nil
	}
	return s.save(ctx, rep, tag)
}

// Save archives rep as a new run and returns its id.
func (s *Store) Save(ctx context.Context, rep report.Report, tag string) (string, error) {
	if err := s.EnsureSchema(ctx); err != nil {
		return "", err
	}
	return s.save(ctx, rep, tag)
}

func (s *Store) save(ctx context.Context, rep report.Report, tag string) (runID string, err error) {
	reportDate, err := report.ParseDate(rep.ReportDate)
	if err != nil {
		return "", err
	}
	id := uuid.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s.report_runs (
			id, report_date, battery, room, total_count,
			absent_count, present_count, body, run_tag
		) VALUES (
			$1,$2,$3,$4,$5,
			$6,$7,$8,$9
		)`, s.schema),
		id,
		reportDate,
		rep.Battery,
		rep.Room,
		rep.Total,
		rep.Absent,
		rep.Present,
		rep.Text,
		nullString(tag),
	)
	if err != nil {
		return "", fmt.Errorf("insert report run: %w", err)
	}

	insertSectionSQL := fmt.Sprintf(`
		INSERT INTO %s.report_sections (
			id, run_id, position, section, body
		) VALUES (
			$1,$2,$3,$4,$5
		)`, s.schema)

	for position, section := range rep.Sections {
		_, err = tx.ExecContext(ctx, insertSectionSQL,
			uuid.New(),
			id,
			position,
			section.Name,
			strings.Join(section.Lines, "\n"),
		)
		if err != nil {
			return "", fmt.Errorf("insert section %s: %w", section.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	s.logger.Info("archived report",
		zap.String("run_id", id.String()),
		zap.String("report_date", rep.ReportDate),
		zap.Int("sections", len(rep.Sections)))
	return id.String(), nil
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, s.schema)); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.report_runs (
			id uuid PRIMARY KEY,
			report_date date NOT NULL,
			battery text NOT NULL,
			room text NOT NULL,
			total_count integer NOT NULL,
			absent_count integer NOT NULL,
			present_count integer NOT NULL,
			body text NOT NULL,
			run_tag text,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, s.schema))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.report_sections (
			id uuid PRIMARY KEY,
			run_id uuid NOT NULL REFERENCES %s.report_runs(id) ON DELETE CASCADE,
			position integer NOT NULL,
			section text NOT NULL,
			body text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, s.schema, s.schema))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_report_runs_date_idx ON %s.report_runs (report_date)`, s.schema, s.schema))
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_report_sections_run_idx ON %s.report_sections (run_id)`, s.schema, s.schema))
	return err
}

func nullString(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
