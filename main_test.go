package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barracks-report/internal/config"
	"barracks-report/internal/input"
	"barracks-report/internal/report"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildRequestPrecedence(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	doc := &input.Document{Battery: "본부", Room: "1", ReportDate: "2026-03-01"}

	req, err := buildRequest(&options{}, doc, now)
	require.NoError(t, err)
	assert.Equal(t, "본부", req.Battery)
	assert.Equal(t, "1", req.Room)
	assert.Equal(t, "2026-03-01", req.ReportDate)

	req, err = buildRequest(&options{battery: "2", room: "4", date: "2026-03-05"}, doc, now)
	require.NoError(t, err)
	assert.Equal(t, "2", req.Battery)
	assert.Equal(t, "4", req.Room)
	assert.Equal(t, "2026-03-05", req.ReportDate)

	req, err = buildRequest(&options{}, &input.Document{}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", req.ReportDate)
}

func TestBuildRequestRejectsBadDate(t *testing.T) {
	_, err := buildRequest(&options{date: "10/03/2026"}, &input.Document{}, time.Now())
	assert.Error(t, err)
}

func TestRunWritesTextAndJSON(t *testing.T) {
	roster := writeTemp(t, "roster.csv", "계급,이름,열외\n상병,나트륨,\n병장,칼슘,근무\n일병,수소,\n")
	group := writeTemp(t, "group.yaml", "haircut:\n  enabled: true\n  members: [수소, 나트륨]\n")
	jsonPath := filepath.Join(t.TempDir(), "report.json")

	var stdout bytes.Buffer
	opts := &options{
		rosterPath: roster,
		groupPath:  group,
		date:       "2026-03-10",
		battery:    "본부",
		room:       "1",
		jsonPath:   jsonPath,
		logLevel:   "error",
		logFormat:  "json",
	}
	require.NoError(t, run(context.Background(), &stdout, opts, time.Now()))

	text := stdout.String()
	assert.True(t, strings.HasPrefix(text, "본부포대 1생활관 \n총원 3 열외 1\n열외내용 근무 1를 제외한 현재원 2입니다.\n"))
	assert.Contains(t, text, "💈 민간이발\n상병 나트륨, 일병 수소 희망합니다.")

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded report.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 3, decoded.Total)
	assert.Equal(t, 1, decoded.Absent)
	assert.Equal(t, strings.TrimSuffix(text, "\n"), decoded.Text)
}

func TestRunWritesOutFile(t *testing.T) {
	roster := writeTemp(t, "roster.yaml", "battery: \"2\"\nroom: \"3\"\nreport_date: \"2026-03-10\"\nslots:\n  - rank: 이병\n    name: 수소\n")
	outPath := filepath.Join(t.TempDir(), "report.txt")

	var stdout bytes.Buffer
	opts := &options{rosterPath: roster, outPath: outPath, logLevel: "error", logFormat: "json"}
	require.NoError(t, run(context.Background(), &stdout, opts, time.Now()))

	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "2포대 3생활관 \n총원 1 현재원 1입니다.\n"))
}

func TestRunRequiresRoster(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, &options{logLevel: "error"}, time.Now())
	assert.EqualError(t, err, "--roster is required")
}

func TestRunRequiresDatabaseURLForArchive(t *testing.T) {
	roster := writeTemp(t, "roster.csv", "name,rank\n수소,이병\n")
	opts := &options{rosterPath: roster, date: "2026-03-10", dbEnabled: true, logLevel: "error", logFormat: "json"}

	err := run(context.Background(), &bytes.Buffer{}, opts, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL missing")
}

func TestRootCommandFlags(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Schema = "unit_reports"
	cfg.Log.Level = "warn"
	cfg.Log.Format = "json"

	cmd := newRootCommand(cfg)
	roster := writeTemp(t, "roster.csv", "name,rank\n수소,이병\n")
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--roster", roster, "--date", "2026-03-10", "--room", "5", "--battery", "1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "1포대 5생활관 ")
	assert.Contains(t, stdout.String(), "5생활관 병기본 희망자 없습니다.")

	schema, err := cmd.Flags().GetString("db-schema")
	require.NoError(t, err)
	assert.Equal(t, "unit_reports", schema)
}
