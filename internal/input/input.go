// Package input loads report inputs from disk: full YAML/JSON documents,
// or flat CSV/XLSX rosters with one soldier per row.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"barracks-report/internal/report"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrMissingNameColumn = errors.New("missing name column")
	ErrEmptySheet        = errors.New("roster has no header row")
)

// Document is a complete report input. Flat rosters fill only Slots.
type Document struct {
	Battery    string               `yaml:"battery"`
	Room       string               `yaml:"room"`
	ReportDate string               `yaml:"report_date"`
	Slots      []*report.Soldier    `yaml:"slots"`
	Group      report.GroupSettings `yaml:"group"`
	Notes      report.OtherNotes    `yaml:"notes"`
}

// LoadRoster reads path according to its extension.
func LoadRoster(path string, logger *zap.Logger) (*Document, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		doc := &Document{}
		if err := decodeFile(path, doc); err != nil {
			return nil, err
		}
		logger.Debug("loaded roster document", zap.String("path", path), zap.Int("slots", len(doc.Slots)))
		return doc, nil
	case ".csv":
		slots, err := loadCSV(path, logger)
		if err != nil {
			return nil, err
		}
		return &Document{Slots: slots}, nil
	case ".xlsx":
		slots, err := loadXLSX(path, logger)
		if err != nil {
			return nil, err
		}
		return &Document{Slots: slots}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadGroup reads a YAML or JSON group settings document.
func LoadGroup(path string) (report.GroupSettings, error) {
	var group report.GroupSettings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
	default:
		return group, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := decodeFile(path, &group); err != nil {
		return report.GroupSettings{}, err
	}
	return group, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unable to decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
