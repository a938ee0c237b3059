package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"barracks-report/internal/report"
)

func loadCSV(path string, logger *zap.Logger) ([]*report.Soldier, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readCSV(file, logger)
}

func readCSV(r io.Reader, logger *zap.Logger) ([]*report.Soldier, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySheet
		}
		return nil, fmt.Errorf("unable to read header: %w", err)
	}
	cols, err := locateColumns(headers)
	if err != nil {
		return nil, err
	}

	var slots []*report.Soldier
	line := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("unable to read CSV: %w", err)
		}
		line++
		if len(record) == 0 {
			continue
		}
		slots = append(slots, rowToSlot(record, cols, line, logger))
	}
	logger.Debug("loaded CSV roster", zap.Int("slots", len(slots)))
	return slots, nil
}
