package input

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"barracks-report/internal/report"
)

// loadXLSX reads the first sheet with the same header rules as CSV.
func loadXLSX(path string, logger *zap.Logger) ([]*report.Soldier, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	cols, err := locateColumns(rows[0])
	if err != nil {
		return nil, err
	}

	slots := make([]*report.Soldier, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		slots = append(slots, rowToSlot(rows[i], cols, i+1, logger))
	}
	logger.Debug("loaded XLSX roster", zap.String("sheet", sheetName), zap.Int("slots", len(slots)))
	return slots, nil
}
