package input

import (
	"strings"

	"go.uber.org/zap"

	"barracks-report/internal/report"
)

var (
	nameColumns    = []string{"name", "이름", "성명"}
	rankColumns    = []string{"rank", "계급"}
	absenceColumns = []string{"absence", "reason", "absence_reason", "열외", "열외사유"}
)

type columns struct {
	name    int
	rank    int
	absence int
}

func locateColumns(headers []string) (columns, error) {
	colMap := normalizeHeaders(headers)
	nameIdx, ok := findColumn(colMap, nameColumns)
	if !ok {
		return columns{}, ErrMissingNameColumn
	}
	rankIdx, _ := findColumn(colMap, rankColumns)
	absenceIdx, _ := findColumn(colMap, absenceColumns)
	return columns{name: nameIdx, rank: rankIdx, absence: absenceIdx}, nil
}

// rowToSlot returns nil for a row without a name so that the slot position
// is kept as an empty slot.
func rowToSlot(record []string, cols columns, line int, logger *zap.Logger) *report.Soldier {
	name := getValue(record, cols.name)
	if name == "" {
		return nil
	}
	soldier := &report.Soldier{
		Name: name,
		Rank: report.Rank(getValue(record, cols.rank)),
	}
	if soldier.Rank.Index() == len(report.Ranks) {
		logger.Warn("unknown rank, sorting last",
			zap.Int("line", line), zap.String("name", name), zap.String("rank", string(soldier.Rank)))
	}
	if reason := getValue(record, cols.absence); reason != "" {
		soldier.Traits.Absence.Absent = true
		if report.IsPresetReason(reason) {
			soldier.Traits.Absence.Reason = reason
		} else {
			soldier.Traits.Absence.CustomReason = reason
		}
	}
	return soldier
}

func normalizeHeaders(headers []string) map[string]int {
	result := make(map[string]int, len(headers))
	for idx, header := range headers {
		normalized := normalizeHeader(header)
		if _, exists := result[normalized]; !exists {
			result[normalized] = idx
		}
	}
	return result
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.TrimPrefix(value, "\ufeff")
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, "-", "")
	return value
}

func findColumn(headers map[string]int, names []string) (int, bool) {
	for _, name := range names {
		if idx, ok := headers[normalizeHeader(name)]; ok {
			return idx, true
		}
	}
	return -1, false
}

func getValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
