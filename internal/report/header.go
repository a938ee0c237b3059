package report

import (
	"fmt"
	"strings"
)

type headcount struct {
	Total   int
	Absent  int
	Present int
}

// countHeads returns the absentees in slot order, which fixes the
// first-seen order of the reason breakdown.
func countHeads(roster Roster) (headcount, []*Soldier) {
	var absent []*Soldier
	for _, s := range roster.InSlotOrder() {
		if s.Traits.Absence.Absent {
			absent = append(absent, s)
		}
	}
	total := roster.Len()
	return headcount{Total: total, Absent: len(absent), Present: total - len(absent)}, absent
}

// absenceBreakdown counts absentees by display label in first-seen order:
// "근무 2 아픔 1". A preset and a free-text reason with the same text
// share one bucket.
func absenceBreakdown(absent []*Soldier) string {
	var order []string
	counts := map[string]int{}
	for _, s := range absent {
		label := s.Traits.Absence.Label()
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}
	parts := make([]string, 0, len(order))
	for _, label := range order {
		parts = append(parts, fmt.Sprintf("%s %d", label, counts[label]))
	}
	return strings.Join(parts, " ")
}

func buildHeader(rc *renderContext) []string {
	counts, absent := countHeads(rc.roster)
	lines := []string{unitLabel(rc.req.Battery, rc.req.Room)}
	if counts.Absent == 0 {
		return append(lines, fmt.Sprintf("총원 %d 현재원 %d입니다.", counts.Total, counts.Present))
	}
	return append(lines,
		fmt.Sprintf("총원 %d 열외 %d", counts.Total, counts.Absent),
		fmt.Sprintf("열외내용 %s%s 제외한 현재원 %d입니다.",
			absenceBreakdown(absent), ObjectParticle(counts.Present), counts.Present),
	)
}
