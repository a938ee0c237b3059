package report

import (
	"fmt"
	"sort"
	"time"
)

const (
	statusInProgress = "중입니다."
	statusScheduled  = "예정입니다."
)

type leaveItem struct {
	soldier *Soldier
	kind    LeaveKind
	start   time.Time
	end     time.Time
}

// effectiveLeave resolves an entry's date window. Outings last one day,
// an overnight pass ends the day after it starts and full leave needs an
// explicit end date. Incomplete or unknown entries report ok=false.
func effectiveLeave(entry LeaveEntry) (start, end time.Time, ok bool) {
	start, ok = parseOptional(entry.StartDate)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	switch entry.Kind {
	case LeaveFull:
		end, ok = parseOptional(entry.EndDate)
		if !ok || end.Before(start) {
			return time.Time{}, time.Time{}, false
		}
		return start, end, true
	case LeaveOvernight:
		return start, start.AddDate(0, 0, 1), true
	case LeaveWeekday, LeaveWeekend:
		return start, start, true
	}
	return time.Time{}, time.Time{}, false
}

func collectLeaves(roster Roster, today time.Time) []leaveItem {
	var items []leaveItem
	for _, s := range roster.Soldiers() {
		for _, entry := range s.Traits.Leaves {
			start, end, ok := effectiveLeave(entry)
			if !ok || end.Before(today) {
				continue
			}
			items = append(items, leaveItem{soldier: s, kind: entry.Kind, start: start, end: end})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].start.Equal(items[j].start) {
			return items[i].start.Before(items[j].start)
		}
		return items[i].soldier.Rank.Index() < items[j].soldier.Rank.Index()
	})
	return items
}

func (item leaveItem) line(today time.Time) string {
	status := statusScheduled
	if within(today, item.start, item.end) {
		status = statusInProgress
	}
	s := item.soldier
	switch item.kind {
	case LeaveFull, LeaveOvernight:
		return fmt.Sprintf("%s~%s %s %s %s %s",
			shortDate(item.start), shortDate(item.end), s.Rank, s.Name, item.kind, status)
	default:
		return fmt.Sprintf("%s %s %s %s %s", shortDate(item.start), s.Rank, s.Name, item.kind, status)
	}
}

func buildLeave(rc *renderContext) []string {
	lines := []string{"🏠 출타 ", ""}
	items := collectLeaves(rc.roster, rc.today)
	if len(items) == 0 {
		return append(lines, "-")
	}
	for _, item := range items {
		lines = append(lines, item.line(rc.today))
	}
	return lines
}
