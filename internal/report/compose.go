// Package report composes the daily barracks status message from a roster
// snapshot, the unit's group settings and a report date. Rendering is a pure
// function of its input: no I/O, no clock, no shared state.
package report

import (
	"strings"
	"time"
)

type renderContext struct {
	req    Request
	roster Roster
	today  time.Time
}

type sectionBuilder struct {
	name  string
	build func(*renderContext) []string
}

// sections is the fixed output order.
var sections = []sectionBuilder{
	{"header", buildHeader},
	{"leave", buildLeave},
	{"religion", buildReligion},
	{"outpatient", buildOutpatient},
	{"visit", buildVisit},
	{"haircut", buildHaircut},
	{"training", buildTraining},
	{"delivery", buildDelivery},
	{"notes", buildNotes},
}

type Section struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

type Report struct {
	ReportDate string    `json:"report_date"`
	Battery    string    `json:"battery"`
	Room       string    `json:"room"`
	Total      int       `json:"total"`
	Absent     int       `json:"absent"`
	Present    int       `json:"present"`
	Sections   []Section `json:"sections"`
	Text       string    `json:"text"`
}

// Compose renders every section and joins the non-empty ones with a blank
// line. An unparsable report date is the caller's problem: it is treated as
// the zero date and nothing is filtered out as past.
func Compose(req Request) Report {
	today, _ := parseOptional(req.ReportDate)
	rc := &renderContext{req: req, roster: Normalize(req.Slots), today: today}
	counts, _ := countHeads(rc.roster)

	out := Report{
		ReportDate: req.ReportDate,
		Battery:    req.Battery,
		Room:       req.Room,
		Total:      counts.Total,
		Absent:     counts.Absent,
		Present:    counts.Present,
	}
	var lines []string
	for _, section := range sections {
		sectionLines := section.build(rc)
		if len(sectionLines) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, sectionLines...)
		out.Sections = append(out.Sections, Section{Name: section.name, Lines: sectionLines})
	}
	out.Text = strings.Join(lines, "\n")
	return out
}

// Render returns the report text for req.
func Render(req Request) string {
	return Compose(req).Text
}
