package report

// Rank is a soldier's grade. Ranks listed earlier in Ranks are more senior.
type Rank string

const (
	RankSergeant       Rank = "병장"
	RankCorporal       Rank = "상병"
	RankPrivateFirst   Rank = "일병"
	RankPrivateRecruit Rank = "이병"
)

var Ranks = []Rank{RankSergeant, RankCorporal, RankPrivateFirst, RankPrivateRecruit}

// Index returns the seniority position of r, 0 being most senior.
// Unknown ranks sort after every known rank.
func (r Rank) Index() int {
	for i, known := range Ranks {
		if r == known {
			return i
		}
	}
	return len(Ranks)
}

var AbsencePresetReasons = []string{"근무", "휴가", "외출", "외박", "상황병", "입실", "외진"}

// IsPresetReason reports whether value is one of AbsencePresetReasons.
func IsPresetReason(value string) bool {
	for _, reason := range AbsencePresetReasons {
		if reason == value {
			return true
		}
	}
	return false
}

type AbsenceTrait struct {
	Absent bool `yaml:"absent" json:"absent"`
	// Reason is a preset reason; empty means CustomReason applies.
	Reason       string `yaml:"reason,omitempty" json:"reason,omitempty"`
	CustomReason string `yaml:"custom_reason,omitempty" json:"custom_reason,omitempty"`
}

// Label is the text an absence is counted under.
func (a AbsenceTrait) Label() string {
	if a.Reason != "" {
		return a.Reason
	}
	if a.CustomReason != "" {
		return a.CustomReason
	}
	return "열외"
}

type LeaveKind string

const (
	LeaveFull      LeaveKind = "휴가"
	LeaveWeekday   LeaveKind = "평일외출"
	LeaveWeekend   LeaveKind = "주말외출"
	LeaveOvernight LeaveKind = "외박"
)

var LeaveKinds = []LeaveKind{LeaveFull, LeaveWeekday, LeaveWeekend, LeaveOvernight}

type LeaveEntry struct {
	Kind      LeaveKind `yaml:"type" json:"type"`
	StartDate string    `yaml:"start" json:"start"`
	// EndDate is only read for full leave.
	EndDate string `yaml:"end,omitempty" json:"end,omitempty"`
}

type OutpatientTrait struct {
	Active bool   `yaml:"active" json:"active"`
	Date   string `yaml:"date,omitempty" json:"date,omitempty"`
	Place  string `yaml:"place,omitempty" json:"place,omitempty"`
}

type VisitTrait struct {
	Active  bool   `yaml:"active" json:"active"`
	Date    string `yaml:"date,omitempty" json:"date,omitempty"`
	Visitor string `yaml:"visitor,omitempty" json:"visitor,omitempty"`
}

type Traits struct {
	Absence    AbsenceTrait    `yaml:"absence" json:"absence"`
	Leaves     []LeaveEntry    `yaml:"leaves,omitempty" json:"leaves,omitempty"`
	Outpatient OutpatientTrait `yaml:"outpatient" json:"outpatient"`
	Visit      VisitTrait      `yaml:"visit" json:"visit"`
}

type Soldier struct {
	Rank   Rank   `yaml:"rank" json:"rank"`
	Name   string `yaml:"name" json:"name"`
	Traits Traits `yaml:"traits" json:"traits"`
}

type Religion string

var Religions = []Religion{"기독교", "천주교", "불교"}

type Training string

var Trainings = []Training{"사격", "체력 측정", "TCCC", "화생방", "정신전력"}

var trainingIcons = map[Training]string{
	"사격":    "🔫",
	"체력 측정": "🏃",
	"TCCC":  "🩹",
	"화생방":   "🥽",
	"정신전력":  "📖",
}

var trainingLabels = map[Training]string{
	"체력 측정": "체력측정",
}

func (t Training) label() string {
	if label, ok := trainingLabels[t]; ok {
		return label
	}
	return string(t)
}

type HaircutGroup struct {
	Enabled bool     `yaml:"enabled" json:"enabled"`
	Members []string `yaml:"members,omitempty" json:"members,omitempty"`
}

type DeliveryOrder struct {
	Date    string   `yaml:"date" json:"date"`
	Food    string   `yaml:"type" json:"type"`
	Members []string `yaml:"members" json:"members"`
}

// GroupSettings holds unit-wide configuration. Member lists reference
// soldiers by name.
type GroupSettings struct {
	Haircut         HaircutGroup          `yaml:"haircut" json:"haircut"`
	Religion        map[Religion][]string `yaml:"religion,omitempty" json:"religion,omitempty"`
	TrainingEnabled bool                  `yaml:"training_enabled" json:"training_enabled"`
	Training        map[Training][]string `yaml:"training,omitempty" json:"training,omitempty"`
	DeliveryEnabled bool                  `yaml:"delivery_enabled" json:"delivery_enabled"`
	DeliveryOrders  []DeliveryOrder       `yaml:"delivery_orders,omitempty" json:"delivery_orders,omitempty"`
}

type Note struct {
	Exists  bool   `yaml:"exists" json:"exists"`
	Details string `yaml:"details,omitempty" json:"details,omitempty"`
}

type OtherNotes struct {
	Assault Note `yaml:"assault" json:"assault"`
	Special Note `yaml:"special" json:"special"`
}

// Request is everything one render needs. It is built fresh by the caller
// and never retained.
type Request struct {
	Battery    string
	Room       string
	ReportDate string
	Slots      []*Soldier
	Group      GroupSettings
	Notes      OtherNotes
}
