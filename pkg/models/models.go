package models

// ShiftCategory differentiates working shifts from leave types
type ShiftCategory string

const (
	CategoryWork  ShiftCategory = "WORK"
	CategoryLeave ShiftCategory = "LEAVE"
)

// TypeOff is the sentinel assignment type meaning "unassigned".
// It is not a ShiftDefinition id.
const TypeOff = "OFF"

// PublicHolidayID identifies the fallback definition used by phase 3
// of the fill engine, when configured.
const PublicHolidayID = "PUBLIC_HOLIDAY"

// Staff represents a person on the roster
type Staff struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	HourlyRate float64  `json:"hourly_rate"`
	Skills     []string `json:"skills"`
	Avatar     string   `json:"avatar,omitempty"`
}

// HasSkills reports whether the staff member covers every required skill.
// An empty requirement list accepts anyone.
func (s Staff) HasSkills(required []string) bool {
	for _, req := range required {
		found := false
		for _, skill := range s.Skills {
			if skill == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ShiftDefinition is a configured category of work or leave
type ShiftDefinition struct {
	ID             string        `json:"id"`
	Label          string        `json:"label"`
	TimeRange      string        `json:"time_range"`
	Hours          float64       `json:"hours"`
	Color          string        `json:"color,omitempty"`
	RequiredSkills []string      `json:"required_skills"`
	MinRequired    int           `json:"min_required"`
	Category       ShiftCategory `json:"category"`
}

// AppSettings holds the global roster settings
type AppSettings struct {
	MinStaffPerDay int `json:"min_staff_per_day"`
}

// Day describes one calendar day in the visible range
type Day struct {
	Date    string `json:"date"` // YYYY-MM-DD
	DayName string `json:"day_name"`
	IsBusy  bool   `json:"is_busy"`
}

// Assignment maps one staff member to one day's shift type (or OFF).
// OriginalType records the pre-edit type the first time the assignment
// is manually changed; nil means no baseline has been recorded yet.
type Assignment struct {
	ID           string  `json:"id"` // "{staffID}-{date}"
	StaffID      string  `json:"staff_id"`
	Date         string  `json:"date"`
	Type         string  `json:"type"` // ShiftDefinition.ID or TypeOff
	IsLocked     bool    `json:"is_locked"`
	OriginalType *string `json:"original_type,omitempty"`
}

// AssignmentID derives the composite assignment key
func AssignmentID(staffID, date string) string {
	return staffID + "-" + date
}

// AnalysisResult is the response shape every analysis provider must honor
type AnalysisResult struct {
	Score    float64  `json:"score"`
	Insights []string `json:"insights"`
	Cost     float64  `json:"cost"`
}

// DayMetrics are the derived per-day cost/coverage projections
type DayMetrics struct {
	Date        string  `json:"date"`
	DayName     string  `json:"day_name"`
	Cost        float64 `json:"cost"`
	ActiveStaff int     `json:"active_staff"`
	Target      int     `json:"target"`
	IsBusy      bool    `json:"is_busy"`
}

// RosterInput is the payload for the stateless generate endpoint
type RosterInput struct {
	Staff       []Staff           `json:"staff"`
	Definitions []ShiftDefinition `json:"definitions"`
	Settings    AppSettings       `json:"settings"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Assignments []Assignment      `json:"assignments,omitempty"`
}

// RosterOutput is the stateless generate response
type RosterOutput struct {
	Days        []Day        `json:"days"`
	Assignments []Assignment `json:"assignments"`
	Metrics     []DayMetrics `json:"metrics"`
}
