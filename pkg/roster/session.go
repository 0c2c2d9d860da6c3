package roster

import (
	"sort"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

// Session holds one in-memory roster: the staff list, shift definitions,
// global settings, the visible day range and every assignment ever
// materialized for it. Assignments are created lazily per (staff, day)
// pair and never deleted, only mutated, so history survives when a range
// scrolls out of view and back.
//
// A Session is not safe for concurrent use; the Store serializes access.
type Session struct {
	Staff       []models.Staff
	Definitions []models.ShiftDefinition
	Settings    models.AppSettings
	Days        []models.Day

	// Analysis holds the most recently completed analysis result, if any.
	// It is advisory UI state, reset whenever the range changes or the
	// roster is cleared.
	Analysis *models.AnalysisResult

	assignments map[string]*models.Assignment
}

// NewSession creates a session with no visible range yet
func NewSession(staff []models.Staff, defs []models.ShiftDefinition, settings models.AppSettings) *Session {
	return &Session{
		Staff:       staff,
		Definitions: defs,
		Settings:    settings,
		assignments: make(map[string]*models.Assignment),
	}
}

// SetRange replaces the visible day range and materializes an OFF, unlocked
// assignment for every (staff, visible day) pair not already present.
// Idempotent: re-invoking with the same range creates nothing new.
func (s *Session) SetRange(startDate, endDate string) []models.Day {
	s.Days = GenerateDays(startDate, endDate)
	for _, st := range s.Staff {
		for _, d := range s.Days {
			id := models.AssignmentID(st.ID, d.Date)
			if _, ok := s.assignments[id]; !ok {
				s.assignments[id] = &models.Assignment{
					ID:      id,
					StaffID: st.ID,
					Date:    d.Date,
					Type:    models.TypeOff,
				}
			}
		}
	}
	return s.Days
}

// Prefill overlays previously saved assignments onto the materialized set.
// Pairs outside the known set are ignored; an empty type keeps the slot OFF.
func (s *Session) Prefill(assignments []models.Assignment) {
	for _, in := range assignments {
		a, ok := s.assignments[models.AssignmentID(in.StaffID, in.Date)]
		if !ok {
			continue
		}
		if in.Type != "" {
			a.Type = in.Type
		}
		a.IsLocked = in.IsLocked
		a.OriginalType = in.OriginalType
	}
}

// Assignment looks up one assignment by its composite id
func (s *Session) Assignment(id string) (*models.Assignment, bool) {
	a, ok := s.assignments[id]
	return a, ok
}

// Cycle advances an assignment's type through [OFF, def1, def2, ...],
// wrapping after the last definition back to OFF. Locked or missing
// assignments ignore the operation. The pre-change type is recorded as the
// original type the first time the assignment is manually edited; once set
// it stays until Clear.
func (s *Session) Cycle(id string) *models.Assignment {
	a, ok := s.assignments[id]
	if !ok || a.IsLocked {
		return a
	}

	cycle := make([]string, 0, len(s.Definitions)+1)
	cycle = append(cycle, models.TypeOff)
	for _, def := range s.Definitions {
		cycle = append(cycle, def.ID)
	}

	// A type referencing a since-deleted definition misses the lookup and
	// cycles back to OFF.
	current := -1
	for i, t := range cycle {
		if t == a.Type {
			current = i
			break
		}
	}

	if a.OriginalType == nil {
		prev := a.Type
		a.OriginalType = &prev
	}
	a.Type = cycle[(current+1)%len(cycle)]
	return a
}

// ToggleLock flips the lock flag; type and original type are untouched.
// Missing assignments are a no-op.
func (s *Session) ToggleLock(id string) *models.Assignment {
	a, ok := s.assignments[id]
	if !ok {
		return nil
	}
	a.IsLocked = !a.IsLocked
	return a
}

// Clear resets every visible, unlocked assignment to OFF and drops its
// recorded original type. Locked assignments are left untouched. Unlocked
// manual entries are cleared too; locking is how users protect them.
func (s *Session) Clear() {
	visible := s.visibleDates()
	for _, a := range s.assignments {
		if visible[a.Date] && !a.IsLocked {
			a.Type = models.TypeOff
			a.OriginalType = nil
		}
	}
}

// VisibleAssignments returns the assignments for the current range,
// ordered by date then staff id for stable rendering.
func (s *Session) VisibleAssignments() []models.Assignment {
	visible := s.visibleDates()
	out := make([]models.Assignment, 0, len(s.Days)*len(s.Staff))
	for _, a := range s.assignments {
		if visible[a.Date] {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StaffID < out[j].StaffID
	})
	return out
}

// StaffHistory returns one staff member's non-OFF assignments across the
// whole session, oldest first.
func (s *Session) StaffHistory(staffID string) []models.Assignment {
	var out []models.Assignment
	for _, a := range s.assignments {
		if a.StaffID == staffID && a.Type != models.TypeOff {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// staffByID finds a roster member; ok is false for unknown ids
func (s *Session) staffByID(id string) (models.Staff, bool) {
	for _, st := range s.Staff {
		if st.ID == id {
			return st, true
		}
	}
	return models.Staff{}, false
}

// definitionByID finds a configured definition; ok is false for OFF and
// unknown ids
func (s *Session) definitionByID(id string) (models.ShiftDefinition, bool) {
	for _, def := range s.Definitions {
		if def.ID == id {
			return def, true
		}
	}
	return models.ShiftDefinition{}, false
}

func (s *Session) visibleDates() map[string]bool {
	dates := make(map[string]bool, len(s.Days))
	for _, d := range s.Days {
		dates[d.Date] = true
	}
	return dates
}

// dayAssignments returns the materialized assignments for one date
func (s *Session) dayAssignments(date string) []*models.Assignment {
	var out []*models.Assignment
	for _, a := range s.assignments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffID < out[j].StaffID })
	return out
}
