package roster

import (
	"math/rand"
	"sort"
	"time"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

// Generate runs the auto-fill heuristic over the visible range. Only OFF,
// unlocked assignments are ever promoted; locked and already-assigned slots
// survive untouched. Each day is filled independently in three passes:
//
//  1. per-definition staffing minimums (largest minimum first)
//  2. the global daily minimum of WORK assignments
//  3. fallback promotion of leftovers to PUBLIC_HOLIDAY, if configured
//
// Candidate selection is uniformly random and unseeded, so repeated runs
// redistribute unlocked assignments. This is a scheduling aid, not a solver.
func (s *Session) Generate() {
	s.generate(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func (s *Session) generate(r *rand.Rand) {
	if len(s.Definitions) == 0 {
		return
	}
	for _, day := range s.Days {
		s.fillTypeMinimums(day.Date, r)
		s.fillDailyMinimum(day.Date, r)
		s.fillRemainder(day.Date)
	}
}

// fillTypeMinimums satisfies each WORK definition's minRequired count.
// Existing assignments of the type, locked or manual, count toward the
// minimum; only the deficit is drawn from the candidate pool. The pool is
// recomputed per definition, so a candidate consumed by one definition is
// gone for the next.
func (s *Session) fillTypeMinimums(date string, r *rand.Rand) {
	workDefs := make([]models.ShiftDefinition, 0, len(s.Definitions))
	for _, def := range s.Definitions {
		if def.Category == models.CategoryWork {
			workDefs = append(workDefs, def)
		}
	}
	// Largest minimum first; stable keeps configured order on ties.
	sort.SliceStable(workDefs, func(i, j int) bool {
		return workDefs[i].MinRequired > workDefs[j].MinRequired
	})

	for _, def := range workDefs {
		if def.MinRequired <= 0 {
			continue
		}

		current := 0
		for _, a := range s.dayAssignments(date) {
			if a.Type == def.ID {
				current++
			}
		}
		if current >= def.MinRequired {
			continue
		}

		candidates := s.offCandidates(date, def.RequiredSkills)
		r.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		needed := def.MinRequired - current
		for i := 0; i < needed && i < len(candidates); i++ {
			candidates[i].Type = def.ID
		}
	}
}

// fillDailyMinimum promotes remaining candidates until the day carries at
// least Settings.MinStaffPerDay WORK assignments. The count is re-derived
// from current state, so phase-1 promotions and pre-existing manual or
// locked WORK entries all count. Each drawn candidate gets a uniformly
// random WORK definition it is skill-eligible for; candidates eligible for
// nothing are skipped.
func (s *Session) fillDailyMinimum(date string, r *rand.Rand) {
	total := 0
	for _, a := range s.dayAssignments(date) {
		if def, ok := s.definitionByID(a.Type); ok && def.Category == models.CategoryWork {
			total++
		}
	}
	if total >= s.Settings.MinStaffPerDay {
		return
	}

	candidates := s.offCandidates(date, nil)
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, cand := range candidates {
		if total >= s.Settings.MinStaffPerDay {
			break
		}
		st, ok := s.staffByID(cand.StaffID)
		if !ok {
			continue
		}

		var allowed []models.ShiftDefinition
		for _, def := range s.Definitions {
			if def.Category == models.CategoryWork && st.HasSkills(def.RequiredSkills) {
				allowed = append(allowed, def)
			}
		}
		if len(allowed) == 0 {
			continue
		}

		cand.Type = allowed[r.Intn(len(allowed))].ID
		total++
	}
}

// fillRemainder converts every still-OFF, unlocked assignment on the day to
// PUBLIC_HOLIDAY. Without that definition configured, leftovers stay OFF.
func (s *Session) fillRemainder(date string) {
	if _, ok := s.definitionByID(models.PublicHolidayID); !ok {
		return
	}
	for _, a := range s.dayAssignments(date) {
		if a.Type == models.TypeOff && !a.IsLocked {
			a.Type = models.PublicHolidayID
		}
	}
}

// offCandidates returns the day's OFF, unlocked assignments whose staff
// member covers the required skills. Pass nil to skip the skill filter.
func (s *Session) offCandidates(date string, requiredSkills []string) []*models.Assignment {
	var out []*models.Assignment
	for _, a := range s.dayAssignments(date) {
		if a.Type != models.TypeOff || a.IsLocked {
			continue
		}
		if requiredSkills != nil {
			st, ok := s.staffByID(a.StaffID)
			if !ok || !st.HasSkills(requiredSkills) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
