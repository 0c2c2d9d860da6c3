package roster

import "github.com/shiftflow/roster-api-go/pkg/models"

// Metrics projects per-day labor cost and WORK coverage over the visible
// range. Pure read: nothing is cached or mutated, so it stays correct as
// assignments, staff or definitions change.
func (s *Session) Metrics() []models.DayMetrics {
	out := make([]models.DayMetrics, 0, len(s.Days))
	for _, day := range s.Days {
		m := models.DayMetrics{
			Date:    day.Date,
			DayName: day.DayName,
			Target:  s.Settings.MinStaffPerDay,
			IsBusy:  day.IsBusy,
		}
		for _, a := range s.dayAssignments(day.Date) {
			if a.Type == models.TypeOff {
				continue
			}
			def, okDef := s.definitionByID(a.Type)
			if !okDef {
				continue
			}
			if st, ok := s.staffByID(a.StaffID); ok {
				m.Cost += st.HourlyRate * def.Hours
			}
			if def.Category == models.CategoryWork {
				m.ActiveStaff++
			}
		}
		out = append(out, m)
	}
	return out
}
