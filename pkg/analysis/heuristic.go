package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

// HeuristicProvider scores a roster locally: a fairness score from the
// spread of assigned hours, total labor cost, and a few coverage insights.
type HeuristicProvider struct{}

// NewHeuristicProvider creates the local analyzer
func NewHeuristicProvider() *HeuristicProvider {
	return &HeuristicProvider{}
}

// AnalyzeRoster never fails; an empty roster scores as perfectly fair.
func (p *HeuristicProvider) AnalyzeRoster(_ context.Context, req Request) *models.AnalysisResult {
	defs := make(map[string]models.ShiftDefinition, len(req.Definitions))
	for _, d := range req.Definitions {
		defs[d.ID] = d
	}
	staff := make(map[string]models.Staff, len(req.Staff))
	for _, s := range req.Staff {
		staff[s.ID] = s
	}

	hoursByStaff := make(map[string]float64, len(req.Staff))
	workByDay := make(map[string]int, len(req.Days))
	var cost float64

	for _, a := range req.Assignments {
		def, ok := defs[a.Type]
		if !ok {
			continue
		}
		hoursByStaff[a.StaffID] += def.Hours
		if st, ok := staff[a.StaffID]; ok {
			cost += st.HourlyRate * def.Hours
		}
		if def.Category == models.CategoryWork {
			workByDay[a.Date]++
		}
	}

	insights := p.coverageInsights(req, workByDay, hoursByStaff)

	return &models.AnalysisResult{
		Score:    fairnessScore(req.Staff, hoursByStaff),
		Insights: insights,
		Cost:     math.Round(cost*100) / 100,
	}
}

func (p *HeuristicProvider) coverageInsights(req Request, workByDay map[string]int, hoursByStaff map[string]float64) []string {
	var insights []string

	understaffed := 0
	busyShort := 0
	for _, day := range req.Days {
		if workByDay[day.Date] < req.Settings.MinStaffPerDay {
			understaffed++
			if day.IsBusy {
				busyShort++
			}
		}
	}
	switch {
	case understaffed == 0 && len(req.Days) > 0:
		insights = append(insights, "Every day meets the minimum staffing target.")
	case understaffed > 0:
		insights = append(insights, fmt.Sprintf("%d of %d days are below the daily staffing minimum.", understaffed, len(req.Days)))
	}
	if busyShort > 0 {
		insights = append(insights, fmt.Sprintf("%d busy days (Fri/Sat) are understaffed.", busyShort))
	}

	idle := 0
	for _, st := range req.Staff {
		if hoursByStaff[st.ID] == 0 {
			idle++
		}
	}
	if idle > 0 {
		insights = append(insights, fmt.Sprintf("%d staff members have no assigned hours in this range.", idle))
	}

	if len(insights) == 0 {
		insights = append(insights, "No schedule data in the selected range yet.")
	}
	return insights
}

// fairnessScore converts the standard deviation of assigned hours into a
// 0-100 score. 100 means everyone carries the same load; 0 means the
// deviation is at least the mean.
func fairnessScore(staff []models.Staff, hoursByStaff map[string]float64) float64 {
	if len(staff) == 0 {
		return 100
	}

	var sum float64
	for _, st := range staff {
		sum += hoursByStaff[st.ID]
	}
	if sum == 0 {
		return 100
	}

	mean := sum / float64(len(staff))
	var varianceSum float64
	for _, st := range staff {
		diff := hoursByStaff[st.ID] - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(staff)))

	score := (1.0 - stdDev/mean) * 100.0
	if score < 0 {
		return 0
	}
	return math.Round(score)
}
