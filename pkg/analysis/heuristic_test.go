package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

func heuristicRequest() Request {
	return Request{
		Staff: []models.Staff{
			{ID: "a", Name: "Amy", HourlyRate: 20},
			{ID: "b", Name: "Ben", HourlyRate: 15},
		},
		Definitions: []models.ShiftDefinition{
			{ID: "MORNING", Hours: 6, Category: models.CategoryWork},
			{ID: "PAID_LEAVE", Hours: 8, Category: models.CategoryLeave},
		},
		Days: []models.Day{
			{Date: "2024-01-01", DayName: "Mon"},
			{Date: "2024-01-05", DayName: "Fri", IsBusy: true},
		},
		Settings: models.AppSettings{MinStaffPerDay: 1},
	}
}

func TestHeuristic_EmptyRosterScoresPerfect(t *testing.T) {
	res := NewHeuristicProvider().AnalyzeRoster(context.Background(), heuristicRequest())
	require.NotNil(t, res)

	assert.Equal(t, 100.0, res.Score, "zero hours everywhere is perfectly fair")
	assert.Zero(t, res.Cost)
	assert.NotEmpty(t, res.Insights)
}

func TestHeuristic_BalancedRosterScoresPerfect(t *testing.T) {
	req := heuristicRequest()
	req.Assignments = []models.Assignment{
		{StaffID: "a", Date: "2024-01-01", Type: "MORNING"},
		{StaffID: "b", Date: "2024-01-01", Type: "MORNING"},
	}

	res := NewHeuristicProvider().AnalyzeRoster(context.Background(), req)
	assert.Equal(t, 100.0, res.Score)
	assert.InDelta(t, 20*6+15*6, res.Cost, 1e-9)
}

func TestHeuristic_UnevenRosterScoresLower(t *testing.T) {
	req := heuristicRequest()
	req.Assignments = []models.Assignment{
		{StaffID: "a", Date: "2024-01-01", Type: "MORNING"},
		{StaffID: "a", Date: "2024-01-05", Type: "MORNING"},
	}

	res := NewHeuristicProvider().AnalyzeRoster(context.Background(), req)
	assert.Less(t, res.Score, 100.0)
}

func TestHeuristic_FlagsUnderstaffedBusyDays(t *testing.T) {
	req := heuristicRequest()
	req.Assignments = []models.Assignment{
		{StaffID: "a", Date: "2024-01-01", Type: "MORNING"},
		// Friday left empty.
	}

	res := NewHeuristicProvider().AnalyzeRoster(context.Background(), req)
	joined := ""
	for _, in := range res.Insights {
		joined += in + "\n"
	}
	assert.Contains(t, joined, "busy days")
}

func TestHeuristic_LeaveHoursCountForCostNotCoverage(t *testing.T) {
	req := heuristicRequest()
	req.Settings.MinStaffPerDay = 0
	req.Assignments = []models.Assignment{
		{StaffID: "b", Date: "2024-01-01", Type: "PAID_LEAVE"},
	}

	res := NewHeuristicProvider().AnalyzeRoster(context.Background(), req)
	assert.InDelta(t, 15*8, res.Cost, 1e-9)
}

func TestDegradedResult_Shape(t *testing.T) {
	res := DegradedResult()
	assert.Zero(t, res.Score)
	assert.Zero(t, res.Cost)
	assert.NotEmpty(t, res.Insights)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"score":1}`, stripFences("```json\n{\"score\":1}\n```"))
	assert.Equal(t, `{"score":1}`, stripFences("```\n{\"score\":1}\n```"))
	assert.Equal(t, `{"score":1}`, stripFences(`{"score":1}`))
}
