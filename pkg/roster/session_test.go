package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

func testStaff() []models.Staff {
	return []models.Staff{
		{ID: "a", Name: "Amy", HourlyRate: 20, Skills: []string{"FullTime"}},
		{ID: "b", Name: "Ben", HourlyRate: 15, Skills: []string{}},
		{ID: "c", Name: "Cam", HourlyRate: 15, Skills: []string{}},
	}
}

func workDef(id string, minRequired int, skills ...string) models.ShiftDefinition {
	if skills == nil {
		skills = []string{}
	}
	return models.ShiftDefinition{
		ID:             id,
		Label:          id,
		Hours:          6,
		RequiredSkills: skills,
		MinRequired:    minRequired,
		Category:       models.CategoryWork,
	}
}

func leaveDef(id string) models.ShiftDefinition {
	return models.ShiftDefinition{
		ID:             id,
		Label:          id,
		RequiredSkills: []string{},
		Category:       models.CategoryLeave,
	}
}

func TestSetRange_MaterializesAllPairs(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-03")

	visible := sess.VisibleAssignments()
	require.Len(t, visible, 9) // 3 staff x 3 days

	for _, a := range visible {
		assert.Equal(t, models.TypeOff, a.Type)
		assert.False(t, a.IsLocked)
		assert.Nil(t, a.OriginalType)
		assert.Equal(t, models.AssignmentID(a.StaffID, a.Date), a.ID)
	}
}

func TestSetRange_Idempotent(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-03")
	first := sess.VisibleAssignments()

	sess.SetRange("2024-01-01", "2024-01-03")
	second := sess.VisibleAssignments()

	assert.Equal(t, first, second)
}

func TestSetRange_PreservesHistoryWhenRangeRevisited(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")
	sess.Cycle("a-2024-01-01")

	// Scroll away and back; the manual edit must survive.
	sess.SetRange("2024-02-01", "2024-02-01")
	sess.SetRange("2024-01-01", "2024-01-01")

	a, ok := sess.Assignment("a-2024-01-01")
	require.True(t, ok)
	assert.Equal(t, "MORNING", a.Type)
}

func TestCycle_WrapsThroughAllDefinitions(t *testing.T) {
	defs := []models.ShiftDefinition{workDef("MORNING", 0), workDef("EVENING", 0), leaveDef("PAID_LEAVE")}
	sess := NewSession(testStaff(), defs, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")

	id := "a-2024-01-01"
	expected := []string{"MORNING", "EVENING", "PAID_LEAVE", models.TypeOff}
	for _, want := range expected {
		sess.Cycle(id)
		a, _ := sess.Assignment(id)
		assert.Equal(t, want, a.Type)
	}
}

func TestCycle_RecordsOriginalTypeOnce(t *testing.T) {
	defs := []models.ShiftDefinition{workDef("MORNING", 0), workDef("EVENING", 0)}
	sess := NewSession(testStaff(), defs, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")

	id := "a-2024-01-01"
	a, _ := sess.Assignment(id)
	a.Type = "EVENING" // simulate a generated shift

	sess.Cycle(id)
	a, _ = sess.Assignment(id)
	require.NotNil(t, a.OriginalType)
	assert.Equal(t, "EVENING", *a.OriginalType)

	// Baseline is sticky across further edits.
	sess.Cycle(id)
	a, _ = sess.Assignment(id)
	assert.Equal(t, "EVENING", *a.OriginalType)
}

func TestCycle_LockedIsNoOp(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")

	id := "a-2024-01-01"
	sess.ToggleLock(id)
	sess.Cycle(id)

	a, _ := sess.Assignment(id)
	assert.Equal(t, models.TypeOff, a.Type)
	assert.Nil(t, a.OriginalType)
}

func TestCycle_UnknownAssignmentIsNoOp(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")

	assert.NotPanics(t, func() {
		sess.Cycle("nope-2024-01-01")
		sess.ToggleLock("nope-2024-01-01")
	})
}

func TestCycle_StaleTypeFallsBackToOff(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")

	id := "a-2024-01-01"
	a, _ := sess.Assignment(id)
	a.Type = "DELETED_DEF"

	sess.Cycle(id)
	a, _ = sess.Assignment(id)
	assert.Equal(t, models.TypeOff, a.Type)
}

func TestToggleLock_FlipsOnlyTheFlag(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")

	id := "a-2024-01-01"
	sess.Cycle(id)
	before, _ := sess.Assignment(id)
	beforeType := before.Type

	sess.ToggleLock(id)
	a, _ := sess.Assignment(id)
	assert.True(t, a.IsLocked)
	assert.Equal(t, beforeType, a.Type)

	sess.ToggleLock(id)
	a, _ = sess.Assignment(id)
	assert.False(t, a.IsLocked)
}

func TestClear_ResetsUnlockedAndKeepsLocked(t *testing.T) {
	defs := []models.ShiftDefinition{workDef("MORNING", 0), workDef("EVENING", 0)}
	sess := NewSession(testStaff(), defs, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")

	sess.Cycle("a-2024-01-01") // MORNING, locked below
	sess.ToggleLock("a-2024-01-01")
	sess.Cycle("b-2024-01-01") // MORNING
	sess.Cycle("b-2024-01-01") // EVENING

	sess.Clear()

	locked, _ := sess.Assignment("a-2024-01-01")
	assert.Equal(t, "MORNING", locked.Type)
	assert.True(t, locked.IsLocked)

	cleared, _ := sess.Assignment("b-2024-01-01")
	assert.Equal(t, models.TypeOff, cleared.Type)
	assert.Nil(t, cleared.OriginalType)

	untouched, _ := sess.Assignment("c-2024-01-01")
	assert.Equal(t, models.TypeOff, untouched.Type)
}

func TestClear_OnlyAffectsVisibleDates(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")
	sess.Cycle("a-2024-01-01")

	sess.SetRange("2024-02-01", "2024-02-01")
	sess.Clear()

	a, _ := sess.Assignment("a-2024-01-01")
	assert.Equal(t, "MORNING", a.Type, "out-of-range assignment must survive clear")
}

func TestPrefill_OverlaysKnownPairsOnly(t *testing.T) {
	sess := NewSession(testStaff(), []models.ShiftDefinition{workDef("MORNING", 0)}, models.AppSettings{})
	sess.SetRange("2024-01-01", "2024-01-01")

	sess.Prefill([]models.Assignment{
		{StaffID: "a", Date: "2024-01-01", Type: "MORNING", IsLocked: true},
		{StaffID: "zz", Date: "2024-01-01", Type: "MORNING"}, // unknown staff, ignored
	})

	a, _ := sess.Assignment("a-2024-01-01")
	assert.Equal(t, "MORNING", a.Type)
	assert.True(t, a.IsLocked)
	assert.Len(t, sess.VisibleAssignments(), 3)
}
