package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shiftflow/roster-api-go/pkg/analysis"
	"github.com/shiftflow/roster-api-go/pkg/models"
	"github.com/shiftflow/roster-api-go/pkg/roster"
)

// sessionState is the full snapshot returned to clients after every
// session operation that changes visible state
type sessionState struct {
	SessionID   string                   `json:"session_id"`
	Staff       []models.Staff           `json:"staff"`
	Definitions []models.ShiftDefinition `json:"definitions"`
	Settings    models.AppSettings       `json:"settings"`
	Days        []models.Day             `json:"days"`
	Assignments []models.Assignment      `json:"assignments"`
	Metrics     []models.DayMetrics      `json:"metrics"`
	Analysis    *models.AnalysisResult   `json:"analysis,omitempty"`
}

func (h *Handler) snapshot(id string, sess *roster.Session) sessionState {
	return sessionState{
		SessionID:   id,
		Staff:       sess.Staff,
		Definitions: sess.Definitions,
		Settings:    sess.Settings,
		Days:        sess.Days,
		Assignments: sess.VisibleAssignments(),
		Metrics:     sess.Metrics(),
		Analysis:    sess.Analysis,
	}
}

// CreateSession opens a new in-memory roster session. Staff, definitions
// and settings default to the built-in demo roster when omitted; a date
// range may be supplied to materialize assignments immediately.
func (h *Handler) CreateSession(c *gin.Context) {
	var req struct {
		Staff       []models.Staff           `json:"staff"`
		Definitions []models.ShiftDefinition `json:"definitions"`
		Settings    *models.AppSettings      `json:"settings"`
		StartDate   string                   `json:"start_date"`
		EndDate     string                   `json:"end_date"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if req.Staff == nil {
		req.Staff = models.DefaultStaff()
	}
	if req.Definitions == nil {
		req.Definitions = models.DefaultDefinitions()
	}
	settings := models.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	sess := roster.NewSession(req.Staff, req.Definitions, settings)
	if req.StartDate != "" || req.EndDate != "" {
		sess.SetRange(req.StartDate, req.EndDate)
	}

	id := h.Sessions.Create(sess)
	h.RecordUsage(c, len(sess.Days), len(sess.Staff))
	c.JSON(http.StatusCreated, h.snapshot(id, sess))
}

// GetSession returns the current session state
func (h *Handler) GetSession(c *gin.Context) {
	h.withSession(c, func(id string, sess *roster.Session) {
		c.JSON(http.StatusOK, h.snapshot(id, sess))
	})
}

// DeleteSession discards a session
func (h *Handler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := h.Sessions.With(id, func(*roster.Session) error { return nil }); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	h.Sessions.Delete(id)
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// SetRange replaces the visible date range. Assignments for newly visible
// pairs are created lazily; nothing is deleted when days scroll away.
func (h *Handler) SetRange(c *gin.Context) {
	var req struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.withSession(c, func(id string, sess *roster.Session) {
		sess.SetRange(req.StartDate, req.EndDate)
		sess.Analysis = nil
		h.RecordUsage(c, len(sess.Days), len(sess.Staff))
		c.JSON(http.StatusOK, h.snapshot(id, sess))
	})
}

// UpdateSettings replaces the shift definitions and/or the daily minimum
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req struct {
		Definitions []models.ShiftDefinition `json:"definitions"`
		Settings    *models.AppSettings      `json:"settings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.withSession(c, func(id string, sess *roster.Session) {
		if req.Definitions != nil {
			sess.Definitions = req.Definitions
		}
		if req.Settings != nil {
			sess.Settings = *req.Settings
		}
		c.JSON(http.StatusOK, h.snapshot(id, sess))
	})
}

// CycleAssignment advances one assignment to the next type in the cycle.
// Locked or unknown assignments are silently left alone.
func (h *Handler) CycleAssignment(c *gin.Context) {
	aid := c.Param("aid")
	h.withSession(c, func(id string, sess *roster.Session) {
		sess.Cycle(aid)
		c.JSON(http.StatusOK, h.snapshot(id, sess))
	})
}

// ToggleLock flips one assignment's lock flag
func (h *Handler) ToggleLock(c *gin.Context) {
	aid := c.Param("aid")
	h.withSession(c, func(id string, sess *roster.Session) {
		sess.ToggleLock(aid)
		c.JSON(http.StatusOK, h.snapshot(id, sess))
	})
}

// GenerateRoster runs the auto-fill heuristic, then kicks off analysis in
// the background. The response never waits on the analyzer; the result
// lands on the session whenever it completes and the latest completion
// wins.
func (h *Handler) GenerateRoster(c *gin.Context) {
	h.withSession(c, func(id string, sess *roster.Session) {
		sess.Generate()
		req := h.analysisRequest(sess)
		h.RecordUsage(c, len(sess.Days), len(sess.Staff))
		c.JSON(http.StatusOK, h.snapshot(id, sess))

		go h.runAnalysis(id, req)
	})
}

// ClearRoster resets every visible unlocked assignment to OFF
func (h *Handler) ClearRoster(c *gin.Context) {
	h.withSession(c, func(id string, sess *roster.Session) {
		sess.Clear()
		sess.Analysis = nil
		c.JSON(http.StatusOK, h.snapshot(id, sess))
	})
}

// GetMetrics returns the derived per-day cost and coverage numbers
func (h *Handler) GetMetrics(c *gin.Context) {
	h.withSession(c, func(id string, sess *roster.Session) {
		c.JSON(http.StatusOK, gin.H{"metrics": sess.Metrics()})
	})
}

// AnalyzeRoster runs the analysis provider synchronously and stores the
// result on the session
func (h *Handler) AnalyzeRoster(c *gin.Context) {
	var req analysis.Request
	var id string
	found := false
	h.withSession(c, func(sid string, sess *roster.Session) {
		id = sid
		req = h.analysisRequest(sess)
		found = true
	})
	if !found {
		return
	}

	// Provider calls run outside the store lock so edits keep flowing
	// while analysis is in flight.
	result := h.Analyzer.AnalyzeRoster(c.Request.Context(), req)
	if result == nil {
		result = analysis.DegradedResult()
	}
	h.Sessions.SetAnalysis(id, result)
	c.JSON(http.StatusOK, result)
}

// StaffHistory lists one staff member's non-OFF assignments
func (h *Handler) StaffHistory(c *gin.Context) {
	staffID := c.Param("staffID")
	h.withSession(c, func(id string, sess *roster.Session) {
		c.JSON(http.StatusOK, gin.H{
			"staff_id": staffID,
			"history":  sess.StaffHistory(staffID),
		})
	})
}

// analysisRequest snapshots the session for the analyzer, excluding OFF
// assignments per the provider contract
func (h *Handler) analysisRequest(sess *roster.Session) analysis.Request {
	visible := sess.VisibleAssignments()
	assigned := make([]models.Assignment, 0, len(visible))
	for _, a := range visible {
		if a.Type != models.TypeOff {
			assigned = append(assigned, a)
		}
	}
	return analysis.Request{
		Staff:       sess.Staff,
		Definitions: sess.Definitions,
		Assignments: assigned,
		Days:        sess.Days,
		Settings:    sess.Settings,
	}
}

// runAnalysis is the fire-and-forget analysis path. Cancellation is not
// supported; an in-flight call can only be superseded by a later one.
func (h *Handler) runAnalysis(id string, req analysis.Request) {
	result := h.Analyzer.AnalyzeRoster(context.Background(), req)
	if result == nil {
		result = analysis.DegradedResult()
	}
	h.Sessions.SetAnalysis(id, result)
	h.Logger.Debug("roster analysis stored", zap.String("session_id", id), zap.Float64("score", result.Score))
}

// withSession resolves the :id session or replies 404
func (h *Handler) withSession(c *gin.Context, fn func(string, *roster.Session)) {
	id := c.Param("id")
	err := h.Sessions.With(id, func(sess *roster.Session) error {
		fn(id, sess)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	}
}
