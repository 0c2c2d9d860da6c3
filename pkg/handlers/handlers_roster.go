package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shiftflow/roster-api-go/pkg/models"
	"github.com/shiftflow/roster-api-go/pkg/roster"
)

// GenerateOneShot fills a posted roster without creating a session: the
// whole input comes in the request, the filled assignments go out, and
// nothing is retained server-side.
func (h *Handler) GenerateOneShot(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := roster.NewSession(input.Staff, input.Definitions, input.Settings)
	sess.SetRange(input.StartDate, input.EndDate)
	sess.Prefill(input.Assignments)
	sess.Generate()

	h.RecordUsage(c, len(sess.Days), len(sess.Staff))

	c.JSON(http.StatusOK, models.RosterOutput{
		Days:        sess.Days,
		Assignments: sess.VisibleAssignments(),
		Metrics:     sess.Metrics(),
	})
}

// ExportCSV renders the session's visible roster as CSV
func (h *Handler) ExportCSV(c *gin.Context) {
	h.withSession(c, func(id string, sess *roster.Session) {
		staff := make(map[string]models.Staff, len(sess.Staff))
		for _, s := range sess.Staff {
			staff[s.ID] = s
		}
		defs := make(map[string]models.ShiftDefinition, len(sess.Definitions))
		for _, d := range sess.Definitions {
			defs[d.ID] = d
		}

		var out strings.Builder
		writer := csv.NewWriter(&out)
		writer.Write([]string{"date", "day", "staff_id", "staff_name", "type", "label", "hours", "locked"})

		byDate := make(map[string][]models.Assignment)
		for _, a := range sess.VisibleAssignments() {
			byDate[a.Date] = append(byDate[a.Date], a)
		}

		for _, day := range sess.Days {
			for _, a := range byDate[day.Date] {
				name := ""
				if st, ok := staff[a.StaffID]; ok {
					name = st.Name
				}
				label := ""
				hours := 0.0
				if def, ok := defs[a.Type]; ok {
					label = def.Label
					hours = def.Hours
				}
				writer.Write([]string{
					a.Date,
					day.DayName,
					a.StaffID,
					name,
					a.Type,
					label,
					fmt.Sprintf("%.2f", hours),
					fmt.Sprintf("%t", a.IsLocked),
				})
			}
		}
		writer.Flush()

		c.Header("Content-Disposition", `attachment; filename="roster.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out.String()))
	})
}
