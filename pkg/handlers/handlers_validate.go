package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftflow/roster-api-go/pkg/models"
	"github.com/shiftflow/roster-api-go/pkg/roster"
)

// ValidateInput checks a roster payload for structural problems before a
// one-shot generate
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Staff) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one staff member is required",
		})
		return
	}

	// Check for duplicate IDs
	staffIDs := make(map[string]bool)
	for _, s := range input.Staff {
		if staffIDs[s.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate staff ID: " + s.ID})
			return
		}
		staffIDs[s.ID] = true
	}

	defIDs := make(map[string]bool)
	for _, d := range input.Definitions {
		if d.ID == models.TypeOff {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "OFF is a reserved type and cannot be a definition id"})
			return
		}
		if defIDs[d.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate definition ID: " + d.ID})
			return
		}
		defIDs[d.ID] = true
	}

	// An inverted or unparseable range is not an error downstream, but it
	// is worth surfacing here since it yields an empty roster.
	days := roster.GenerateDays(input.StartDate, input.EndDate)
	if len(days) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "Date range is empty, inverted or invalid",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"staff_count":      len(input.Staff),
			"definition_count": len(input.Definitions),
			"day_count":        len(days),
		},
	})
}
