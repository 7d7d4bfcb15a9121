package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mediping-server/internal/middleware"
	"mediping-server/internal/schedule"
	"mediping-server/internal/store"
	"mediping-server/internal/utils"
)

// DailyStats aggregates dose counts across all of the user's medications
// for one date (today when the date query parameter is omitted).
func (h *MedicationHandler) DailyStats(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	date := c.Query("date")
	if date == "" {
		date = schedule.Today(h.Clock)
	}
	if !schedule.ValidDate(date) {
		utils.BadRequest(c, "Date must be in YYYY-MM-DD format")
		return
	}

	meds, err := h.Store.LoadAll(c.Request.Context(), userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load medications: "+err.Error())
		return
	}

	logs := make([]schedule.Log, len(meds))
	for i := range meds {
		logs[i] = meds[i].Log()
	}

	utils.Success(c, "Statistics calculated successfully", gin.H{
		"date":  date,
		"stats": schedule.SumDay(logs, date),
	})
}

// Completion reports one medication's completion percentage for a date:
// taken doses over the configured dose-time count, rounded. A medication
// with no configured times reports 0.
func (h *MedicationHandler) Completion(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	date := c.Query("date")
	if date == "" {
		date = schedule.Today(h.Clock)
	}
	if !schedule.ValidDate(date) {
		utils.BadRequest(c, "Date must be in YYYY-MM-DD format")
		return
	}

	med, err := h.Store.Get(c.Request.Context(), userID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "Medication not found")
		return
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to load medication: "+err.Error())
		return
	}

	utils.Success(c, "Completion rate calculated successfully", gin.H{
		"date":           date,
		"completionRate": schedule.CompletionRate(med.Log(), date, med.DoseTimes()),
	})
}
