package handlers

import (
	"errors"
	"slices"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"mediping-server/internal/middleware"
	"mediping-server/internal/models"
	"mediping-server/internal/schedule"
	"mediping-server/internal/store"
	"mediping-server/internal/utils"
)

// MedicationHandler handles medication schedule requests. It talks to the
// database only through the store adapter and derives "today" from the
// injected clock.
type MedicationHandler struct {
	Store store.Medications
	Clock schedule.Clock
}

// NewMedicationHandler creates a new MedicationHandler.
func NewMedicationHandler(st store.Medications, clock schedule.Clock) *MedicationHandler {
	return &MedicationHandler{Store: st, Clock: clock}
}

// CreateMedicationRequest represents the request body for adding a medication.
type CreateMedicationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Dosage      string   `json:"dosage" binding:"required"`
	Frequency   string   `json:"frequency" binding:"required"`
	TimesPerDay int      `json:"timesPerDay" binding:"omitempty,min=1,max=10"`
	Times       []string `json:"times"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
}

// CreateMedication expands the schedule, seeds the full dose log and
// persists the medication. Blank and duplicate dose times are dropped
// before anything is stored; an end date before the start date simply
// yields an empty log.
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateMedicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	freq := schedule.Frequency(req.Frequency)
	if !freq.Valid() {
		utils.BadRequest(c, "Frequency must be daily, weekly or monthly")
		return
	}

	if !schedule.ValidDate(req.StartDate) || !schedule.ValidDate(req.EndDate) {
		utils.BadRequest(c, "Dates must be in YYYY-MM-DD format")
		return
	}

	times := schedule.FilterTimes(req.Times)
	for _, t := range times {
		if !schedule.ValidTime(t) {
			utils.BadRequest(c, "Dose times must be in HH:MM format: "+t)
			return
		}
	}

	dates := schedule.ExpandDates(req.StartDate, req.EndDate, freq)
	logs := schedule.NewLog(dates, times)

	timesPerDay := req.TimesPerDay
	if timesPerDay == 0 {
		timesPerDay = len(times)
	}

	med := models.Medication{
		UserID:      userID,
		Name:        req.Name,
		Dosage:      req.Dosage,
		Frequency:   freq,
		TimesPerDay: timesPerDay,
		Times:       datatypes.NewJSONSlice(times),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Logs:        datatypes.NewJSONType(logs),
	}

	if err := h.Store.Create(c.Request.Context(), &med); err != nil {
		utils.InternalServerError(c, "Failed to create medication: "+err.Error())
		return
	}

	utils.Created(c, "Medication created successfully", med)
}

// ListMedications returns the user's medications. Any medication whose log
// has no entry for today gets one synthesized (all doses pending) and
// persisted before the list is returned; repeated reads are no-ops.
func (h *MedicationHandler) ListMedications(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	meds, err := h.Store.LoadAll(c.Request.Context(), userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load medications: "+err.Error())
		return
	}

	today := schedule.Today(h.Clock)
	for i := range meds {
		log := meds[i].Log()
		times := meds[i].DoseTimes()
		if !log.EnsureDay(today, times) {
			continue
		}
		patch := schedule.DayPatch(times)
		if err := h.Store.UpsertLog(c.Request.Context(), userID, meds[i].ID, today, patch); err != nil {
			utils.InternalServerError(c, "Failed to initialize today's log: "+err.Error())
			return
		}
		meds[i].Logs = datatypes.NewJSONType(log)
	}

	utils.Success(c, "Medications fetched successfully", meds)
}

// UpdateLogRequest represents the request body for a dose-status update.
type UpdateLogRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// UpdateLog merges one (date, time) status into the stored log. Later
// writes for the same pair overwrite earlier ones; no transition history
// is kept. The client is expected to reload the list afterwards.
//
// The (date, time) pair must lie on the medication's schedule: the time
// must be one of its configured dose times and the date must already have
// a log entry. Anything else would plant log entries off the schedule and
// let taken counts outgrow the configured dose count.
func (h *MedicationHandler) UpdateLog(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateLogRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !schedule.ValidDate(req.Date) {
		utils.BadRequest(c, "Date must be in YYYY-MM-DD format")
		return
	}
	if !schedule.ValidTime(req.Time) {
		utils.BadRequest(c, "Time must be in HH:MM format")
		return
	}
	status := schedule.Status(req.Status)
	if !status.Valid() {
		utils.BadRequest(c, "Status must be pending, taken or missed")
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

	if !slices.Contains(med.DoseTimes(), req.Time) {
		utils.BadRequest(c, "Time is not one of the medication's dose times")
		return
	}
	if _, ok := med.Log()[req.Date]; !ok {
		utils.BadRequest(c, "No dose is scheduled on this date")
		return
	}

	patch := map[string]schedule.Status{req.Time: status}
	err = h.Store.UpsertLog(c.Request.Context(), userID, med.ID, req.Date, patch)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "Medication not found")
		return
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to update dose status: "+err.Error())
		return
	}

	utils.Success(c, "Dose status updated successfully", nil)
}

// DeleteMedication removes a medication and its log.
func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	err := h.Store.Delete(c.Request.Context(), userID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "Medication not found")
		return
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to delete medication: "+err.Error())
		return
	}

	utils.Success(c, "Medication deleted successfully", nil)
}
