package handlers

import (
	"net/http"

	"consultly/middleware"
	"consultly/models"
	"consultly/services/availability"
	"consultly/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler maps slot endpoints onto the availability service.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// slotView is the boundary shape of a slot: clock values as "HH:MM".
type slotView struct {
	ID          string   `json:"id"`
	ProviderID  string   `json:"providerId"`
	Date        string   `json:"date"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	IsAvailable bool     `json:"isAvailable"`
	MaxBookings int      `json:"maxBookings"`
	Price       *float64 `json:"price,omitempty"`
}

func newSlotView(s models.AvailabilitySlot) slotView {
	return slotView{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		Date:        s.Date,
		StartTime:   utils.FormatClock(s.Start),
		EndTime:     utils.FormatClock(s.End),
		IsAvailable: s.IsAvailable,
		MaxBookings: s.MaxBookings,
		Price:       s.Price,
	}
}

func newSlotViews(slots []models.AvailabilitySlot) []slotView {
	views := make([]slotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, newSlotView(s))
	}
	return views
}

// CreateSlot handles POST /providers/:id/slots.
func (h *AvailabilityHandler) CreateSlot(c *gin.Context) {
	callerID, _ := middleware.CallerIdentity(c)
	providerID := c.Param("id")
	if providerID != callerID {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "providers may only declare their own availability")
		return
	}

	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), providerID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSlotView(*slot))
}

// CreateSlotsBulk handles POST /providers/:id/slots/bulk.
func (h *AvailabilityHandler) CreateSlotsBulk(c *gin.Context) {
	callerID, _ := middleware.CallerIdentity(c)
	providerID := c.Param("id")
	if providerID != callerID {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "providers may only declare their own availability")
		return
	}

	var req models.BulkSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.CreateSlotsBulk(c.Request.Context(), providerID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"created": newSlotViews(result.Created),
		"errors":  result.Errors,
	})
}

// UpdateSlot handles PATCH /slots/:slotId.
func (h *AvailabilityHandler) UpdateSlot(c *gin.Context) {
	callerID, _ := middleware.CallerIdentity(c)

	var patch models.SlotPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.Service.UpdateSlot(c.Request.Context(), c.Param("slotId"), callerID, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSlotView(*slot))
}

// DeleteSlot handles DELETE /slots/:slotId.
func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	callerID, _ := middleware.CallerIdentity(c)

	if err := h.Service.DeleteSlot(c.Request.Context(), c.Param("slotId"), callerID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSlots handles GET /providers/:id/slots?date=|startDate=&endDate=.
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	slots, err := h.Service.ListSlots(
		c.Request.Context(),
		c.Param("id"),
		c.Query("date"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": newSlotViews(slots)})
}

// WeeklySchedule handles GET /providers/:id/schedule?weekStart=.
func (h *AvailabilityHandler) WeeklySchedule(c *gin.Context) {
	projection, err := h.Service.WeeklyProjection(c.Request.Context(), c.Param("id"), c.Query("weekStart"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	schedule := make(map[string][]slotView, len(projection.Schedule))
	for date, slots := range projection.Schedule {
		schedule[date] = newSlotViews(slots)
	}
	c.JSON(http.StatusOK, gin.H{
		"providerId": projection.ProviderID,
		"weekStart":  projection.WeekStart,
		"weekEnd":    projection.WeekEnd,
		"schedule":   schedule,
	})
}
