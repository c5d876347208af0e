package handlers

import (
	"net/http"

	"consultly/middleware"
	"consultly/models"
	"consultly/services/consultation"
	"consultly/utils"

	"github.com/gin-gonic/gin"
)

// ConsultationHandler maps booking endpoints onto the consultation service.
type ConsultationHandler struct {
	Service consultation.ConsultationService
}

func NewConsultationHandler(svc consultation.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{Service: svc}
}

// Create handles POST /consultations. Seeker-only.
func (h *ConsultationHandler) Create(c *gin.Context) {
	callerID, _ := middleware.CallerIdentity(c)

	var req models.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), callerID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Transition handles POST /consultations/:id/transition.
func (h *ConsultationHandler) Transition(c *gin.Context) {
	callerID, callerRole := middleware.CallerIdentity(c)

	var req models.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Transition(c.Request.Context(), c.Param("id"), callerID, callerRole, req.Status, req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Rate handles POST /consultations/:id/rating. Seeker-only.
func (h *ConsultationHandler) Rate(c *gin.Context) {
	callerID, _ := middleware.CallerIdentity(c)

	var req models.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rated, err := h.Service.Rate(c.Request.Context(), c.Param("id"), callerID, req.Rating, req.Review)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rated)
}

// Get handles GET /consultations/:id.
func (h *ConsultationHandler) Get(c *gin.Context) {
	callerID, callerRole := middleware.CallerIdentity(c)

	found, err := h.Service.GetByID(c.Request.Context(), c.Param("id"), callerID, callerRole)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListMine handles GET /consultations?status=. The caller's role picks the
// side of the booking to list.
func (h *ConsultationHandler) ListMine(c *gin.Context) {
	callerID, callerRole := middleware.CallerIdentity(c)
	status := c.Query("status")

	var (
		consultations []models.Consultation
		err           error
	)
	switch callerRole {
	case models.RoleProvider:
		consultations, err = h.Service.ListByProvider(c.Request.Context(), callerID, status)
	default:
		consultations, err = h.Service.ListBySeeker(c.Request.Context(), callerID, status)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultations": consultations})
}
