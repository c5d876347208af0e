package handlers

import (
	"net/http"

	"consultly/middleware"
	"consultly/models"
	"consultly/services/provider"
	"consultly/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes the provider profile reads and updates the booking
// core owns.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// Get handles GET /providers/:id.
func (h *ProviderHandler) Get(c *gin.Context) {
	prov, err := h.Service.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prov)
}

// Update handles PATCH /providers/:id.
func (h *ProviderHandler) Update(c *gin.Context) {
	callerID, callerRole := middleware.CallerIdentity(c)

	var patch models.ProviderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prov, err := h.Service.UpdateProvider(c.Request.Context(), c.Param("id"), callerID, callerRole, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prov)
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
