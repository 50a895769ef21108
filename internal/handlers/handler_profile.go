package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := &profileHandler{profileService: profileService}

	rg.GET("/profile", h.getProfile)
	rg.PUT("/profile", h.updateProfile)
}

// getProfile godoc
// @Summary Get the investment profile
// @Tags profile
// @Produce  json
// @Success 200 {object} domain.InvestmentProfile
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// updateProfile godoc
// @Summary Update the investment profile
// @Tags profile
// @Accept  json
// @Produce  json
// @Param   request body dto.UpdateProfileRequest true "Risk profile"
// @Success 200 {object} domain.InvestmentProfile
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateProfile body", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
