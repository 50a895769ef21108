package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type watchlistHandler struct {
	watchlistService portssvc.WatchlistSvcFacade
}

func registerWatchlistRoutes(rg *gin.RouterGroup, watchlistService portssvc.WatchlistSvcFacade) {
	h := &watchlistHandler{watchlistService: watchlistService}

	watchlist := rg.Group("/watchlist")
	{
		watchlist.GET("", h.listWatchlist)
		watchlist.POST("", h.addToWatchlist)
		watchlist.DELETE("/:symbol", h.removeFromWatchlist)
	}
}

// listWatchlist godoc
// @Summary Get the watchlist
// @Tags watchlist
// @Produce  json
// @Success 200 {object} dto.WatchlistResponse
// @Security BearerAuth
// @Router /watchlist [get]
func (h *watchlistHandler) listWatchlist(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	items, err := h.watchlistService.ListWatchlist(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list watchlist")
		return
	}
	c.JSON(http.StatusOK, dto.WatchlistResponse{Items: items})
}

// addToWatchlist godoc
// @Summary Add a symbol to the watchlist
// @Description Only halal approved symbols can be watched. Adding twice is a no-op.
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   request body dto.AddWatchlistRequest true "Symbol"
// @Success 201 {object} domain.WatchlistItem
// @Failure 400 {object} map[string]string "Invalid input or not halal approved"
// @Security BearerAuth
// @Router /watchlist [post]
func (h *watchlistHandler) addToWatchlist(c *gin.Context) {
	var req dto.AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "AddWatchlist body", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	item, err := h.watchlistService.AddToWatchlist(c.Request.Context(), userID, req.Symbol)
	if err != nil {
		respondError(c, err, "Failed to add to watchlist")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// removeFromWatchlist godoc
// @Summary Remove a symbol from the watchlist
// @Tags watchlist
// @Param   symbol path string true "Symbol"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not on the watchlist"
// @Security BearerAuth
// @Router /watchlist/{symbol} [delete]
func (h *watchlistHandler) removeFromWatchlist(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	if err := h.watchlistService.RemoveFromWatchlist(c.Request.Context(), userID, c.Param("symbol")); err != nil {
		respondError(c, err, "Failed to remove from watchlist")
		return
	}
	c.Status(http.StatusNoContent)
}
