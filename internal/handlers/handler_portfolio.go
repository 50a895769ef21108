package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// portfolioHandler serves the read-only portfolio views.
type portfolioHandler struct {
	portfolioService portssvc.PortfolioSvcFacade
}

func registerPortfolioRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioSvcFacade) {
	h := &portfolioHandler{portfolioService: portfolioService}

	portfolio := rg.Group("/portfolio")
	{
		portfolio.GET("/holdings", h.listHoldings)
		portfolio.GET("/net-worth", h.getNetWorth)
		portfolio.GET("/analytics", h.getAnalytics)
	}
}

// listHoldings godoc
// @Summary List holdings
// @Description Positions of the caller, each with its account summary.
// @Tags portfolio
// @Produce  json
// @Param   accountId query string false "Account ID"
// @Success 200 {object} dto.ListHoldingsResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /portfolio/holdings [get]
func (h *portfolioHandler) listHoldings(c *gin.Context) {
	var params dto.ListHoldingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, "ListHoldings query", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	holdings, err := h.portfolioService.GetHoldings(c.Request.Context(), userID, params.AccountID)
	if err != nil {
		respondError(c, err, "Failed to list holdings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHoldingsResponse(holdings))
}

// getNetWorth godoc
// @Summary Net worth
// @Description Cash plus holdings valued at average cost.
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.NetWorthResponse
// @Security BearerAuth
// @Router /portfolio/net-worth [get]
func (h *portfolioHandler) getNetWorth(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	nw, err := h.portfolioService.GetNetWorth(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute net worth")
		return
	}
	c.JSON(http.StatusOK, dto.ToNetWorthResponse(*nw))
}

// getAnalytics godoc
// @Summary Portfolio analytics
// @Description Per-account cash, invested value and allocation by symbol.
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.AnalyticsResponse
// @Security BearerAuth
// @Router /portfolio/analytics [get]
func (h *portfolioHandler) getAnalytics(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	analytics, err := h.portfolioService.GetAnalytics(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute analytics")
		return
	}
	c.JSON(http.StatusOK, analytics)
}
