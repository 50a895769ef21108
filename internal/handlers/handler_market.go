package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type marketHandler struct {
	marketService portssvc.MarketSvcFacade
}

func registerMarketRoutes(rg *gin.RouterGroup, marketService portssvc.MarketSvcFacade) {
	h := &marketHandler{marketService: marketService}

	market := rg.Group("/market")
	{
		market.GET("/quotes", h.getQuotes)
		market.GET("/:symbol/quote", h.getQuote)
	}
}

// getQuote godoc
// @Summary Quote for one symbol
// @Tags market
// @Produce  json
// @Param   symbol path string true "Symbol"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} map[string]string "Not halal approved"
// @Failure 404 {object} map[string]string "No quote"
// @Security BearerAuth
// @Router /market/{symbol}/quote [get]
func (h *marketHandler) getQuote(c *gin.Context) {
	quote, err := h.marketService.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondError(c, err, "Failed to fetch quote")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// getQuotes godoc
// @Summary Quotes for several symbols
// @Description Comma-separated symbols; empty means every approved symbol. Unpriced symbols map to null.
// @Tags market
// @Produce  json
// @Param   symbols query string false "e.g. AAPL,MSFT"
// @Success 200 {object} dto.QuotesResponse
// @Security BearerAuth
// @Router /market/quotes [get]
func (h *marketHandler) getQuotes(c *gin.Context) {
	var params dto.QuotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, "Quotes query", err)
		return
	}

	quotes, err := h.marketService.GetQuotes(c.Request.Context(), splitSymbols(params.Symbols))
	if err != nil {
		respondError(c, err, "Failed to fetch quotes")
		return
	}
	c.JSON(http.StatusOK, dto.QuotesResponse{Quotes: quotes})
}

func splitSymbols(raw string) []string {
	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
