package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type halalHandler struct {
	halalService portssvc.HalalCatalogSvc
}

// registerHalalRoutes registers the approved universe listing and search.
func registerHalalRoutes(rg *gin.RouterGroup, halalService portssvc.HalalCatalogSvc) {
	h := &halalHandler{halalService: halalService}

	rg.GET("/symbols", h.listSymbols)
	rg.GET("/halal-symbols", h.searchSymbols)
}

// listSymbols godoc
// @Summary List approved symbols
// @Tags halal
// @Produce  json
// @Success 200 {object} dto.SymbolsResponse
// @Security BearerAuth
// @Router /symbols [get]
func (h *halalHandler) listSymbols(c *gin.Context) {
	symbols, err := h.halalService.ListSymbols(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list symbols")
		return
	}
	c.JSON(http.StatusOK, dto.SymbolsResponse{Symbols: symbols})
}

// searchSymbols godoc
// @Summary Search approved symbols
// @Description Case-insensitive match on ticker or name.
// @Tags halal
// @Produce  json
// @Param   search query string false "Ticker or name fragment"
// @Param   limit query int false "Maximum results" default(100)
// @Success 200 {object} dto.HalalSymbolsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /halal-symbols [get]
func (h *halalHandler) searchSymbols(c *gin.Context) {
	var params dto.SearchHalalSymbolsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, "SearchHalalSymbols query", err)
		return
	}

	symbols, err := h.halalService.SearchSymbols(c.Request.Context(), params.Search, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to search symbols")
		return
	}
	c.JSON(http.StatusOK, dto.HalalSymbolsResponse{Count: len(symbols), Symbols: symbols})
}
