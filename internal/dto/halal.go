package dto

import (
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// SearchHalalSymbolsParams defines query parameters for the halal symbol search.
type SearchHalalSymbolsParams struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=100" binding:"min=1,max=200"`
}

// SymbolsResponse lists the approved universe.
type SymbolsResponse struct {
	Symbols []domain.HalalSymbol `json:"symbols"`
}

// HalalSymbolsResponse is a search result page.
type HalalSymbolsResponse struct {
	Count   int                  `json:"count"`
	Symbols []domain.HalalSymbol `json:"symbols"`
}
