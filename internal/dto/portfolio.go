package dto

import (
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// ListHoldingsParams defines query parameters for listing holdings.
type ListHoldingsParams struct {
	AccountID *string `form:"accountId"`
}

// HoldingResponse defines the data returned for a holding.
type HoldingResponse struct {
	HoldingID      string                `json:"holdingID"`
	Symbol         string                `json:"symbol"`
	Quantity       domain.Quantity       `json:"quantity"`
	AvgCostCents   int64                 `json:"avgCostCents"`
	CostValueCents int64                 `json:"costValueCents"`
	Source         domain.HoldingSource  `json:"source"`
	Account        domain.AccountSummary `json:"account"`
}

// ListHoldingsResponse wraps a list of holdings.
type ListHoldingsResponse struct {
	Holdings []HoldingResponse `json:"holdings"`
}

// ToListHoldingsResponse converts domain holdings to the list DTO.
func ToListHoldingsResponse(holdings []domain.HoldingWithAccount) ListHoldingsResponse {
	res := make([]HoldingResponse, len(holdings))
	for i, h := range holdings {
		res[i] = HoldingResponse{
			HoldingID:      h.HoldingID,
			Symbol:         h.Symbol,
			Quantity:       h.Quantity,
			AvgCostCents:   h.AvgCostCents,
			CostValueCents: h.CostValueCents(),
			Source:         h.Source,
			Account:        h.Account,
		}
	}
	return ListHoldingsResponse{Holdings: res}
}

// NetWorthResponse is the dashboard net worth card.
type NetWorthResponse struct {
	domain.NetWorth
	TotalFormatted string `json:"totalFormatted"`
}

// ToNetWorthResponse converts a domain.NetWorth to its DTO.
func ToNetWorthResponse(nw domain.NetWorth) NetWorthResponse {
	return NetWorthResponse{NetWorth: nw, TotalFormatted: domain.FormatCents(nw.TotalCents, nw.CurrencyCode)}
}

// AnalyticsResponse is the per-account portfolio analytics with the allocation breakdown.
type AnalyticsResponse struct {
	domain.PortfolioAnalytics
	Allocation []domain.AllocationSlice `json:"allocation"`
}
