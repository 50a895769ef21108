package domain

import "time"

// HoldingSource records how a position was opened.
type HoldingSource string

const (
	HoldingSourceTrade    HoldingSource = "trade"
	HoldingSourceTransfer HoldingSource = "transfer"
	HoldingSourceManaged  HoldingSource = "managed"
)

// Holding is the position for one (account, symbol) pair.
// Quantity is positive while the row exists.
type Holding struct {
	HoldingID    string        `json:"holdingID"`
	UserID       string        `json:"userID"`
	AccountID    string        `json:"accountID"`
	Symbol       string        `json:"symbol"`
	Quantity     Quantity      `json:"quantity"`
	AvgCostCents int64         `json:"avgCostCents"`
	Source       HoldingSource `json:"source"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CostValueCents is round(quantity * avgCost).
func (h Holding) CostValueCents() int64 {
	return NotionalCents(h.Quantity, h.AvgCostCents)
}

// HoldingSnapshot is the position returned after an order.
type HoldingSnapshot struct {
	Symbol       string   `json:"symbol"`
	Quantity     Quantity `json:"quantity"`
	AvgCostCents int64    `json:"avgCostCents"`
}

// Snapshot returns the public view of the holding.
func (h Holding) Snapshot() HoldingSnapshot {
	return HoldingSnapshot{Symbol: h.Symbol, Quantity: h.Quantity, AvgCostCents: h.AvgCostCents}
}

// HoldingWithAccount pairs a holding with a summary of its account.
type HoldingWithAccount struct {
	Holding
	Account AccountSummary `json:"account"`
}

// AccountSummary is the short form of an account.
type AccountSummary struct {
	AccountID   string      `json:"accountID"`
	AccountType AccountType `json:"accountType"`
	Name        string      `json:"name"`
}
