package domain

import "time"

// RiskProfile is the user's declared risk appetite.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskGrowth       RiskProfile = "growth"
)

func (r RiskProfile) IsValid() bool {
	return r == RiskConservative || r == RiskBalanced || r == RiskGrowth
}

// InvestmentProfile holds per-user investing preferences.
type InvestmentProfile struct {
	UserID         string       `json:"userID"`
	RiskProfile    *RiskProfile `json:"riskProfile"`
	RebalanceLogic *string      `json:"rebalanceLogic"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
