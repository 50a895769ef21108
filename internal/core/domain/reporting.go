package domain

import (
	"github.com/shopspring/decimal"
)

// NetWorth is the cash plus cost-basis value of a user's ledger.
type NetWorth struct {
	CashCents        int64  `json:"cashCents"`
	InvestmentsCents int64  `json:"investmentsCents"`
	TotalCents       int64  `json:"totalCents"`
	CurrencyCode     string `json:"currencyCode"`
}

// PositionValue values one holding at its average cost.
type PositionValue struct {
	Symbol       string   `json:"symbol"`
	Quantity     Quantity `json:"quantity"`
	AvgCostCents int64    `json:"avgCostCents"`
	ValueCents   int64    `json:"valueCents"`
}

// AccountAnalytics is the per-account section of the analytics report.
type AccountAnalytics struct {
	AccountID       string          `json:"accountID"`
	AccountType     AccountType     `json:"accountType"`
	Name            string          `json:"name"`
	CashCents       int64           `json:"cashCents"`
	Positions       []PositionValue `json:"positions"`
	TotalValueCents int64           `json:"totalValueCents"`
}

// PortfolioAnalytics is the analytics report across all accounts of a user.
type PortfolioAnalytics struct {
	Accounts            []AccountAnalytics `json:"accounts"`
	TotalPortfolioCents int64              `json:"totalPortfolioCents"`
	CurrencyCode        string             `json:"currencyCode"`
}

// AllocationSlice is the share of the total held in one account type.
type AllocationSlice struct {
	AccountType AccountType     `json:"accountType"`
	ValueCents  int64           `json:"valueCents"`
	Percent     decimal.Decimal `json:"percent"`
}

// ComputeNetWorth sums balances and values holdings at average cost.
// The investment sum is rounded once, after summing unrounded products.
func ComputeNetWorth(accounts []Account, holdings []Holding) NetWorth {
	var cash int64
	for _, a := range accounts {
		cash += a.BalanceCents
	}
	investments := decimal.Zero
	for _, h := range holdings {
		investments = investments.Add(h.Quantity.Mul(decimal.NewFromInt(h.AvgCostCents)))
	}
	inv := RoundCents(investments)
	return NetWorth{
		CashCents:        cash,
		InvestmentsCents: inv,
		TotalCents:       cash + inv,
		CurrencyCode:     DefaultCurrency,
	}
}

// ComputeAnalytics groups holdings under their accounts.
func ComputeAnalytics(accounts []Account, holdings []Holding) PortfolioAnalytics {
	byAccount := make(map[string][]Holding, len(accounts))
	for _, h := range holdings {
		byAccount[h.AccountID] = append(byAccount[h.AccountID], h)
	}

	report := PortfolioAnalytics{
		Accounts:     make([]AccountAnalytics, 0, len(accounts)),
		CurrencyCode: DefaultCurrency,
	}
	for _, a := range accounts {
		section := AccountAnalytics{
			AccountID:   a.AccountID,
			AccountType: a.AccountType,
			Name:        a.Name,
			CashCents:   a.BalanceCents,
			Positions:   make([]PositionValue, 0, len(byAccount[a.AccountID])),
		}
		var positions int64
		for _, h := range byAccount[a.AccountID] {
			v := h.CostValueCents()
			positions += v
			section.Positions = append(section.Positions, PositionValue{
				Symbol:       h.Symbol,
				Quantity:     h.Quantity,
				AvgCostCents: h.AvgCostCents,
				ValueCents:   v,
			})
		}
		section.TotalValueCents = section.CashCents + positions
		report.TotalPortfolioCents += section.TotalValueCents
		report.Accounts = append(report.Accounts, section)
	}
	return report
}

// ComputeAllocation splits the analytics total by account type, in the order of DefaultAccounts.
func ComputeAllocation(report PortfolioAnalytics) []AllocationSlice {
	totals := make(map[AccountType]int64)
	for _, a := range report.Accounts {
		totals[a.AccountType] += a.TotalValueCents
	}
	slices := make([]AllocationSlice, 0, len(DefaultAccounts))
	for _, spec := range DefaultAccounts {
		v := totals[spec.Type]
		pct := decimal.Zero
		if report.TotalPortfolioCents > 0 {
			pct = decimal.NewFromInt(v).Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(report.TotalPortfolioCents)).Round(2)
		}
		slices = append(slices, AllocationSlice{AccountType: spec.Type, ValueCents: v, Percent: pct})
	}
	return slices
}
