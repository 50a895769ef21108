package mapping

import (
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/SscSPs/amanah_ledger/internal/models"
)

// ToModelHalalSymbol converts a domain HalalSymbol to a model HalalSymbol
func ToModelHalalSymbol(d domain.HalalSymbol) models.HalalSymbol {
	return models.HalalSymbol{
		SymbolID:       d.SymbolID,
		Symbol:         d.Symbol,
		Name:           d.Name,
		AssetType:      d.AssetType,
		LastVerifiedAt: toNullTime(d.LastVerifiedAt),
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainHalalSymbol converts a model HalalSymbol to a domain HalalSymbol
func ToDomainHalalSymbol(m models.HalalSymbol) domain.HalalSymbol {
	return domain.HalalSymbol{
		SymbolID:       m.SymbolID,
		Symbol:         m.Symbol,
		Name:           m.Name,
		AssetType:      m.AssetType,
		LastVerifiedAt: fromNullTime(m.LastVerifiedAt),
		CreatedAt:      m.CreatedAt,
	}
}

func ToDomainWatchlistItem(m models.WatchlistItem) domain.WatchlistItem {
	return domain.WatchlistItem{
		ItemID:    m.ItemID,
		UserID:    m.UserID,
		Symbol:    m.Symbol,
		CreatedAt: m.CreatedAt,
	}
}

// ToModelInvestmentProfile converts a domain InvestmentProfile to a model InvestmentProfile
func ToModelInvestmentProfile(d domain.InvestmentProfile) models.InvestmentProfile {
	m := models.InvestmentProfile{
		UserID:         d.UserID,
		RebalanceLogic: toNullString(d.RebalanceLogic),
		UpdatedAt:      d.UpdatedAt,
	}
	if d.RiskProfile != nil {
		s := string(*d.RiskProfile)
		m.RiskProfile = toNullString(&s)
	}
	return m
}

// ToDomainInvestmentProfile converts a model InvestmentProfile to a domain InvestmentProfile
func ToDomainInvestmentProfile(m models.InvestmentProfile) domain.InvestmentProfile {
	d := domain.InvestmentProfile{
		UserID:         m.UserID,
		RebalanceLogic: fromNullString(m.RebalanceLogic),
		UpdatedAt:      m.UpdatedAt,
	}
	if m.RiskProfile.Valid {
		r := domain.RiskProfile(m.RiskProfile.String)
		d.RiskProfile = &r
	}
	return d
}
