package domain

import (
	"strings"
	"time"
)

// HalalSymbol is one entry of the approved universe.
type HalalSymbol struct {
	SymbolID       string     `json:"symbolID" yaml:"-"`
	Symbol         string     `json:"symbol" yaml:"symbol"`
	Name           string     `json:"name" yaml:"name"`
	AssetType      string     `json:"assetType" yaml:"assetType"`
	LastVerifiedAt *time.Time `json:"lastVerifiedAt,omitempty" yaml:"-"`
	CreatedAt      time.Time  `json:"createdAt" yaml:"-"`
}

// CanonicalSymbol trims and upper-cases a ticker.
func CanonicalSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Matches reports whether the upper-cased search term occurs in the symbol or name.
func (h HalalSymbol) Matches(search string) bool {
	search = strings.ToUpper(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToUpper(h.Symbol), search) || strings.Contains(strings.ToUpper(h.Name), search)
}
