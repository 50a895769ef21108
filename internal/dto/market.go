package dto

import (
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// QuotesParams is a comma-separated symbol list; empty means the whole halal universe.
type QuotesParams struct {
	Symbols string `form:"symbols"`
}

// QuotesResponse maps symbols to quotes; a symbol without a quote maps to null.
type QuotesResponse struct {
	Quotes map[string]*domain.Quote `json:"quotes"`
}
