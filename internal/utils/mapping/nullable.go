package mapping

import (
	"database/sql"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

func toNullQuantity(q *domain.Quantity) decimal.NullDecimal {
	if q == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: q.Decimal(), Valid: true}
}

func fromNullQuantity(n decimal.NullDecimal) *domain.Quantity {
	if !n.Valid {
		return nil
	}
	q := domain.NewQuantity(n.Decimal)
	return &q
}
