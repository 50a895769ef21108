package domain

import (
	"fmt"
	"time"
)

// OrderSide is buy or sell.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

// OrderType is the execution style. Only market orders execute.
type OrderType string

const (
	OrderTypeMarket OrderType = "market"
)

// OrderStatus is the lifecycle state of a persisted order.
// Rejected requests never produce a row, so there is no rejected status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order records one execution.
type Order struct {
	OrderID             string      `json:"orderID"`
	UserID              string      `json:"userID"`
	AccountID           string      `json:"accountID"`
	Symbol              string      `json:"symbol"`
	Side                OrderSide   `json:"side"`
	OrderType           OrderType   `json:"orderType"`
	Quantity            Quantity    `json:"quantity"`
	Status              OrderStatus `json:"status"`
	ExecutionPriceCents *int64      `json:"executionPriceCents,omitempty"`
	ExecutionQuantity   *Quantity   `json:"executionQuantity,omitempty"`
	TransactionID       *string     `json:"transactionID,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
	CompletedAt         *time.Time  `json:"completedAt,omitempty"`
}

// Validate checks that a completed order carries its execution fields.
func (o Order) Validate() error {
	if o.OrderID == "" {
		return fmt.Errorf("order ID is required")
	}
	if !o.Quantity.IsPositive() {
		return fmt.Errorf("order quantity must be positive")
	}
	if !o.Status.IsValid() {
		return fmt.Errorf("invalid order status %q", o.Status)
	}
	if o.Status == OrderCompleted {
		if o.ExecutionPriceCents == nil || o.ExecutionQuantity == nil || o.TransactionID == nil || o.CompletedAt == nil {
			return fmt.Errorf("completed order requires execution price, quantity, transaction and completion time")
		}
	}
	return nil
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	AccountID *string
	Status    *OrderStatus
	Limit     int
}
