package dto

import (
	"time"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// PlaceOrderRequest is a market buy or sell. AccountID defaults to the caller's self-directed account.
// PriceCents is required only when the server trusts client prices.
type PlaceOrderRequest struct {
	AccountID  *string         `json:"accountId"`
	Symbol     string          `json:"symbol" binding:"required,symbol"`
	Quantity   domain.Quantity `json:"quantity"`
	PriceCents *int64          `json:"priceCents" binding:"omitempty,gt=0"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID             string             `json:"orderID"`
	AccountID           string             `json:"accountId"`
	Symbol              string             `json:"symbol"`
	Side                domain.OrderSide   `json:"side"`
	OrderType           domain.OrderType   `json:"orderType"`
	Quantity            domain.Quantity    `json:"quantity"`
	Status              domain.OrderStatus `json:"status"`
	ExecutionPriceCents *int64             `json:"executionPriceCents"`
	ExecutionQuantity   *domain.Quantity   `json:"executionQuantity"`
	TransactionID       *string            `json:"transactionId"`
	CreatedAt           time.Time          `json:"createdAt"`
	CompletedAt         *time.Time         `json:"completedAt"`
}

// ToOrderResponse converts a domain.Order to its DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:             o.OrderID,
		AccountID:           o.AccountID,
		Symbol:              o.Symbol,
		Side:                o.Side,
		OrderType:           o.OrderType,
		Quantity:            o.Quantity,
		Status:              o.Status,
		ExecutionPriceCents: o.ExecutionPriceCents,
		ExecutionQuantity:   o.ExecutionQuantity,
		TransactionID:       o.TransactionID,
		CreatedAt:           o.CreatedAt,
		CompletedAt:         o.CompletedAt,
	}
}

// OrderExecutionResponse is returned by buy and sell. Holding is null after a full sell.
type OrderExecutionResponse struct {
	Order         OrderResponse           `json:"order"`
	Holding       *domain.HoldingSnapshot `json:"holding"`
	BalanceCents  int64                   `json:"balanceCents"`
	CostCents     int64                   `json:"costCents"`
	CostFormatted string                  `json:"costFormatted"`
}

// ToOrderExecutionResponse converts a domain.OrderExecution to its DTO.
func ToOrderExecutionResponse(e *domain.OrderExecution) OrderExecutionResponse {
	return OrderExecutionResponse{
		Order:         ToOrderResponse(&e.Order),
		Holding:       e.Holding,
		BalanceCents:  e.Account.BalanceCents,
		CostCents:     e.Transaction.AmountCents,
		CostFormatted: domain.FormatCents(e.Transaction.AmountCents, e.Transaction.CurrencyCode),
	}
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	AccountID *string `form:"accountId"`
	Status    *string `form:"status" binding:"omitempty,oneof=pending completed cancelled"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=100"`
}

// ListOrdersResponse wraps a list of orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToListOrdersResponse converts domain orders to the list DTO.
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return ListOrdersResponse{Orders: res}
}
