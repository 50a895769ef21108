package services

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/SscSPs/amanah_ledger/internal/dto"
)

// OrderExecutorSvc executes market orders. It is the only path that mutates holdings.
type OrderExecutorSvc interface {
	Buy(ctx context.Context, userID string, req dto.PlaceOrderRequest) (*domain.OrderExecution, error)
	Sell(ctx context.Context, userID string, req dto.PlaceOrderRequest) (*domain.OrderExecution, error)
}

// OrderReaderSvc lists executed orders.
type OrderReaderSvc interface {
	ListOrders(ctx context.Context, userID string, params dto.ListOrdersParams) ([]domain.Order, error)
}

// OrderSvcFacade combines order execution and listing.
type OrderSvcFacade interface {
	OrderExecutorSvc
	OrderReaderSvc
}
