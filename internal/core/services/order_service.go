package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/SscSPs/amanah_ledger/internal/platform/metrics"
	"github.com/SscSPs/amanah_ledger/internal/utils/accounting"
	"github.com/SscSPs/amanah_ledger/pkg/id"
)

const (
	defaultOrderLimit = 50
	maxOrderLimit     = 100
)

// orderService executes market orders against self-directed accounts.
//
// Each order runs as one atomic unit: the account row (and the holding row) are
// locked, checked and written together with the transaction and order rows.
type orderService struct {
	BaseService
	units       *unitRunner
	orderRepo   portsrepo.OrderReader
	halal       portssvc.HalalScreenSvc
	oracle      portssvc.PriceOracle
	pricingMode string
	metrics     *metrics.Collector
}

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

// WithPriceOracle sets the oracle used in oracle pricing mode.
func WithPriceOracle(oracle portssvc.PriceOracle) OrderServiceOption {
	return func(s *orderService) {
		s.oracle = oracle
	}
}

// WithPricingMode selects config.PricingOracle or config.PricingClient.
func WithPricingMode(mode string) OrderServiceOption {
	return func(s *orderService) {
		s.pricingMode = mode
	}
}

// WithOrderMaxRetries bounds how often a conflicting order unit is re-run.
func WithOrderMaxRetries(n int) OrderServiceOption {
	return func(s *orderService) {
		s.units.maxRetries = n
	}
}

// WithOrderMetrics records executions, rejections and retries on the collector.
func WithOrderMetrics(m *metrics.Collector) OrderServiceOption {
	return func(s *orderService) {
		s.metrics = m
		s.units.metrics = m
	}
}

// WithOrderClock overrides the clock, for tests.
func WithOrderClock(now func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.now = now
	}
}

// NewOrderService creates the order executor.
func NewOrderService(txManager portsrepo.TransactionManager, orderRepo portsrepo.OrderReader, halal portssvc.HalalScreenSvc, options ...OrderServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{
		units:       &unitRunner{txManager: txManager, maxRetries: defaultMaxRetries},
		orderRepo:   orderRepo,
		halal:       halal,
		pricingMode: config.PricingOracle,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// orderInput is a validated, priced order request.
type orderInput struct {
	side       domain.OrderSide
	accountID  *string
	symbol     string
	quantity   domain.Quantity
	priceCents int64
	notional   int64
}

func (s *orderService) Buy(ctx context.Context, userID string, req dto.PlaceOrderRequest) (*domain.OrderExecution, error) {
	return s.place(ctx, userID, domain.OrderSideBuy, req, s.executeBuy)
}

func (s *orderService) Sell(ctx context.Context, userID string, req dto.PlaceOrderRequest) (*domain.OrderExecution, error) {
	return s.place(ctx, userID, domain.OrderSideSell, req, s.executeSell)
}

func (s *orderService) place(
	ctx context.Context,
	userID string,
	side domain.OrderSide,
	req dto.PlaceOrderRequest,
	execute func(ctx context.Context, tx portsrepo.LedgerTx, userID string, in orderInput) (*domain.OrderExecution, error),
) (*domain.OrderExecution, error) {
	start := time.Now()
	logger := s.GetLogger(ctx).With(
		slog.String("side", string(side)),
		slog.String("symbol", domain.CanonicalSymbol(req.Symbol)),
		slog.String("quantity", req.Quantity.String()))

	in, err := s.prepare(ctx, side, req)
	if err != nil {
		s.reject(ctx, logger, side, err)
		return nil, err
	}

	var exec *domain.OrderExecution
	err = s.units.run(ctx, string(side), func(tx portsrepo.LedgerTx) error {
		var err error
		exec, err = execute(ctx, tx, userID, in)
		return err
	})
	if err != nil {
		s.reject(ctx, logger, side, err)
		return nil, err
	}

	s.metrics.RecordOrder(string(side), time.Since(start))
	s.metrics.RecordLedgerOperation(string(exec.Transaction.Type), exec.Transaction.AmountCents)
	logger.InfoContext(ctx, "Order completed",
		slog.String("order_id", exec.Order.OrderID),
		slog.String("transaction_id", exec.Transaction.TransactionID),
		slog.String("account_id", exec.Account.AccountID),
		slog.Int64("price_cents", in.priceCents),
		slog.Int64("amount_cents", in.notional))
	return exec, nil
}

// prepare runs the checks that need no locks: input shape, halal screen, pricing.
func (s *orderService) prepare(ctx context.Context, side domain.OrderSide, req dto.PlaceOrderRequest) (orderInput, error) {
	symbol := domain.CanonicalSymbol(req.Symbol)
	if symbol == "" {
		return orderInput{}, apperrors.NewValidationError("symbol is required")
	}
	qty := domain.NewQuantity(req.Quantity.Decimal())
	if !qty.IsPositive() {
		return orderInput{}, apperrors.NewValidationError("quantity must be positive")
	}

	if err := s.halal.Check(ctx, symbol); err != nil {
		return orderInput{}, err
	}

	price, err := s.resolvePrice(ctx, symbol, req.PriceCents)
	if err != nil {
		return orderInput{}, err
	}
	// A sell worth less than a cent still goes through so leftover fractions can be closed out.
	notional := domain.NotionalCents(qty, price)
	if notional <= 0 && side == domain.OrderSideBuy {
		return orderInput{}, apperrors.NewValidationError("order value rounds to zero cents")
	}

	return orderInput{
		side:       side,
		accountID:  req.AccountID,
		symbol:     symbol,
		quantity:   qty,
		priceCents: price,
		notional:   notional,
	}, nil
}

func (s *orderService) resolvePrice(ctx context.Context, symbol string, clientPrice *int64) (int64, error) {
	if s.pricingMode == config.PricingClient {
		if clientPrice == nil || *clientPrice <= 0 {
			return 0, apperrors.NewValidationError("priceCents must be positive")
		}
		return *clientPrice, nil
	}

	if s.oracle == nil {
		return 0, fmt.Errorf("%w: no price oracle configured", apperrors.ErrPriceUnavailable)
	}
	quote, err := s.oracle.GetQuote(ctx, symbol)
	if err != nil {
		if !errors.Is(err, apperrors.ErrPriceUnavailable) {
			err = fmt.Errorf("%w: %v", apperrors.ErrPriceUnavailable, err)
		}
		return 0, err
	}
	price := quote.PriceCents()
	if price <= 0 {
		return 0, fmt.Errorf("%w: non-positive quote for %s", apperrors.ErrPriceUnavailable, symbol)
	}
	if clientPrice != nil && *clientPrice != price {
		s.LogDebug(ctx, "Ignoring client price in favour of oracle quote",
			slog.String("symbol", symbol),
			slog.Int64("client_price_cents", *clientPrice),
			slog.Int64("oracle_price_cents", price))
	}
	return price, nil
}

func (s *orderService) executeBuy(ctx context.Context, tx portsrepo.LedgerTx, userID string, in orderInput) (*domain.OrderExecution, error) {
	now := s.Now()
	acc, err := lockTradingAccount(ctx, tx, userID, in.accountID)
	if err != nil {
		return nil, err
	}
	if err := applyDelta(ctx, tx, acc, -in.notional, userID, now); err != nil {
		return nil, err
	}

	txn := tradeTransaction(userID, acc, in, now)
	txn.FromAccountID = &acc.AccountID
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	existing, err := tx.LockHolding(ctx, acc.AccountID, in.symbol)
	if err != nil {
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			return nil, err
		}
		existing = nil
	}
	res, err := accounting.ApplyBuy(existing, in.quantity, in.priceCents)
	if err != nil {
		return nil, apperrors.NewValidationError("%s", err.Error())
	}

	var holding domain.Holding
	if res.Opened {
		holding = domain.Holding{
			HoldingID:    id.NewUUID(),
			UserID:       userID,
			AccountID:    acc.AccountID,
			Symbol:       in.symbol,
			Quantity:     res.Quantity,
			AvgCostCents: res.AvgCostCents,
			Source:       domain.HoldingSourceTrade,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		err = tx.InsertHolding(ctx, holding)
	} else {
		holding = *existing
		holding.Quantity = res.Quantity
		holding.AvgCostCents = res.AvgCostCents
		holding.UpdatedAt = now
		err = tx.UpdateHolding(ctx, holding)
	}
	if err != nil {
		return nil, err
	}

	order, err := insertCompletedOrder(ctx, tx, userID, acc.AccountID, in, txn.TransactionID, now)
	if err != nil {
		return nil, err
	}
	snapshot := holding.Snapshot()
	return &domain.OrderExecution{Order: order, Transaction: txn, Account: *acc, Holding: &snapshot}, nil
}

func (s *orderService) executeSell(ctx context.Context, tx portsrepo.LedgerTx, userID string, in orderInput) (*domain.OrderExecution, error) {
	now := s.Now()
	acc, err := lockTradingAccount(ctx, tx, userID, in.accountID)
	if err != nil {
		return nil, err
	}

	holding, err := tx.LockHolding(ctx, acc.AccountID, in.symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			return nil, fmt.Errorf("%w: no %s position in account", apperrors.ErrHoldingNotFound, in.symbol)
		}
		return nil, err
	}
	if in.quantity.GreaterThan(holding.Quantity) {
		return nil, &apperrors.InsufficientQuantityError{
			Available: holding.Quantity.Decimal(),
			Requested: in.quantity.Decimal(),
		}
	}
	res, err := accounting.ApplySell(*holding, in.quantity)
	if err != nil {
		return nil, apperrors.NewValidationError("%s", err.Error())
	}

	if in.notional > 0 {
		if err := applyDelta(ctx, tx, acc, in.notional, userID, now); err != nil {
			return nil, err
		}
	}
	txn := tradeTransaction(userID, acc, in, now)
	txn.ToAccountID = &acc.AccountID
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	var snapshot *domain.HoldingSnapshot
	if res.Liquidated {
		err = tx.DeleteHolding(ctx, holding.HoldingID)
	} else {
		holding.Quantity = res.Quantity
		holding.UpdatedAt = now
		snap := holding.Snapshot()
		snapshot = &snap
		err = tx.UpdateHolding(ctx, *holding)
	}
	if err != nil {
		return nil, err
	}

	order, err := insertCompletedOrder(ctx, tx, userID, acc.AccountID, in, txn.TransactionID, now)
	if err != nil {
		return nil, err
	}
	return &domain.OrderExecution{Order: order, Transaction: txn, Account: *acc, Holding: snapshot}, nil
}

// lockTradingAccount locks the account an order trades from. Missing, foreign and
// non-self-directed accounts are all reported as apperrors.ErrAccountNotFound.
func lockTradingAccount(ctx context.Context, tx portsrepo.LedgerTx, userID string, accountID *string) (*domain.Account, error) {
	acc, err := lockOwnedAccount(ctx, tx, userID, accountID, domain.AccountTypeSelfDirected)
	if err != nil {
		return nil, err
	}
	if acc.AccountType != domain.AccountTypeSelfDirected {
		return nil, fmt.Errorf("%w: account %s is not self-directed", apperrors.ErrAccountNotFound, acc.AccountID)
	}
	return acc, nil
}

func tradeTransaction(userID string, acc *domain.Account, in orderInput, now time.Time) domain.Transaction {
	symbol := in.symbol
	qty := in.quantity
	price := in.priceCents
	txType := domain.TransactionBuy
	verb := "Buy"
	if in.side == domain.OrderSideSell {
		txType = domain.TransactionSell
		verb = "Sell"
	}
	return domain.Transaction{
		TransactionID: id.NewAt(now),
		UserID:        userID,
		Type:          txType,
		AmountCents:   in.notional,
		CurrencyCode:  acc.CurrencyCode,
		Symbol:        &symbol,
		Quantity:      &qty,
		PriceCents:    &price,
		Status:        domain.TransactionCompleted,
		Description:   fmt.Sprintf("%s %s %s @ %s", verb, qty.String(), symbol, domain.FormatCents(price, acc.CurrencyCode)),
		CreatedAt:     now,
	}
}

func insertCompletedOrder(ctx context.Context, tx portsrepo.LedgerTx, userID, accountID string, in orderInput, transactionID string, now time.Time) (domain.Order, error) {
	price := in.priceCents
	qty := in.quantity
	completedAt := now
	order := domain.Order{
		OrderID:             id.NewAt(now),
		UserID:              userID,
		AccountID:           accountID,
		Symbol:              in.symbol,
		Side:                in.side,
		OrderType:           domain.OrderTypeMarket,
		Quantity:            in.quantity,
		Status:              domain.OrderCompleted,
		ExecutionPriceCents: &price,
		ExecutionQuantity:   &qty,
		TransactionID:       &transactionID,
		CreatedAt:           now,
		CompletedAt:         &completedAt,
	}
	if err := order.Validate(); err != nil {
		return domain.Order{}, apperrors.NewValidationError("%s", err.Error())
	}
	if err := tx.InsertOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *orderService) reject(ctx context.Context, logger *slog.Logger, side domain.OrderSide, err error) {
	reason := rejectionReason(err)
	s.metrics.RecordOrderRejected(string(side), reason)
	if isBusinessRejection(err) {
		logger.InfoContext(ctx, "Order rejected", slog.String("reason", reason), slog.String("error", err.Error()))
		return
	}
	logger.ErrorContext(ctx, "Order failed", slog.String("reason", reason), slog.String("error", err.Error()))
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNotHalalApproved):
		return "not_halal_approved"
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, apperrors.ErrHoldingNotFound):
		return "holding_not_found"
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, apperrors.ErrInsufficientQuantity):
		return "insufficient_quantity"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrPriceUnavailable):
		return "price_unavailable"
	case errors.Is(err, apperrors.ErrConcurrencyConflict):
		return "concurrency_conflict"
	case errors.Is(err, apperrors.ErrTransientStore):
		return "store_unavailable"
	}
	return "internal"
}

func (s *orderService) ListOrders(ctx context.Context, userID string, params dto.ListOrdersParams) ([]domain.Order, error) {
	filter := domain.OrderFilter{AccountID: params.AccountID, Limit: clampLimit(params.Limit, defaultOrderLimit, maxOrderLimit)}
	if params.Status != nil && *params.Status != "" {
		status := domain.OrderStatus(*params.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("invalid order status %q", *params.Status)
		}
		filter.Status = &status
	}

	orders, err := s.orderRepo.ListOrders(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("user_id", userID))
		return nil, err
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

func clampLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
