package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/SscSPs/amanah_ledger/internal/platform/metrics"
	"github.com/SscSPs/amanah_ledger/pkg/id"
)

// ledgerService implements account management and cash movements.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	units       *unitRunner
	metrics     *metrics.Collector
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerMaxRetries bounds how often a conflicting unit is re-run.
func WithLedgerMaxRetries(n int) LedgerServiceOption {
	return func(s *ledgerService) {
		s.units.maxRetries = n
	}
}

// WithLedgerMetrics records ledger operations on the collector.
func WithLedgerMetrics(m *metrics.Collector) LedgerServiceOption {
	return func(s *ledgerService) {
		s.metrics = m
		s.units.metrics = m
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(txManager portsrepo.TransactionManager, accountRepo portsrepo.AccountRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo: accountRepo,
		units:       &unitRunner{txManager: txManager, maxRetries: defaultMaxRetries},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetAccount(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	// Accounts of other users are reported as missing.
	if !account.IsOwnedBy(userID) {
		s.LogDebug(ctx, "Account found but belongs to another user",
			slog.String("account_id", accountID))
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *ledgerService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list accounts for user %s: %w", userID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *ledgerService) OpenDefaultAccounts(ctx context.Context, userID string, req dto.OpenAccountsRequest) ([]domain.Account, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if currency != domain.DefaultCurrency {
		return nil, apperrors.NewValidationError("unsupported currency %q, only %s accounts can be opened", currency, domain.DefaultCurrency)
	}

	existing, err := s.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	now := s.Now()
	accounts := make([]domain.Account, 0, len(domain.DefaultAccounts))
	for i, spec := range domain.DefaultAccounts {
		// Creation times are spaced so that "oldest account of a type" stays deterministic.
		createdAt := now.Add(time.Duration(i) * time.Microsecond)
		accounts = append(accounts, domain.Account{
			AccountID:    id.NewUUID(),
			UserID:       userID,
			AccountType:  spec.Type,
			Name:         spec.Name,
			CurrencyCode: currency,
			AuditFields:  domain.NewAuditFields(userID, createdAt),
		})
	}

	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent onboarding request won.
			return s.ListAccounts(ctx, userID)
		}
		s.LogError(ctx, err, "Failed to open default accounts", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Default accounts opened",
		slog.String("user_id", userID),
		slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *ledgerService) Deposit(ctx context.Context, userID string, req dto.DepositRequest) (*domain.CashMovement, error) {
	if req.AmountCents <= 0 {
		return nil, apperrors.NewValidationError("amountCents must be positive")
	}

	var result *domain.CashMovement
	err := s.units.run(ctx, "deposit", func(tx portsrepo.LedgerTx) error {
		now := s.Now()
		acc, err := lockOwnedAccount(ctx, tx, userID, req.AccountID, domain.AccountTypeHolding)
		if err != nil {
			return err
		}
		if acc.AccountType != domain.AccountTypeHolding {
			return apperrors.NewValidationError("deposits are only allowed into holding accounts")
		}
		if err := applyDelta(ctx, tx, acc, req.AmountCents, userID, now); err != nil {
			return err
		}

		txn := domain.Transaction{
			TransactionID: id.NewAt(now),
			UserID:        userID,
			Type:          domain.TransactionDeposit,
			ToAccountID:   &acc.AccountID,
			AmountCents:   req.AmountCents,
			CurrencyCode:  acc.CurrencyCode,
			Status:        domain.TransactionCompleted,
			Description:   describe(req.Description, "Deposit"),
			CreatedAt:     now,
		}
		if err := insertTransaction(ctx, tx, txn); err != nil {
			return err
		}
		result = &domain.CashMovement{Account: *acc, Transaction: txn}
		return nil
	})
	if err != nil {
		s.logRejection(ctx, err, "Deposit failed", slog.Int64("amount_cents", req.AmountCents))
		return nil, err
	}

	s.metrics.RecordLedgerOperation(string(domain.TransactionDeposit), req.AmountCents)
	s.LogInfo(ctx, "Deposit completed",
		slog.String("account_id", result.Account.AccountID),
		slog.String("transaction_id", result.Transaction.TransactionID),
		slog.Int64("amount_cents", req.AmountCents))
	return result, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, userID string, req dto.WithdrawRequest) (*domain.CashMovement, error) {
	if req.AmountCents <= 0 {
		return nil, apperrors.NewValidationError("amountCents must be positive")
	}

	var result *domain.CashMovement
	err := s.units.run(ctx, "withdraw", func(tx portsrepo.LedgerTx) error {
		now := s.Now()
		acc, err := lockOwnedAccount(ctx, tx, userID, req.AccountID, domain.AccountTypeHolding)
		if err != nil {
			return err
		}
		if acc.AccountType != domain.AccountTypeHolding {
			return apperrors.NewValidationError("withdrawals are only allowed from holding accounts")
		}
		if err := applyDelta(ctx, tx, acc, -req.AmountCents, userID, now); err != nil {
			return err
		}

		txn := domain.Transaction{
			TransactionID: id.NewAt(now),
			UserID:        userID,
			Type:          domain.TransactionWithdrawal,
			FromAccountID: &acc.AccountID,
			AmountCents:   req.AmountCents,
			CurrencyCode:  acc.CurrencyCode,
			Status:        domain.TransactionCompleted,
			Description:   describe(req.Description, "Withdrawal"),
			CreatedAt:     now,
		}
		if err := insertTransaction(ctx, tx, txn); err != nil {
			return err
		}
		result = &domain.CashMovement{Account: *acc, Transaction: txn}
		return nil
	})
	if err != nil {
		s.logRejection(ctx, err, "Withdrawal failed", slog.Int64("amount_cents", req.AmountCents))
		return nil, err
	}

	s.metrics.RecordLedgerOperation(string(domain.TransactionWithdrawal), req.AmountCents)
	s.LogInfo(ctx, "Withdrawal completed",
		slog.String("account_id", result.Account.AccountID),
		slog.String("transaction_id", result.Transaction.TransactionID),
		slog.Int64("amount_cents", req.AmountCents))
	return result, nil
}

func (s *ledgerService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.TransferResult, error) {
	if req.AmountCents <= 0 {
		return nil, apperrors.NewValidationError("amountCents must be positive")
	}
	if req.FromAccountID == "" || req.ToAccountID == "" {
		return nil, apperrors.NewValidationError("fromAccountId and toAccountId are required")
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, apperrors.NewValidationError("from and to account must differ")
	}

	var result *domain.TransferResult
	err := s.units.run(ctx, "transfer", func(tx portsrepo.LedgerTx) error {
		now := s.Now()
		locked, err := tx.LockAccounts(ctx, req.FromAccountID, req.ToAccountID)
		if err != nil {
			return err
		}
		from, ok := locked[req.FromAccountID]
		if !ok || !from.IsOwnedBy(userID) {
			return fmt.Errorf("source %w", apperrors.ErrAccountNotFound)
		}
		to, ok := locked[req.ToAccountID]
		if !ok || !to.IsOwnedBy(userID) {
			return fmt.Errorf("destination %w", apperrors.ErrAccountNotFound)
		}
		if from.CurrencyCode != to.CurrencyCode {
			return apperrors.NewValidationError("cannot transfer between %s and %s accounts", from.CurrencyCode, to.CurrencyCode)
		}

		if err := applyDelta(ctx, tx, &from, -req.AmountCents, userID, now); err != nil {
			return err
		}
		if err := applyDelta(ctx, tx, &to, req.AmountCents, userID, now); err != nil {
			return err
		}

		txn := domain.Transaction{
			TransactionID: id.NewAt(now),
			UserID:        userID,
			Type:          domain.TransactionTransfer,
			FromAccountID: &from.AccountID,
			ToAccountID:   &to.AccountID,
			AmountCents:   req.AmountCents,
			CurrencyCode:  from.CurrencyCode,
			Status:        domain.TransactionCompleted,
			Description:   describe(req.Description, fmt.Sprintf("Transfer from %s to %s", from.Name, to.Name)),
			CreatedAt:     now,
		}
		if err := insertTransaction(ctx, tx, txn); err != nil {
			return err
		}
		result = &domain.TransferResult{From: from, To: to, Transaction: txn}
		return nil
	})
	if err != nil {
		s.logRejection(ctx, err, "Transfer failed",
			slog.String("from_account_id", req.FromAccountID),
			slog.String("to_account_id", req.ToAccountID),
			slog.Int64("amount_cents", req.AmountCents))
		return nil, err
	}

	s.metrics.RecordLedgerOperation(string(domain.TransactionTransfer), req.AmountCents)
	s.LogInfo(ctx, "Transfer completed",
		slog.String("transaction_id", result.Transaction.TransactionID),
		slog.Int64("amount_cents", req.AmountCents))
	return result, nil
}

// lockOwnedAccount locks the explicit account, or the caller's default account of
// fallbackType when accountID is empty. Foreign accounts are reported as missing.
func lockOwnedAccount(ctx context.Context, tx portsrepo.LedgerTx, userID string, accountID *string, fallbackType domain.AccountType) (*domain.Account, error) {
	if accountID == nil || *accountID == "" {
		return tx.LockDefaultAccount(ctx, userID, fallbackType)
	}
	locked, err := tx.LockAccounts(ctx, *accountID)
	if err != nil {
		return nil, err
	}
	acc, ok := locked[*accountID]
	if !ok || !acc.IsOwnedBy(userID) {
		return nil, apperrors.ErrAccountNotFound
	}
	return &acc, nil
}

func insertTransaction(ctx context.Context, tx portsrepo.LedgerTx, txn domain.Transaction) error {
	if err := txn.Validate(); err != nil {
		return apperrors.NewValidationError("%s", err.Error())
	}
	return tx.InsertTransaction(ctx, txn)
}

func describe(description, fallback string) string {
	if d := strings.TrimSpace(description); d != "" {
		return d
	}
	return fallback
}
