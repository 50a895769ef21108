package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/SscSPs/amanah_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles cash movements and the transaction history.
type ledgerHandler struct {
	ledgerService    portssvc.CashMovementSvc
	portfolioService portssvc.PortfolioSvcFacade
}

// registerLedgerRoutes registers deposit, withdraw, transfer and history routes.
// Mutations go through the rate limiter.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.CashMovementSvc, portfolioService portssvc.PortfolioSvcFacade, limit gin.HandlerFunc) {
	h := &ledgerHandler{ledgerService: ledgerService, portfolioService: portfolioService}

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/deposit", limit, h.deposit)
		ledger.POST("/withdraw", limit, h.withdraw)
		ledger.POST("/transfer", limit, h.transfer)
	}
	rg.GET("/transactions", h.listTransactions)
}

// deposit godoc
// @Summary Deposit cash
// @Description Credits a holding account. Defaults to the caller's holding account.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   request body dto.DepositRequest true "Deposit"
// @Success 200 {object} dto.CashMovementResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Security BearerAuth
// @Router /ledger/deposit [post]
func (h *ledgerHandler) deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Deposit body", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	moved, err := h.ledgerService.Deposit(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to deposit")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashMovementResponse(moved))
}

// withdraw godoc
// @Summary Withdraw cash
// @Description Debits a holding account. Fails with INSUFFICIENT_FUNDS reporting required and available cents.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   request body dto.WithdrawRequest true "Withdrawal"
// @Success 200 {object} dto.CashMovementResponse
// @Failure 400 {object} map[string]interface{} "Invalid input or insufficient funds"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /ledger/withdraw [post]
func (h *ledgerHandler) withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Withdraw body", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	moved, err := h.ledgerService.Withdraw(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to withdraw")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashMovementResponse(moved))
}

// transfer godoc
// @Summary Transfer cash between accounts
// @Description Moves cash between two accounts of the caller.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   request body dto.TransferRequest true "Transfer"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]interface{} "Invalid input or insufficient funds"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /ledger/transfer [post]
func (h *ledgerHandler) transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Transfer body", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	result, err := h.ledgerService.Transfer(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to transfer")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first. accountId matches either leg. Use nextToken for the following page.
// @Tags ledger
// @Produce  json
// @Param   accountId query string false "Account ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, "ListTransactions query", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	resp, err := h.portfolioService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Transactions listed", slog.Int("count", len(resp.Transactions)))
	c.JSON(http.StatusOK, resp)
}
