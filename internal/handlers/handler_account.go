package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/SscSPs/amanah_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{
		ledgerService: ls,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("/open", h.openAccounts)
		accounts.GET("/:id", h.getAccount)
	}
}

// listAccounts godoc
// @Summary List accounts for the logged-in user
// @Description Retrieves the holding, investment and self-directed accounts of the caller
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// openAccounts godoc
// @Summary Open the default accounts
// @Description Creates the holding, investment and self-directed accounts if the caller has none. Idempotent.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   request body dto.OpenAccountsRequest false "Currency"
// @Success 201 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to open accounts"
// @Security BearerAuth
// @Router /accounts/open [post]
func (h *accountHandler) openAccounts(c *gin.Context) {
	var req dto.OpenAccountsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "OpenAccounts body", err)
			return
		}
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	accounts, err := h.ledgerService.OpenDefaultAccounts(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to open accounts")
		return
	}
	c.JSON(http.StatusCreated, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account of the caller
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	account, err := h.ledgerService.GetAccount(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
