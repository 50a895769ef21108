package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Error codes returned in the "code" field of error bodies.
const (
	codeValidation           = "VALIDATION_ERROR"
	codeNotHalalApproved     = "NOT_HALAL_APPROVED"
	codeAccountNotFound      = "ACCOUNT_NOT_FOUND"
	codeHoldingNotFound      = "HOLDING_NOT_FOUND"
	codeNotFound             = "NOT_FOUND"
	codeInsufficientFunds    = "INSUFFICIENT_FUNDS"
	codeInsufficientQuantity = "INSUFFICIENT_QUANTITY"
	codeDuplicate            = "DUPLICATE"
	codeForbidden            = "FORBIDDEN"
	codeConflict             = "CONCURRENCY_CONFLICT"
	codeStoreUnavailable     = "STORE_UNAVAILABLE"
	codePriceUnavailable     = "PRICE_UNAVAILABLE"
	codeInternal             = "INTERNAL_ERROR"
	codeUnauthorized         = "UNAUTHORIZED"
)

// respondError maps a service error onto a status code and a JSON body of the form
// {"error": ..., "code": ...}. Sizing errors also carry their numbers.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var funds *apperrors.InsufficientFundsError
	var qty *apperrors.InsufficientQuantityError
	switch {
	case errors.As(err, &funds):
		logger.Info("Request rejected", slog.String("code", codeInsufficientFunds))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Insufficient funds",
			"code":           codeInsufficientFunds,
			"requiredCents":  funds.RequiredCents,
			"availableCents": funds.AvailableCents,
			"shortfallCents": funds.ShortfallCents(),
		})
	case errors.As(err, &qty):
		logger.Info("Request rejected", slog.String("code", codeInsufficientQuantity))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Insufficient quantity",
			"code":      codeInsufficientQuantity,
			"available": qty.Available.String(),
			"requested": qty.Requested.String(),
		})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		// The store's balance constraint fired; no amounts are known.
		reject(c, logger, http.StatusBadRequest, codeInsufficientFunds, "Insufficient funds")
	case errors.Is(err, apperrors.ErrNotHalalApproved):
		reject(c, logger, http.StatusBadRequest, codeNotHalalApproved, err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		reject(c, logger, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, apperrors.ErrAccountNotFound):
		reject(c, logger, http.StatusNotFound, codeAccountNotFound, "Account not found")
	case errors.Is(err, apperrors.ErrHoldingNotFound):
		reject(c, logger, http.StatusNotFound, codeHoldingNotFound, "Holding not found")
	case errors.Is(err, apperrors.ErrNotFound):
		reject(c, logger, http.StatusNotFound, codeNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrForbidden):
		reject(c, logger, http.StatusForbidden, codeForbidden, "Forbidden")
	case errors.Is(err, apperrors.ErrDuplicate):
		reject(c, logger, http.StatusConflict, codeDuplicate, "Resource already exists")
	case errors.Is(err, apperrors.ErrConcurrencyConflict):
		logger.Warn("Request failed after conflict retries", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Concurrent modification, please retry", "code": codeConflict})
	case errors.Is(err, apperrors.ErrPriceUnavailable):
		logger.Warn("Price unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Price unavailable", "code": codePriceUnavailable})
	case errors.Is(err, apperrors.ErrTransientStore):
		logger.Error("Store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable", "code": codeStoreUnavailable})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg, "code": codeInternal})
	}
}

func reject(c *gin.Context, logger *slog.Logger, status int, code, msg string) {
	logger.Info("Request rejected", slog.String("code", code), slog.String("reason", msg))
	c.JSON(status, gin.H{"error": msg, "code": code})
}

// respondBindError reports a malformed body or query string.
func respondBindError(c *gin.Context, what string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error(), "code": codeValidation})
}

// userIDFromContext returns the authenticated caller or writes a 401.
func userIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": codeUnauthorized})
		return "", false
	}
	return userID, true
}
