package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/SscSPs/amanah_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles market order execution and order history.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

type executeFunc func(ctx context.Context, userID string, req dto.PlaceOrderRequest) (*domain.OrderExecution, error)

// registerOrderRoutes registers buy, sell and order listing routes.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, limit gin.HandlerFunc) {
	h := &orderHandler{orderService: orderService}

	orders := rg.Group("/orders")
	{
		orders.POST("/buy", limit, h.buy)
		orders.POST("/sell", limit, h.sell)
		orders.GET("", h.listOrders)
	}
}

// buy godoc
// @Summary Buy at market
// @Description Executes a market buy on a self-directed account. The symbol must be halal approved.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.PlaceOrderRequest true "Order"
// @Success 201 {object} dto.OrderExecutionResponse
// @Failure 400 {object} map[string]interface{} "Invalid input, not halal approved or insufficient funds"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 503 {object} map[string]string "Price unavailable"
// @Security BearerAuth
// @Router /orders/buy [post]
func (h *orderHandler) buy(c *gin.Context) {
	h.place(c, domain.OrderSideBuy, h.orderService.Buy)
}

// sell godoc
// @Summary Sell at market
// @Description Executes a market sell. The holding is removed when fully sold.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.PlaceOrderRequest true "Order"
// @Success 201 {object} dto.OrderExecutionResponse
// @Failure 400 {object} map[string]interface{} "Invalid input or insufficient quantity"
// @Failure 404 {object} map[string]string "Account or holding not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 503 {object} map[string]string "Price unavailable"
// @Security BearerAuth
// @Router /orders/sell [post]
func (h *orderHandler) sell(c *gin.Context) {
	h.place(c, domain.OrderSideSell, h.orderService.Sell)
}

func (h *orderHandler) place(c *gin.Context, side domain.OrderSide, execute executeFunc) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "PlaceOrder body", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	execution, err := execute(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to execute order")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Order executed",
		slog.String("side", string(side)),
		slog.String("order_id", execution.Order.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderExecutionResponse(execution))
}

// listOrders godoc
// @Summary List orders
// @Description Newest first, optionally filtered by account and status.
// @Tags orders
// @Produce  json
// @Param   accountId query string false "Account ID"
// @Param   status query string false "Order status" Enums(pending, completed, cancelled)
// @Param   limit query int false "Page size" default(50)
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, "ListOrders query", err)
		return
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}
