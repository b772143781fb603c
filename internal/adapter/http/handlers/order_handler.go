package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment_sync/internal/adapter/http/dto/request"
	"payment_sync/internal/adapter/http/dto/response"
	"payment_sync/internal/adapter/platform"
	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase"
	"payment_sync/pkg"
)

// PlatformOrders builds and loads platform orders for the hooks.
type PlatformOrders interface {
	New(record *entities.PlatformOrderRecord) *platform.Order
	Load(ctx context.Context, code string) (*platform.Order, error)
}

// OrderHandler handles the platform order hooks.
type OrderHandler struct {
	usecase   usecase.IOrderUseCase
	platforms PlatformOrders
}

func NewOrderHandler(uc usecase.IOrderUseCase, platforms PlatformOrders) *OrderHandler {
	return &OrderHandler{usecase: uc, platforms: platforms}
}

// CreateOrder places a new platform order at the gateway.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] invalid payload err=%v", err)
		renderError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}

	record, err := req.ToRecord()
	if err != nil {
		log.Printf("[order][handler] invalid order code=%s err=%v", req.Code, err)
		renderError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}
	log.Printf("[order][handler] create start code=%s payments=%d", record.Code, len(record.Payments))

	ctx := c.Request.Context()
	if _, err := h.platforms.Load(ctx, record.Code); err == nil {
		renderError(c, pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order already exists", http.StatusConflict))
		return
	} else if !errors.Is(err, platform.ErrOrderNotFound) {
		log.Printf("[order][handler] lookup failed code=%s err=%v", record.Code, err)
		renderError(c, mapOrderError(err))
		return
	}

	platformOrder := h.platforms.New(record)
	orders, err := h.usecase.CreateOrderAtGateway(ctx, platformOrder)
	if err != nil {
		log.Printf("[order][handler] create failed code=%s err=%v", record.Code, err)
		renderError(c, mapOrderError(err))
		return
	}

	var created *entities.Order
	if len(orders) > 0 {
		created = orders[0]
	}
	log.Printf("[order][handler] create success code=%s order_id=%s", record.Code, platformOrder.GatewayID())

	c.JSON(http.StatusCreated, response.OrderDetailsResponse{
		Order:         response.FromOrder(created),
		PlatformOrder: response.FromPlatformOrder(platformOrder.Record()),
	})
}

// GetOrder returns the platform order and, once placed, its gateway order.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()

	platformOrder, err := h.platforms.Load(ctx, code)
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}

	order, err := h.localOrder(ctx, code)
	if err != nil {
		log.Printf("[order][handler] get failed code=%s err=%v", code, err)
		renderError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.OrderDetailsResponse{
		Order:         response.FromOrder(order),
		PlatformOrder: response.FromPlatformOrder(platformOrder.Record()),
	})
}

// CancelOrder cancels every charge of the order at the gateway. Charges that
// could not be canceled are reported in failures.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()
	log.Printf("[order][handler] cancel start code=%s", code)

	platformOrder, err := h.platforms.Load(ctx, code)
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}

	order, err := h.localOrder(ctx, code)
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}

	var failures map[string]string
	if order != nil {
		order.SetPlatformOrder(platformOrder)
		failures, err = h.usecase.CancelAtGateway(ctx, order)
	} else {
		failures, err = h.usecase.CancelAtGatewayByPlatformOrder(ctx, platformOrder)
	}
	if err != nil {
		log.Printf("[order][handler] cancel failed code=%s err=%v", code, err)
		renderError(c, mapOrderError(err))
		return
	}
	if failures == nil {
		failures = map[string]string{}
	}
	log.Printf("[order][handler] cancel done code=%s failed_charges=%d", code, len(failures))

	c.JSON(http.StatusOK, response.CancelOrderResponse{
		Canceled: len(failures) == 0,
		Failures: failures,
		Platform: response.FromPlatformOrder(platformOrder.Record()),
	})
}

// SyncOrder rewrites the platform totals and status from the local charges.
func (h *OrderHandler) SyncOrder(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()

	platformOrder, err := h.platforms.Load(ctx, code)
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}

	order, err := h.usecase.GetOrderByPlatformID(ctx, code)
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}

	order.SetPlatformOrder(platformOrder)
	if err := h.usecase.SyncPlatformWith(ctx, order, true); err != nil {
		log.Printf("[order][handler] sync failed code=%s err=%v", code, err)
		renderError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.OrderDetailsResponse{
		Order:         response.FromOrder(order),
		PlatformOrder: response.FromPlatformOrder(platformOrder.Record()),
	})
}

// localOrder returns nil when the platform order was never placed.
func (h *OrderHandler) localOrder(ctx context.Context, code string) (*entities.Order, error) {
	order, err := h.usecase.GetOrderByPlatformID(ctx, code)
	if errors.Is(err, usecase.ErrOrderNotFound) {
		return nil, nil
	}
	return order, err
}

func renderError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOrderError(err error) *pkg.AppError {
	var paymentErr *usecase.PaymentError
	if errors.As(err, &paymentErr) {
		return pkg.NewDomainErrorSimple("PAYMENT_FAILED", paymentErr.Message, paymentErr.Code).
			WithKind(string(paymentErr.Kind))
	}

	switch {
	case errors.Is(err, platform.ErrOrderNotFound), errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayTransport):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPlatformOrderMissing):
		return pkg.NewDomainError("PLATFORM_ORDER_MISSING", "Platform order missing", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
