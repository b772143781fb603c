package interfaces

import (
	"context"

	"payment_sync/internal/domain/entities"
)

// IPaymentGateway abstracts the remote payment API.
//
// Retries and timeouts belong to the implementation; callers treat every
// method as one opaque blocking call.
type IPaymentGateway interface {
	// CreateOrder submits an order. A transport failure is returned as error;
	// charges refused by the gateway come back inside the response.
	CreateOrder(ctx context.Context, order entities.PaymentOrder) (entities.OrderResponse, error)
	// CancelCharge cancels one charge. The error text is the human-readable failure reason.
	CancelCharge(ctx context.Context, charge entities.Charge) error
	// GetOrder returns nil when the gateway does not know the order.
	GetOrder(ctx context.Context, gatewayID string) (*entities.Order, error)
}
