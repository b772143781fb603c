package usecase

import (
	"errors"
	"fmt"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/i18n"
)

var (
	ErrAmountMismatch       = errors.New("payment sum differs from order amount")
	ErrChargeFailed         = errors.New("order or charge status failed")
	ErrGatewayTransport     = errors.New("payment gateway transport failure")
	ErrUnresolvableResponse = errors.New("no response handler for order shape")
	ErrPersistence          = errors.New("persistence failure")
	ErrPlatformOrderMissing = errors.New("order has no platform order attached")
	ErrOrderNotFound        = errors.New("order not found")
)

// ErrorKind classifies why order creation failed.
type ErrorKind string

const (
	ErrorKindValidation          ErrorKind = "validation"
	ErrorKindRemoteChargeFailure ErrorKind = "remote_charge_failure"
	ErrorKindTransport           ErrorKind = "transport"
	ErrorKindHandlerResolution   ErrorKind = "handler_resolution"
	ErrorKindPersistence         ErrorKind = "persistence"
	ErrorKindInternal            ErrorKind = "internal"
)

// PaymentError is the only error order creation returns. Message is already
// localized for the shopper and Code is always 400; the root cause is logged,
// not exposed.
type PaymentError struct {
	Kind    ErrorKind
	Message string
	Code    int
}

func (e *PaymentError) Error() string {
	return e.Message
}

func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrAmountMismatch):
		return ErrorKindValidation
	case errors.Is(err, ErrChargeFailed):
		return ErrorKindRemoteChargeFailure
	case errors.Is(err, ErrGatewayTransport):
		return ErrorKindTransport
	case errors.Is(err, ErrUnresolvableResponse):
		return ErrorKindHandlerResolution
	case errors.Is(err, ErrPersistence):
		return ErrorKindPersistence
	default:
		return ErrorKindInternal
	}
}

// userFacingError carries a localized message that may be shown as is.
type userFacingError struct {
	cause   error
	message string
}

func (e *userFacingError) Error() string { return e.message }
func (e *userFacingError) Unwrap() error { return e.cause }

func newUserFacingError(cause error, message string) error {
	return &userFacingError{cause: cause, message: message}
}

func persistenceError(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, what, err)
}

// ErrorExceptionHandler turns an order creation failure into the front message.
type ErrorExceptionHandler struct {
	i18n i18n.Translator
}

func NewErrorExceptionHandler(t i18n.Translator) *ErrorExceptionHandler {
	return &ErrorExceptionHandler{i18n: t}
}

func (h *ErrorExceptionHandler) Handle(err error, paymentOrder entities.PaymentOrder) string {
	var ufe *userFacingError
	if errors.As(err, &ufe) {
		return ufe.message
	}
	return h.i18n.Dashboard(i18n.MsgOrderErrorRef, paymentOrder.Code)
}
