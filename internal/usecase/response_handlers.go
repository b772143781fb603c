package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/i18n"
	"payment_sync/internal/usecase/interfaces"
)

// ResponseHandler finalizes a freshly created order for one response shape.
type ResponseHandler interface {
	Handle(ctx context.Context, order *entities.Order, paymentOrder entities.PaymentOrder) error
}

// ResponseHandlerRegistry maps response shapes to their handler.
type ResponseHandlerRegistry struct {
	handlers map[entities.ResponseKind]ResponseHandler
}

func NewResponseHandlerRegistry() *ResponseHandlerRegistry {
	return &ResponseHandlerRegistry{handlers: map[entities.ResponseKind]ResponseHandler{}}
}

func (r *ResponseHandlerRegistry) Register(kind entities.ResponseKind, h ResponseHandler) *ResponseHandlerRegistry {
	r.handlers[kind] = h
	return r
}

// Resolve returns the handler for the order's response shape, or
// ErrUnresolvableResponse when the shape has none.
func (r *ResponseHandlerRegistry) Resolve(order *entities.Order) (ResponseHandler, error) {
	kind, ok := entities.ResolveResponseKind(order.Charges())
	if !ok {
		return nil, fmt.Errorf("%w: order_id=%s", ErrUnresolvableResponse, order.GatewayID)
	}
	h, ok := r.handlers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind=%s", ErrUnresolvableResponse, kind)
	}
	return h, nil
}

type platformSyncer interface {
	SyncPlatformWith(ctx context.Context, order *entities.Order, changeStatus bool) error
}

// NewDefaultResponseHandlers registers the credit card, boleto, voucher and
// multi-method handlers.
func NewDefaultResponseHandlers(
	orders interfaces.IOrderRepository,
	cards interfaces.ICardRepository,
	config interfaces.IModuleConfiguration,
	syncer platformSyncer,
	translator i18n.Translator,
) *ResponseHandlerRegistry {
	fin := &orderFinalizer{orders: orders, syncer: syncer, i18n: translator}
	card := &cardResponseHandler{cards: cards, config: config, i18n: translator, finalizer: fin}
	boleto := &boletoResponseHandler{i18n: translator, finalizer: fin}
	multi := &multiMethodResponseHandler{card: card, boleto: boleto, finalizer: fin}

	return NewResponseHandlerRegistry().
		Register(entities.ResponseKindCreditCard, card).
		Register(entities.ResponseKindVoucher, card).
		Register(entities.ResponseKindBoleto, boleto).
		Register(entities.ResponseKindMultiMethod, multi)
}

// orderFinalizer runs the steps shared by every response shape.
type orderFinalizer struct {
	orders interfaces.IOrderRepository
	syncer platformSyncer
	i18n   i18n.Translator
}

func (f *orderFinalizer) finalize(ctx context.Context, order *entities.Order) error {
	if err := f.orders.Save(ctx, order); err != nil {
		return persistenceError("save order", err)
	}
	if err := f.syncer.SyncPlatformWith(ctx, order, true); err != nil {
		return err
	}
	if p := order.PlatformOrder(); p != nil {
		p.AddHistoryComment(f.i18n.Dashboard(i18n.MsgOrderCreated, order.GatewayID), false)
	}
	return nil
}

type cardResponseHandler struct {
	cards     interfaces.ICardRepository
	config    interfaces.IModuleConfiguration
	i18n      i18n.Translator
	finalizer *orderFinalizer
}

func (h *cardResponseHandler) Handle(ctx context.Context, order *entities.Order, paymentOrder entities.PaymentOrder) error {
	for _, charge := range order.Charges() {
		h.apply(ctx, order, paymentOrder, charge)
	}
	return h.finalizer.finalize(ctx, order)
}

// apply saves the card of a paid charge when the shopper asked for it.
// A failed save never fails the order.
func (h *cardResponseHandler) apply(ctx context.Context, order *entities.Order, paymentOrder entities.PaymentOrder, charge entities.Charge) {
	if !h.config.IsSaveCards() || paymentOrder.Customer == nil {
		return
	}
	if charge.Status != entities.ChargeStatusPaid || charge.CardID == "" {
		return
	}
	payment, ok := paymentOrder.PaymentFor(charge.PaymentMethod)
	if !ok || !payment.SaveOnSuccess {
		return
	}

	card := entities.SavedCard{
		GatewayID:  charge.CardID,
		OwnerEmail: paymentOrder.Customer.Email,
		CustomerID: charge.CustomerID,
		Method:     charge.PaymentMethod,
		Brand:      charge.CardBrand,
		LastFour:   charge.CardLastFour,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.cards.Save(ctx, card); err != nil {
		log.Printf("[order][handler] save card failed order_id=%s card_id=%s err=%v", order.GatewayID, card.GatewayID, err)
		return
	}
	if p := order.PlatformOrder(); p != nil {
		p.AddHistoryComment(h.i18n.Dashboard(i18n.MsgCardSaved, card.LastFour), false)
	}
}

type boletoResponseHandler struct {
	i18n      i18n.Translator
	finalizer *orderFinalizer
}

func (h *boletoResponseHandler) Handle(ctx context.Context, order *entities.Order, _ entities.PaymentOrder) error {
	for _, charge := range order.Charges() {
		h.apply(order, charge)
	}
	return h.finalizer.finalize(ctx, order)
}

func (h *boletoResponseHandler) apply(order *entities.Order, charge entities.Charge) {
	if charge.BoletoURL == "" {
		return
	}
	if p := order.PlatformOrder(); p != nil {
		p.AddHistoryComment(h.i18n.Dashboard(i18n.MsgBoletoLink, charge.BoletoURL), true)
	}
}

type multiMethodResponseHandler struct {
	card      *cardResponseHandler
	boleto    *boletoResponseHandler
	finalizer *orderFinalizer
}

func (h *multiMethodResponseHandler) Handle(ctx context.Context, order *entities.Order, paymentOrder entities.PaymentOrder) error {
	for _, charge := range order.Charges() {
		switch charge.PaymentMethod {
		case entities.PaymentMethodCreditCard, entities.PaymentMethodVoucher:
			h.card.apply(ctx, order, paymentOrder, charge)
		case entities.PaymentMethodBoleto:
			h.boleto.apply(order, charge)
		}
	}
	return h.finalizer.finalize(ctx, order)
}
