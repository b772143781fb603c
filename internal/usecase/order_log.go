package usecase

import (
	"log"

	"github.com/shopspring/decimal"

	"payment_sync/internal/domain/entities"
)

// OrderInfo is the order snapshot attached to every order log line.
type OrderInfo struct {
	GrandTotal decimal.Decimal
}

func orderInfoOf(p entities.PlatformOrder) OrderInfo {
	return OrderInfo{GrandTotal: p.GrandTotal()}
}

// OrderLogger writes reconciliation log lines keyed by platform order code.
type OrderLogger struct{}

func (OrderLogger) OrderInfo(code, message string, info OrderInfo) {
	log.Printf("[order][%s] %s grand_total=%s", code, message, info.GrandTotal.StringFixed(2))
}
