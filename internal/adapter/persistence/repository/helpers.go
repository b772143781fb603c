package repository

import (
	"os"
	"time"

	"payment_sync/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// snapshotOrder copies an order without its platform order reference.
func snapshotOrder(o *entities.Order) *entities.Order {
	return entities.RestoreOrder(o.GatewayID, o.Code, o.PlatformID, o.Status, o.Charges(), o.CreatedAt, o.UpdatedAt)
}
