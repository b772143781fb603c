package usecase

import (
	"context"
	"errors"
	"testing"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/i18n"
)

func reconcilerCharges() []entities.Charge {
	return []entities.Charge{
		{GatewayID: "ch_1", Amount: 5000, PaidAmount: 5000, Status: entities.ChargeStatusPaid},
		{GatewayID: "ch_2", Amount: 2500, CanceledAmount: 2500, Status: entities.ChargeStatusCanceled},
		{GatewayID: "ch_3", Amount: 1999, PaidAmount: 1999, RefundedAmount: 1000, Status: entities.ChargeStatusRefunded},
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		if got := ComputeTotals(nil); got != (ChargeTotals{}) {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})

	t.Run("sums every amount", func(t *testing.T) {
		got := ComputeTotals(reconcilerCharges())
		want := ChargeTotals{Paid: 6999, Canceled: 2500, Refunded: 1000}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("order independent", func(t *testing.T) {
		c := reconcilerCharges()
		want := ComputeTotals(c)
		permutations := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
		for _, p := range permutations {
			permuted := []entities.Charge{c[p[0]], c[p[1]], c[p[2]]}
			if got := ComputeTotals(permuted); got != want {
				t.Fatalf("permutation %v: expected %+v, got %+v", p, want, got)
			}
		}
	})
}

func newReconcilerService() *OrderService {
	return &OrderService{i18n: i18n.NewCatalog("en_US")}
}

func TestOrderService_SyncPlatformWith(t *testing.T) {
	t.Run("writes totals in major units and saves once", func(t *testing.T) {
		platform := newFakePlatformOrder("100001", "94.99")
		order := entities.NewOrder("or_1", "100001", entities.OrderStatusPaid, reconcilerCharges())
		order.SetPlatformOrder(platform)

		if err := newReconcilerService().SyncPlatformWith(context.Background(), order, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if platform.totalPaid.String() != "69.99" || platform.basePaid.String() != "69.99" {
			t.Fatalf("unexpected paid totals: %s / %s", platform.totalPaid, platform.basePaid)
		}
		if platform.totalCanceled.String() != "25" || platform.baseCanceled.String() != "25" {
			t.Fatalf("unexpected canceled totals: %s / %s", platform.totalCanceled, platform.baseCanceled)
		}
		if platform.totalRefunded.String() != "10" || platform.baseRefunded.String() != "10" {
			t.Fatalf("unexpected refunded totals: %s / %s", platform.totalRefunded, platform.baseRefunded)
		}
		if platform.saves != 1 {
			t.Fatalf("expected exactly one save, got %d", platform.saves)
		}
		if platform.statusWrites != 0 {
			t.Fatalf("expected no status write without changeStatus, got %d", platform.statusWrites)
		}
	})

	t.Run("paid is shown as processing", func(t *testing.T) {
		platform := newFakePlatformOrder("100001", "50.00")
		order := entities.NewOrder("or_1", "100001", entities.OrderStatusPaid, nil)
		order.SetPlatformOrder(platform)

		if err := newReconcilerService().SyncPlatformWith(context.Background(), order, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if platform.status != entities.OrderStatusProcessing {
			t.Fatalf("expected processing, got %s", platform.status)
		}
		if platform.saves != 1 {
			t.Fatalf("expected exactly one save, got %d", platform.saves)
		}
	})

	t.Run("closed platform order keeps its status", func(t *testing.T) {
		for _, status := range []entities.OrderStatus{
			entities.OrderStatusPaid,
			entities.OrderStatusCanceled,
			entities.OrderStatusPending,
		} {
			platform := newFakePlatformOrder("100001", "50.00")
			platform.state = entities.OrderStateClosed
			platform.status = entities.OrderStatusRefunded
			order := entities.NewOrder("or_1", "100001", status, nil)
			order.SetPlatformOrder(platform)

			if err := newReconcilerService().SyncPlatformWith(context.Background(), order, true); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if platform.statusWrites != 0 || platform.status != entities.OrderStatusRefunded {
				t.Fatalf("closed order status written for %s: %s", status, platform.status)
			}
		}
	})

	t.Run("missing platform order", func(t *testing.T) {
		order := entities.NewOrder("or_1", "100001", entities.OrderStatusPaid, nil)
		err := newReconcilerService().SyncPlatformWith(context.Background(), order, true)
		if !errors.Is(err, ErrPlatformOrderMissing) {
			t.Fatalf("expected ErrPlatformOrderMissing, got %v", err)
		}
	})

	t.Run("save failure is a persistence error", func(t *testing.T) {
		platform := newFakePlatformOrder("100001", "50.00")
		platform.saveErr = errors.New("db down")
		order := entities.NewOrder("or_1", "100001", entities.OrderStatusPaid, nil)
		order.SetPlatformOrder(platform)

		err := newReconcilerService().SyncPlatformWith(context.Background(), order, true)
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}
