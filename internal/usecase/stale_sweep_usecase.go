package usecase

import (
	"context"
	"log"
	"time"

	"quanngon_payments/internal/domain/entities"
	"quanngon_payments/internal/usecase/interfaces"
)

const (
	DefaultPendingTTL   = 24 * time.Hour
	DefaultCompletedTTL = 72 * time.Hour
)

// IStaleSweepUseCase removes records past their retention window.
type IStaleSweepUseCase interface {
	SweepStale(ctx context.Context, now time.Time) (int, error)
}

// StaleSweepUseCase scans the whole table and batch-deletes stale records.
//
// Pending records older than pendingTTL are abandoned checkouts. Completed
// records are retained longer (completedTTL) so a slow client can still
// observe the completion before it disappears. The status check happens
// before the age check, so a record being completed concurrently is judged
// by the lifetime of the status it already has.
type StaleSweepUseCase struct {
	repo         interfaces.IPendingPaymentRepository
	pendingTTL   time.Duration
	completedTTL time.Duration
}

var _ IStaleSweepUseCase = (*StaleSweepUseCase)(nil)

func NewStaleSweepUseCase(repo interfaces.IPendingPaymentRepository, pendingTTL, completedTTL time.Duration) *StaleSweepUseCase {
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingTTL
	}
	if completedTTL <= 0 {
		completedTTL = DefaultCompletedTTL
	}
	return &StaleSweepUseCase{repo: repo, pendingTTL: pendingTTL, completedTTL: completedTTL}
}

func (u *StaleSweepUseCase) SweepStale(ctx context.Context, now time.Time) (int, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	var stale []entities.PaymentKey
	for _, record := range all {
		if u.isStale(record, now) {
			stale = append(stale, entities.PaymentKey{RestaurantID: record.RestaurantID, OrderID: record.OrderID})
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	deleted, err := u.repo.DeleteBatch(ctx, stale)
	if err != nil {
		return deleted, err
	}
	log.Printf("[payment][sweeper] removed %d stale payment records", deleted)
	return deleted, nil
}

func (u *StaleSweepUseCase) isStale(record entities.PendingPayment, now time.Time) bool {
	switch record.Status {
	case entities.PaymentStatusCompleted:
		at := record.CompletedAt
		if at == 0 {
			at = record.CreatedAt
		}
		return at < now.Add(-u.completedTTL).UnixMilli()
	default:
		if record.CreatedAt == 0 {
			return false
		}
		return record.CreatedAt < now.Add(-u.pendingTTL).UnixMilli()
	}
}
