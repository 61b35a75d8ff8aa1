package interfaces

import (
	"context"

	"quanngon_payments/internal/domain/entities"
)

// IPendingPaymentRepository abstracts DynamoDB persistence for PendingPayment.
//
// The confirmation flow must be able to:
//   - look a record up by its composite key
//   - scan every record when the notification carries no restaurant id
//   - apply the pending -> completed transition as a guarded partial update
//   - remove stale records in batch (sweeper)

type IPendingPaymentRepository interface {
	GetByKey(ctx context.Context, restaurantID, orderID string) (entities.PendingPayment, error)
	ListAll(ctx context.Context) ([]entities.PendingPayment, error)
	Complete(ctx context.Context, restaurantID, orderID string, completion entities.PaymentCompletion) (entities.PendingPayment, error)
	DeleteBatch(ctx context.Context, keys []entities.PaymentKey) (int, error)
}
