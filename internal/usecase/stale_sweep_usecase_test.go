package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quanngon_payments/internal/domain/entities"
	mock_interfaces "quanngon_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSweepStale_AgeThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
	uc := NewStaleSweepUseCase(repo, 24*time.Hour, 72*time.Hour)

	now := time.Now().UTC()
	old := now.Add(-25 * time.Hour).UnixMilli()
	recent := now.Add(-23 * time.Hour).UnixMilli()

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.PendingPayment{
		{RestaurantID: "R1", OrderID: "old", Status: entities.PaymentStatusPending, CreatedAt: old},
		{RestaurantID: "R1", OrderID: "recent", Status: entities.PaymentStatusPending, CreatedAt: recent},
	}, nil)
	repo.EXPECT().DeleteBatch(gomock.Any(), []entities.PaymentKey{{RestaurantID: "R1", OrderID: "old"}}).Return(1, nil)

	deleted, err := uc.SweepStale(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deletion, got %d", deleted)
	}
}

func TestSweepStale_CompletedRetainedLonger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
	uc := NewStaleSweepUseCase(repo, 24*time.Hour, 72*time.Hour)

	now := time.Now().UTC()
	createdLongAgo := now.Add(-48 * time.Hour).UnixMilli()

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.PendingPayment{
		// Completed 48h ago: inside the 72h completed window, kept even though
		// a pending record of the same age would be swept.
		{RestaurantID: "R1", OrderID: "done-recent", Status: entities.PaymentStatusCompleted, CreatedAt: createdLongAgo, CompletedAt: createdLongAgo},
		{RestaurantID: "R1", OrderID: "done-old", Status: entities.PaymentStatusCompleted, CreatedAt: now.Add(-80 * time.Hour).UnixMilli(), CompletedAt: now.Add(-73 * time.Hour).UnixMilli()},
	}, nil)
	repo.EXPECT().DeleteBatch(gomock.Any(), []entities.PaymentKey{{RestaurantID: "R1", OrderID: "done-old"}}).Return(1, nil)

	if _, err := uc.SweepStale(context.Background(), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSweepStale_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
	uc := NewStaleSweepUseCase(repo, 0, 0) // defaults

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.PendingPayment{
		{RestaurantID: "R1", OrderID: "fresh", Status: entities.PaymentStatusPending, CreatedAt: time.Now().UTC().UnixMilli()},
	}, nil)
	// No DeleteBatch call expected.

	deleted, err := uc.SweepStale(context.Background(), time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("expected 0 deletions, got %d", deleted)
	}
}

func TestSweepStale_MissingCreatedAtIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
	uc := NewStaleSweepUseCase(repo, 24*time.Hour, 72*time.Hour)

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.PendingPayment{
		{RestaurantID: "R1", OrderID: "no-timestamp", Status: entities.PaymentStatusPending},
	}, nil)

	deleted, err := uc.SweepStale(context.Background(), time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("records without created_at must not be swept, got %d deletions", deleted)
	}
}

func TestSweepStale_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
	uc := NewStaleSweepUseCase(repo, 24*time.Hour, 72*time.Hour)

	repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("scan failed"))

	if _, err := uc.SweepStale(context.Background(), time.Now().UTC()); err == nil || err.Error() != "scan failed" {
		t.Fatalf("expected scan error, got %v", err)
	}
}
