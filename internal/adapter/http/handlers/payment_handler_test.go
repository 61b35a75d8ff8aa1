package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quanngon_payments/internal/adapter/http/handlers/mocks"
	"quanngon_payments/internal/domain/entities"
	"quanngon_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/confirm", h.ConfirmPayment)
	r.GET("/v1/payments/:restaurant_id/:order_id", h.GetPayment)
	return r
}

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString(`{"restaurant_id":"R1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ConfirmManual(gomock.Any(), "R1", "order-1", "").Return(entities.PendingPayment{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString(`{"restaurant_id":"R1","order_id":"order-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("already completed conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ConfirmManual(gomock.Any(), "R1", "order-1", "tx-2").Return(entities.PendingPayment{}, usecase.ErrAlreadyCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString(`{"restaurant_id":"R1","order_id":"order-1","transaction_id":"tx-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ConfirmManual(gomock.Any(), "R1", "order-1", "").
			Return(entities.PendingPayment{
				RestaurantID:  "R1",
				OrderID:       "order-1",
				Status:        entities.PaymentStatusCompleted,
				TransactionID: "MANUAL_abc",
				CompletedAt:   1700000000000,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString(`{"restaurant_id":"R1","order_id":"order-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "completed" || body["transaction_id"] != "MANUAL_abc" {
			t.Fatalf("unexpected response: %+v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ConfirmManual(gomock.Any(), "R1", "order-1", "").Return(entities.PendingPayment{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString(`{"restaurant_id":"R1","order_id":"order-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetByKey(gomock.Any(), "R1", "missing").Return(entities.PendingPayment{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/R1/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetByKey(gomock.Any(), "R1", "order-1").
			Return(entities.PendingPayment{RestaurantID: "R1", OrderID: "order-1", Status: entities.PaymentStatusPending, CreatedAt: 1700000000000}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/R1/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "pending" || body["order_id"] != "order-1" {
			t.Fatalf("unexpected response: %+v", body)
		}
	})
}
