package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quanngon_payments/internal/adapter/http/handlers/mocks"
	"quanngon_payments/internal/domain/entities"
	"quanngon_payments/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func ipnRouter(h *MomoWebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/momo/ipn", h.HandleIPN)
	return r
}

func postIPN(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/momo/ipn", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeAck(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return body
}

func TestMomoWebhookHandler_HandleIPN(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed body is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := ipnRouter(NewMomoWebhookHandler(uc))

		w := postIPN(r, "{not json")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeAck(t, w); body["status"] != "received" {
			t.Fatalf("expected received ack, got %+v", body)
		}
	})

	t.Run("failed payment is acknowledged without mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := ipnRouter(NewMomoWebhookHandler(uc))

		uc.EXPECT().ConfirmFromIPN(gomock.Any(), gomock.Any()).Return(entities.PendingPayment{}, usecase.ErrPaymentNotSuccessful)

		w := postIPN(r, `{"resultCode":9000,"orderInfo":"TT Ban 3 DH AB12"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeAck(t, w)
		if body["status"] != "received" || body["message"] != "payment not successful" {
			t.Fatalf("unexpected ack: %+v", body)
		}
	})

	t.Run("invalid signature is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := ipnRouter(NewMomoWebhookHandler(uc))

		uc.EXPECT().ConfirmFromIPN(gomock.Any(), gomock.Any()).Return(entities.PendingPayment{}, usecase.ErrInvalidSignature)

		w := postIPN(r, `{"resultCode":0,"signature":"bad"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("non-actionable outcomes are acknowledged", func(t *testing.T) {
		cases := map[error]string{
			entities.ErrNoOrderRef:       "cannot parse order info",
			usecase.ErrOrderNotFound:     "order not found",
			usecase.ErrAmbiguousOrderRef: "ambiguous order reference",
			usecase.ErrAlreadyCompleted:  "order already completed",
		}

		for ucErr, message := range cases {
			t.Run(message, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
				r := ipnRouter(NewMomoWebhookHandler(uc))

				uc.EXPECT().ConfirmFromIPN(gomock.Any(), gomock.Any()).Return(entities.PendingPayment{}, ucErr)

				w := postIPN(r, `{"resultCode":0}`)
				if w.Code != http.StatusOK {
					t.Fatalf("expected 200, got %d", w.Code)
				}
				body := decodeAck(t, w)
				if body["status"] != "received" || body["message"] != message {
					t.Fatalf("unexpected ack: %+v", body)
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := ipnRouter(NewMomoWebhookHandler(uc))

		uc.EXPECT().ConfirmFromIPN(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, n entities.MomoNotification) (entities.PendingPayment, error) {
				if n.TransID != 123456789 || n.Amount != 55000 {
					t.Fatalf("payload not forwarded: %+v", n)
				}
				return entities.PendingPayment{RestaurantID: "R1", OrderID: "abc12345xyz", Status: entities.PaymentStatusCompleted}, nil
			})

		w := postIPN(r, `{"resultCode":0,"transId":123456789,"amount":55000,"orderInfo":"TT Ban 3 DH abc12345"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeAck(t, w)
		if body["status"] != "success" || body["orderId"] != "abc12345xyz" {
			t.Fatalf("unexpected response: %+v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := ipnRouter(NewMomoWebhookHandler(uc))

		uc.EXPECT().ConfirmFromIPN(gomock.Any(), gomock.Any()).Return(entities.PendingPayment{}, errors.New("dynamodb unavailable"))

		w := postIPN(r, `{"resultCode":0}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMomoWebhookHandler_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "Authorization"},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}))
	r.POST("/v1/momo/ipn", NewMomoWebhookHandler(uc).HandleIPN)

	req := httptest.NewRequest(http.MethodOptions, "/v1/momo/ipn", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected permissive origin, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
