package routes

import (
	"quanngon_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMomo     = "/momo"
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, webhookHandler *handlers.MomoWebhookHandler, paymentHandler *handlers.PaymentHandler) {
	momo := rg.Group(PathMomo)
	{
		// IPN callback registered in the MoMo partner console.
		momo.POST("/ipn", webhookHandler.HandleIPN)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/confirm", paymentHandler.ConfirmPayment)
		payments.GET("/:restaurant_id/:order_id", paymentHandler.GetPayment)
	}
}
