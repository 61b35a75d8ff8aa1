package handlers

import (
	"errors"
	"log"
	"net/http"

	request "quanngon_payments/internal/adapter/http/dto/request"
	response "quanngon_payments/internal/adapter/http/dto/response"
	"quanngon_payments/internal/usecase"
	"quanngon_payments/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfirmPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing restaurant_id or order_id", http.StatusBadRequest)

// PaymentHandler handles the app-facing payment endpoints: manual
// confirmation by staff and record lookup by the client.

type PaymentHandler struct {
	usecase usecase.IPaymentConfirmationUseCase
}

func NewPaymentHandler(uc usecase.IPaymentConfirmationUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ConfirmPayment godoc
// @Summary      Manually confirm a payment
// @Description  Marks a pending payment completed after staff verified the transfer in the MoMo account.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        confirmation  body      request.ManualConfirmRequest  true  "Confirmation payload"
// @Success      200           {object}  response.PendingPaymentResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      404           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Router       /payments/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ManualConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfirmPayload.HTTPStatus, errInvalidConfirmPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] manual confirm start restaurant_id=%s order_id=%s", payload.ResolveRestaurantID(), payload.ResolveOrderID())

	p, err := h.usecase.ConfirmManual(c.Request.Context(), payload.ResolveRestaurantID(), payload.ResolveOrderID(), payload.TransactionID)
	if err != nil {
		log.Printf("[payment][handler] manual confirm failed restaurant_id=%s order_id=%s err=%v", payload.ResolveRestaurantID(), payload.ResolveOrderID(), err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] manual confirm success restaurant_id=%s order_id=%s transaction_id=%s", p.RestaurantID, p.OrderID, p.TransactionID)
	c.JSON(http.StatusOK, response.FromPendingPayment(p))
}

// GetPayment godoc
// @Summary      Get a payment record
// @Tags         payments
// @Produce      json
// @Param        restaurant_id  path      string  true  "Restaurant id"
// @Param        order_id       path      string  true  "Order id"
// @Success      200            {object}  response.PendingPaymentResponse
// @Failure      404            {object}  pkg.HTTPError
// @Router       /payments/{restaurant_id}/{order_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")
	orderID := c.Param("order_id")

	p, err := h.usecase.GetByKey(c.Request.Context(), restaurantID, orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPendingPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfirmInput):
		return errInvalidConfirmPayload
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_COMPLETED", "Payment already completed by another transaction", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
