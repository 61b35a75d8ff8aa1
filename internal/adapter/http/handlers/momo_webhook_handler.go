package handlers

import (
	"errors"
	"log"
	"net/http"

	request "quanngon_payments/internal/adapter/http/dto/request"
	response "quanngon_payments/internal/adapter/http/dto/response"
	"quanngon_payments/internal/domain/entities"
	"quanngon_payments/internal/usecase"
	"quanngon_payments/pkg"

	"github.com/gin-gonic/gin"
)

// MomoWebhookHandler receives MoMo IPN callbacks.
//
// Response policy: anything that is "received but not actionable" (failed
// payment, unparseable reference, unknown or ambiguous order, duplicate
// completion) is acknowledged with 200 so MoMo does not retry. Only a bad
// signature and infrastructure failures answer non-2xx.

type MomoWebhookHandler struct {
	usecase usecase.IPaymentConfirmationUseCase
}

func NewMomoWebhookHandler(uc usecase.IPaymentConfirmationUseCase) *MomoWebhookHandler {
	return &MomoWebhookHandler{usecase: uc}
}

// HandleIPN godoc
// @Summary      MoMo IPN webhook
// @Description  Receives the asynchronous payment-result notification from MoMo and completes the matching pending payment.
// @Tags         momo
// @Accept       json
// @Produce      json
// @Param        notification  body      request.MomoIPNRequest  true  "IPN payload"
// @Success      200           {object}  response.WebhookResponse
// @Failure      403           {object}  response.WebhookResponse
// @Failure      500           {object}  pkg.HTTPError
// @Router       /momo/ipn [post]
func (h *MomoWebhookHandler) HandleIPN(c *gin.Context) {
	var payload request.MomoIPNRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		// Malformed provider input gets acknowledged, not retried.
		log.Printf("[payment][handler] ipn malformed body err=%v", err)
		c.JSON(http.StatusOK, response.Received("malformed notification"))
		return
	}
	log.Printf("[payment][handler] ipn received momo_order_id=%s trans_id=%d result_code=%d", payload.OrderID, payload.TransID, payload.ResultCode)

	p, err := h.usecase.ConfirmFromIPN(c.Request.Context(), payload.ToNotification())
	if err != nil {
		h.answerIPNError(c, err)
		return
	}

	log.Printf("[payment][handler] ipn confirmed restaurant_id=%s order_id=%s", p.RestaurantID, p.OrderID)
	c.JSON(http.StatusOK, response.Success("payment confirmed", p.OrderID))
}

func (h *MomoWebhookHandler) answerIPNError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotSuccessful):
		c.JSON(http.StatusOK, response.Received("payment not successful"))
	case errors.Is(err, usecase.ErrInvalidSignature):
		log.Printf("[payment][handler] ipn rejected: invalid signature")
		c.JSON(http.StatusForbidden, response.Rejected("invalid signature"))
	case errors.Is(err, entities.ErrNoOrderRef):
		c.JSON(http.StatusOK, response.Received("cannot parse order info"))
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusOK, response.Received("order not found"))
	case errors.Is(err, usecase.ErrAmbiguousOrderRef):
		c.JSON(http.StatusOK, response.Received("ambiguous order reference"))
	case errors.Is(err, usecase.ErrAlreadyCompleted):
		c.JSON(http.StatusOK, response.Received("order already completed"))
	default:
		log.Printf("[payment][handler] ipn internal error err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}
