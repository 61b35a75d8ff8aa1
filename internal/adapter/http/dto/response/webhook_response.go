package response

// WebhookResponse is the acknowledgment body returned to MoMo. Non-actionable
// notifications still answer `received` with 200 so the provider does not
// retry; only `success` means a record was transitioned.
type WebhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}

func Received(message string) WebhookResponse {
	return WebhookResponse{Status: "received", Message: message}
}

func Rejected(message string) WebhookResponse {
	return WebhookResponse{Status: "rejected", Message: message}
}

func Success(message, orderID string) WebhookResponse {
	return WebhookResponse{Status: "success", Message: message, OrderID: orderID}
}
