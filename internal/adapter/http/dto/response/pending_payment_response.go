package response

import "quanngon_payments/internal/domain/entities"

type MomoResponseBody struct {
	ResultCode   int    `json:"result_code"`
	Message      string `json:"message"`
	PayType      string `json:"pay_type"`
	ResponseTime int64  `json:"response_time"`
}

type PendingPaymentResponse struct {
	RestaurantID  string `json:"restaurant_id"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
	CompletedAt   int64  `json:"completed_at,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	MomoOrderID   string `json:"momo_order_id,omitempty"`
	Amount        int64  `json:"amount,omitempty"`

	MomoResponse *MomoResponseBody `json:"momo_response,omitempty"`
}

func FromPendingPayment(p entities.PendingPayment) PendingPaymentResponse {
	res := PendingPaymentResponse{
		RestaurantID:  p.RestaurantID,
		OrderID:       p.OrderID,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		CompletedAt:   p.CompletedAt,
		TransactionID: p.TransactionID,
		MomoOrderID:   p.MomoOrderID,
		Amount:        p.Amount,
	}
	if p.MomoResponse != nil {
		res.MomoResponse = &MomoResponseBody{
			ResultCode:   p.MomoResponse.ResultCode,
			Message:      p.MomoResponse.Message,
			PayType:      p.MomoResponse.PayType,
			ResponseTime: p.MomoResponse.ResponseTime,
		}
	}
	return res
}
