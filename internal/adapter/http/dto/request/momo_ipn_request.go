package request

import "quanngon_payments/internal/domain/entities"

// MomoIPNRequest is the IPN callback body posted by MoMo. All fields are
// optional at the binding layer: a partial body is not a binding error, it is
// a notification that will fail signature verification downstream.
type MomoIPNRequest struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature"`
}

func (r MomoIPNRequest) ToNotification() entities.MomoNotification {
	return entities.MomoNotification{
		PartnerCode:  r.PartnerCode,
		OrderID:      r.OrderID,
		RequestID:    r.RequestID,
		Amount:       r.Amount,
		OrderInfo:    r.OrderInfo,
		OrderType:    r.OrderType,
		TransID:      r.TransID,
		ResultCode:   r.ResultCode,
		Message:      r.Message,
		PayType:      r.PayType,
		ResponseTime: r.ResponseTime,
		ExtraData:    r.ExtraData,
		Signature:    r.Signature,
	}
}
