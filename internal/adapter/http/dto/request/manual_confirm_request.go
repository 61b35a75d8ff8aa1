package request

import "strings"

// ManualConfirmRequest is the payload for the staff-driven confirmation
// endpoint, used after checking the MoMo account by hand.
type ManualConfirmRequest struct {
	RestaurantID  string `json:"restaurant_id" binding:"required"`
	OrderID       string `json:"order_id" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

func (r ManualConfirmRequest) ResolveRestaurantID() string {
	return strings.TrimSpace(r.RestaurantID)
}

func (r ManualConfirmRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}
