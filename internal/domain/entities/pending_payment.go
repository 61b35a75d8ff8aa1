package entities

// PaymentStatus represents the lifecycle of a pending payment.
//
// Domain notes:
//   - A record is created as pending by the ordering flow when checkout starts.
//   - The only legal transition is pending -> completed, applied at most once.
//   - Records past their retention window are removed by the sweeper.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// MomoResponse keeps the provider fields we care about from a confirmed IPN.
// Persisted alongside the payment for traceability/audit.
type MomoResponse struct {
	ResultCode   int    `json:"result_code"`
	Message      string `json:"message"`
	PayType      string `json:"pay_type"`
	ResponseTime int64  `json:"response_time"`
}

// PendingPayment is the payment record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: restaurant_id
//   - SK: order_id
//
// Timestamps are epoch milliseconds, matching what the mobile client writes
// when it creates the record.
type PendingPayment struct {
	RestaurantID string        `json:"restaurant_id"`
	OrderID      string        `json:"order_id"`
	Status       PaymentStatus `json:"status"`
	CreatedAt    int64         `json:"created_at"`

	// Set only on completion.
	CompletedAt   int64         `json:"completed_at,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
	MomoOrderID   string        `json:"momo_order_id,omitempty"`
	Amount        int64         `json:"amount,omitempty"`
	MomoResponse  *MomoResponse `json:"momo_response,omitempty"`
}

// PaymentKey identifies a PendingPayment in the two-level store.
type PaymentKey struct {
	RestaurantID string
	OrderID      string
}

// PaymentCompletion carries the fields written when a payment is confirmed.
// Fields left zero-valued are not written (manual confirmations carry no
// provider metadata).
type PaymentCompletion struct {
	TransactionID string
	MomoOrderID   string
	Amount        int64
	CompletedAt   int64
	MomoResponse  *MomoResponse
}
