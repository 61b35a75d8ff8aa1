package interfaces

import "quanngon_payments/internal/domain/entities"

// ISignatureVerifier abstracts IPN authenticity checks (e.g. MoMo HMAC).
type ISignatureVerifier interface {
	Verify(n entities.MomoNotification) bool
}
