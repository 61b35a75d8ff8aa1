package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"quanngon_payments/internal/domain/entities"
	"quanngon_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotSuccessful = errors.New("payment not successful")
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrOrderNotFound        = errors.New("order not found")
	ErrAmbiguousOrderRef    = errors.New("ambiguous order reference")
	ErrAlreadyCompleted     = errors.New("payment already completed")
	ErrInvalidConfirmInput  = errors.New("missing restaurant_id or order_id")
)

// orderKeyPrefixLen is how much of a stored order key the payment form is
// known to truncate it to. Matching falls back to this prefix when the
// notification carries a shortened id.
const orderKeyPrefixLen = 8

// IPaymentConfirmationUseCase exposes payment confirmation operations.
//
// These map to the webhook surface:
//   - MoMo IPN callback => ConfirmFromIPN()
//   - staff manual confirmation => ConfirmManual()
//   - client status lookup => GetByKey()
type IPaymentConfirmationUseCase interface {
	ConfirmFromIPN(ctx context.Context, n entities.MomoNotification) (entities.PendingPayment, error)
	ConfirmManual(ctx context.Context, restaurantID, orderID, transactionID string) (entities.PendingPayment, error)
	GetByKey(ctx context.Context, restaurantID, orderID string) (entities.PendingPayment, error)
}

type PaymentConfirmationUseCase struct {
	repo     interfaces.IPendingPaymentRepository
	verifier interfaces.ISignatureVerifier
}

var _ IPaymentConfirmationUseCase = (*PaymentConfirmationUseCase)(nil)

func NewPaymentConfirmationUseCase(repo interfaces.IPendingPaymentRepository, verifier interfaces.ISignatureVerifier) *PaymentConfirmationUseCase {
	return &PaymentConfirmationUseCase{repo: repo, verifier: verifier}
}

// ConfirmFromIPN runs the full notification pipeline: result-code check,
// signature verification, order-reference extraction, pending-record lookup,
// and the pending -> completed transition.
func (u *PaymentConfirmationUseCase) ConfirmFromIPN(ctx context.Context, n entities.MomoNotification) (entities.PendingPayment, error) {
	log.Printf("[payment][usecase] ipn start momo_order_id=%s trans_id=%d result_code=%d", n.OrderID, n.TransID, n.ResultCode)

	if n.ResultCode != 0 {
		log.Printf("[payment][usecase] ipn not successful result_code=%d", n.ResultCode)
		return entities.PendingPayment{}, ErrPaymentNotSuccessful
	}

	if u.verifier == nil {
		return entities.PendingPayment{}, errors.New("signature verifier not configured")
	}
	if !u.verifier.Verify(n) {
		log.Printf("[payment][usecase] ipn signature mismatch momo_order_id=%s", n.OrderID)
		return entities.PendingPayment{}, ErrInvalidSignature
	}

	ref, err := entities.ParseOrderRef(n.OrderInfo, n.ExtraData)
	if err != nil {
		log.Printf("[payment][usecase] ipn unparseable order info order_info=%q", n.OrderInfo)
		return entities.PendingPayment{}, err
	}
	log.Printf("[payment][usecase] ipn parsed ref restaurant_id=%q order_id=%q", ref.RestaurantID, ref.OrderID)

	record, err := u.locate(ctx, ref)
	if err != nil {
		return entities.PendingPayment{}, err
	}

	completion := entities.PaymentCompletion{
		TransactionID: strconv.FormatInt(n.TransID, 10),
		MomoOrderID:   n.OrderID,
		Amount:        n.Amount,
		CompletedAt:   time.Now().UTC().UnixMilli(),
		MomoResponse: &entities.MomoResponse{
			ResultCode:   n.ResultCode,
			Message:      n.Message,
			PayType:      n.PayType,
			ResponseTime: n.ResponseTime,
		},
	}

	return u.complete(ctx, record, completion)
}

// ConfirmManual applies the same completion as the IPN path, driven by staff
// checking the MoMo account by hand. A transaction id is synthesized when the
// caller does not supply one.
func (u *PaymentConfirmationUseCase) ConfirmManual(ctx context.Context, restaurantID, orderID, transactionID string) (entities.PendingPayment, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	orderID = strings.TrimSpace(orderID)
	if restaurantID == "" || orderID == "" {
		return entities.PendingPayment{}, ErrInvalidConfirmInput
	}

	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		transactionID = "MANUAL_" + uuid.NewString()
	}
	log.Printf("[payment][usecase] manual confirm start restaurant_id=%s order_id=%s transaction_id=%s", restaurantID, orderID, transactionID)

	record, err := u.repo.GetByKey(ctx, restaurantID, orderID)
	if err != nil {
		return entities.PendingPayment{}, err
	}
	if record.Status == "" {
		log.Printf("[payment][usecase] manual confirm not-found restaurant_id=%s order_id=%s", restaurantID, orderID)
		return entities.PendingPayment{}, ErrOrderNotFound
	}

	completion := entities.PaymentCompletion{
		TransactionID: transactionID,
		CompletedAt:   time.Now().UTC().UnixMilli(),
	}
	return u.complete(ctx, record, completion)
}

func (u *PaymentConfirmationUseCase) GetByKey(ctx context.Context, restaurantID, orderID string) (entities.PendingPayment, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	orderID = strings.TrimSpace(orderID)
	if restaurantID == "" || orderID == "" {
		return entities.PendingPayment{}, ErrInvalidConfirmInput
	}

	record, err := u.repo.GetByKey(ctx, restaurantID, orderID)
	if err != nil {
		return entities.PendingPayment{}, err
	}
	if record.Status == "" {
		return entities.PendingPayment{}, ErrOrderNotFound
	}
	return record, nil
}

// locate resolves an OrderRef to a stored record. A known restaurant id is
// tried as a direct lookup first; otherwise every record is scanned and
// matched by order-key prefix. A reference matching more than one record is
// an error: the prefix heuristic gives no way to pick the right one.
func (u *PaymentConfirmationUseCase) locate(ctx context.Context, ref entities.OrderRef) (entities.PendingPayment, error) {
	if ref.RestaurantID != "" {
		record, err := u.repo.GetByKey(ctx, ref.RestaurantID, ref.OrderID)
		if err != nil {
			return entities.PendingPayment{}, err
		}
		if record.Status != "" {
			return record, nil
		}
		// Fall through to the scan: the side-channel key may be truncated.
	}

	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.PendingPayment{}, err
	}

	var matches []entities.PendingPayment
	for _, record := range all {
		if matchesOrderKey(record.OrderID, ref.OrderID) {
			matches = append(matches, record)
		}
	}

	switch len(matches) {
	case 0:
		log.Printf("[payment][usecase] order not found order_id=%q", ref.OrderID)
		return entities.PendingPayment{}, ErrOrderNotFound
	case 1:
		return matches[0], nil
	default:
		log.Printf("[payment][usecase] ambiguous order reference order_id=%q matches=%d", ref.OrderID, len(matches))
		return entities.PendingPayment{}, ErrAmbiguousOrderRef
	}
}

// matchesOrderKey matches a stored order key against a reference order id,
// tolerating truncation on either side: the payment form may shorten the
// stored key, or prefix it with extra characters.
func matchesOrderKey(candidate, refOrderID string) bool {
	if candidate == "" || refOrderID == "" {
		return false
	}
	if strings.HasPrefix(candidate, refOrderID) {
		return true
	}
	prefix := candidate
	if len(prefix) > orderKeyPrefixLen {
		prefix = prefix[:orderKeyPrefixLen]
	}
	return strings.HasPrefix(refOrderID, prefix)
}

// complete applies the guarded transition. Re-applying the same transaction
// is a no-op success; a record completed by a different transaction is a
// conflict.
func (u *PaymentConfirmationUseCase) complete(ctx context.Context, record entities.PendingPayment, completion entities.PaymentCompletion) (entities.PendingPayment, error) {
	if record.Status == entities.PaymentStatusCompleted {
		if record.TransactionID == completion.TransactionID {
			log.Printf("[payment][usecase] already completed by same transaction restaurant_id=%s order_id=%s transaction_id=%s", record.RestaurantID, record.OrderID, completion.TransactionID)
			return record, nil
		}
		log.Printf("[payment][usecase] already completed by other transaction restaurant_id=%s order_id=%s have=%s got=%s", record.RestaurantID, record.OrderID, record.TransactionID, completion.TransactionID)
		return entities.PendingPayment{}, ErrAlreadyCompleted
	}

	updated, err := u.repo.Complete(ctx, record.RestaurantID, record.OrderID, completion)
	if err != nil {
		if isConditionalCheckFailed(err) {
			// Lost the race against a concurrent completion.
			log.Printf("[payment][usecase] completion condition failed restaurant_id=%s order_id=%s err=%v", record.RestaurantID, record.OrderID, err)
			return entities.PendingPayment{}, ErrAlreadyCompleted
		}
		log.Printf("[payment][usecase] completion failed restaurant_id=%s order_id=%s err=%v", record.RestaurantID, record.OrderID, err)
		return entities.PendingPayment{}, err
	}

	log.Printf("[payment][usecase] payment confirmed restaurant_id=%s order_id=%s transaction_id=%s", updated.RestaurantID, updated.OrderID, updated.TransactionID)
	return updated, nil
}

func isConditionalCheckFailed(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "conditionalcheckfailed")
}
