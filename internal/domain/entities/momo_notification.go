package entities

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrNoOrderRef = errors.New("no order reference")

// MomoNotification is the IPN payload MoMo posts to the webhook. Immutable,
// received once per call. Field names follow MoMo's JSON schema.
type MomoNotification struct {
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

// OrderRef is the order reference recovered from a notification.
// RestaurantID may be empty when the reference came from the free-text
// order description; the locator then resolves it by search.
type OrderRef struct {
	RestaurantID string `json:"restaurantId"`
	OrderID      string `json:"orderId"`
}

// Payment forms render the order description as "TT Ban <table> DH <order>".
var orderInfoPattern = regexp.MustCompile(`(?i)DH\s*([A-Za-z0-9-]+)`)

// ParseOrderRef recovers an OrderRef from the free-text order description and
// the optional base64 side-channel. The side-channel wins when it decodes to
// JSON carrying both ids; otherwise the description is pattern-matched for an
// order id. Decode/parse failures are never propagated: they collapse into
// ErrNoOrderRef like any other unparseable input.
func ParseOrderRef(orderInfo, extraData string) (OrderRef, error) {
	if extraData != "" {
		if ref, ok := parseExtraData(extraData); ok {
			return ref, nil
		}
	}

	if m := orderInfoPattern.FindStringSubmatch(orderInfo); m != nil {
		return OrderRef{OrderID: m[1]}, nil
	}

	return OrderRef{}, ErrNoOrderRef
}

func parseExtraData(extraData string) (OrderRef, bool) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(extraData))
	if err != nil {
		return OrderRef{}, false
	}

	var ref OrderRef
	if err := json.Unmarshal(decoded, &ref); err != nil {
		return OrderRef{}, false
	}
	if ref.RestaurantID == "" || ref.OrderID == "" {
		return OrderRef{}, false
	}
	return ref, true
}
