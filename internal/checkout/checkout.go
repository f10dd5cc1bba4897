// Package checkout validates incoming cart payloads and normalizes them
// into the shape the payment gateway expects.
package checkout

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrEmptyItems indicates the request carried no usable items array.
// Handlers translate it into a 400; every other validation failure is
// reported as a processing error (500), matching the established contract.
var ErrEmptyItems = errors.New("invalid or empty items array")

// errBadItem matches the message callers see for malformed line items.
var errBadItem = errors.New("each item must include productName, price (number), and quantity (number)")

// NormalizedItem is a cart line item with price and quantity rounded to
// whole numbers. Rounding is half-away-from-zero (math.Round).
type NormalizedItem struct {
	ID    string
	Name  string
	Price int64
	Qty   int32
}

// Transaction is the parameter set passed to the payment gateway.
// OrderID is time-derived and not guaranteed globally unique.
type Transaction struct {
	OrderID     string
	GrossAmount int64
	Items       []NormalizedItem
}

// BuildTransaction validates and normalizes a decoded `items` value.
//
// items is the raw JSON value of the request's `items` field. A missing,
// non-array, or empty value returns ErrEmptyItems. Each element must be an
// object with productName (non-empty string), price (number), and quantity
// (number); id is optional and falls back to a millisecond-derived value.
// All items are validated eagerly before anything is returned, so a failure
// on any item rejects the whole cart.
func BuildTransaction(items any) (*Transaction, error) {
	arr, ok := items.([]any)
	if !ok || len(arr) == 0 {
		return nil, ErrEmptyItems
	}

	now := time.Now().UnixMilli()
	normalized := make([]NormalizedItem, 0, len(arr))
	for _, el := range arr {
		item, ok := el.(map[string]any)
		if !ok {
			return nil, errBadItem
		}

		name, ok := item["productName"].(string)
		if !ok || name == "" {
			return nil, errBadItem
		}
		price, ok := item["price"].(float64)
		if !ok {
			return nil, errBadItem
		}
		qty, ok := item["quantity"].(float64)
		if !ok {
			return nil, errBadItem
		}

		id, _ := item["id"].(string)
		if id == "" {
			// not unique when several items miss an id in the same
			// millisecond; callers accept that
			id = fmt.Sprintf("item-%d", now)
		}

		normalized = append(normalized, NormalizedItem{
			ID:    id,
			Name:  name,
			Price: int64(math.Round(price)),
			Qty:   int32(math.Round(qty)),
		})
	}

	var gross int64
	for _, it := range normalized {
		gross += it.Price * int64(it.Qty)
	}

	return &Transaction{
		OrderID:     fmt.Sprintf("ORDER-%d", now),
		GrossAmount: gross,
		Items:       normalized,
	}, nil
}
