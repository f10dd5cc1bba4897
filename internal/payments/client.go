// Package payments wraps the Midtrans Snap client behind a narrow interface
// so handlers can be tested without hitting the gateway.
package payments

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/pradiptarana/checkout-api/internal/checkout"
)

// SnapAPI is the subset of the Snap client the gateway uses.
type SnapAPI interface {
	CreateTransactionToken(req *snap.Request) (string, *midtrans.Error)
}

// NewSnapClient builds a sandbox Snap client. The client key is only used
// by the storefront when rendering the payment page, but Midtrans tooling
// reads it from the package-level config so it is set here alongside the
// server key.
func NewSnapClient(serverKey, clientKey string) *snap.Client {
	midtrans.ClientKey = clientKey

	c := &snap.Client{}
	c.New(serverKey, midtrans.Sandbox)
	return c
}

// Gateway issues transaction tokens for normalized carts.
type Gateway struct {
	snap SnapAPI
}

// NewGateway returns a Gateway bound to a Snap client.
func NewGateway(api SnapAPI) *Gateway {
	return &Gateway{snap: api}
}

// CreateToken exchanges a normalized transaction for an opaque Snap token.
func (g *Gateway) CreateToken(tx *checkout.Transaction) (string, error) {
	items := make([]midtrans.ItemDetails, 0, len(tx.Items))
	for _, it := range tx.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Qty,
		})
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  tx.OrderID,
			GrossAmt: tx.GrossAmount,
		},
		Items: &items,
	}

	token, mErr := g.snap.CreateTransactionToken(req)
	if mErr != nil {
		return "", fmt.Errorf("create transaction token: %w", mErr)
	}
	return token, nil
}
