// Package notifications delivers order push notifications through Firebase
// Cloud Messaging.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MessagingAPI is the subset of the FCM client the sender uses.
type MessagingAPI interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Credentials is the service-account material for the messaging provider.
// PrivateKey must already contain real newlines.
type Credentials struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

// NewMessagingClient constructs an FCM client from raw service-account
// fields. The fields are not validated here; bad credentials surface as an
// error from the Firebase SDK.
func NewMessagingClient(ctx context.Context, creds Credentials) (*messaging.Client, error) {
	sa, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   creds.ProjectID,
		"client_email": creds.ClientEmail,
		"private_key":  creds.PrivateKey,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal service account: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: creds.ProjectID}, option.WithCredentialsJSON(sa))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}
	return client, nil
}

// Sender builds and sends payment-success notifications.
type Sender struct {
	messaging MessagingAPI
}

// NewSender returns a Sender bound to a messaging client.
func NewSender(api MessagingAPI) *Sender {
	return &Sender{messaging: api}
}

// SendPaymentSuccess pushes the fixed-shape "payment processed" message to
// deviceToken. orderID is interpolated as-is; no presence check is done, so
// a nil id renders its zero representation in the body. It returns the
// provider's message id.
func (s *Sender) SendPaymentSuccess(ctx context.Context, deviceToken string, orderID any) (string, error) {
	msg := &messaging.Message{
		Notification: &messaging.Notification{
			Title: "Pembayaran Berhasil!",
			Body:  fmt.Sprintf("Order #%v telah diproses", orderID),
		},
		Token: deviceToken,
	}

	return s.messaging.Send(ctx, msg)
}
