package handlers

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// --- mock implementations ---

// mockSnap records token requests and returns a canned token or error.
type mockSnap struct {
	calls   int
	lastReq *snap.Request
	token   string
	err     *midtrans.Error
}

func (m *mockSnap) CreateTransactionToken(req *snap.Request) (string, *midtrans.Error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

// mockMessaging records FCM sends and returns a canned message id or error.
type mockMessaging struct {
	calls   int
	lastMsg *messaging.Message
	id      string
	err     error
}

func (m *mockMessaging) Send(ctx context.Context, message *messaging.Message) (string, error) {
	m.calls++
	m.lastMsg = message
	if m.err != nil {
		return "", m.err
	}
	return m.id, nil
}
