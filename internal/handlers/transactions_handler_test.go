package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/midtrans/midtrans-go"
)

func newTransactionRouter(m *mockSnap) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	RegisterTransactionRoutes(r, HandlerConfig{Snap: m})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestCreateTransaction_Success(t *testing.T) {
	m := &mockSnap{token: "snap-token-abc"}
	r := newTransactionRouter(m)

	w := postJSON(t, r, "/create-transaction", `{"items":[
		{"productName":"A","price":10.4,"quantity":2},
		{"productName":"B","price":5,"quantity":1.6}
	]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["token"] != "snap-token-abc" {
		t.Fatalf("expected opaque token in response, got %v", body)
	}

	if m.calls != 1 {
		t.Fatalf("expected exactly one gateway call, got %d", m.calls)
	}
	if got := m.lastReq.TransactionDetails.GrossAmt; got != 30 {
		t.Fatalf("expected gross amount 30, got %d", got)
	}
	if !strings.HasPrefix(m.lastReq.TransactionDetails.OrderID, "ORDER-") {
		t.Fatalf("unexpected order id %q", m.lastReq.TransactionDetails.OrderID)
	}

	items := *m.lastReq.Items
	if len(items) != 2 {
		t.Fatalf("expected 2 item details, got %d", len(items))
	}
	if items[0].Price != 10 || items[0].Qty != 2 {
		t.Fatalf("item A not normalized: %+v", items[0])
	}
	if items[1].Price != 5 || items[1].Qty != 2 {
		t.Fatalf("item B not normalized: %+v", items[1])
	}
}

func TestCreateTransaction_EmptyItems(t *testing.T) {
	m := &mockSnap{token: "unused"}
	r := newTransactionRouter(m)

	for _, body := range []string{`{"items":[]}`, `{}`, `{"items":"nope"}`, `{"items":42}`} {
		w := postJSON(t, r, "/create-transaction", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
		if _, ok := decodeBody(t, w)["error"]; !ok {
			t.Fatalf("body %s: expected error message in response", body)
		}
	}
	if m.calls != 0 {
		t.Fatalf("gateway must not be called for invalid items, got %d calls", m.calls)
	}
}

func TestCreateTransaction_MalformedItem(t *testing.T) {
	m := &mockSnap{token: "unused"}
	r := newTransactionRouter(m)

	cases := []string{
		`{"items":[{"price":10,"quantity":1}]}`,
		`{"items":[{"productName":"A","price":"10","quantity":1}]}`,
		`{"items":[{"productName":"A","price":10,"quantity":"1"}]}`,
		`{"items":[{"productName":"A","price":10,"quantity":1},{"productName":"","price":1,"quantity":1}]}`,
	}
	for _, body := range cases {
		w := postJSON(t, r, "/create-transaction", body)
		// item-level validation failures surface as 500, not 400
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("body %s: expected 500, got %d", body, w.Code)
		}
		resp := decodeBody(t, w)
		if msg, _ := resp["error"].(string); !strings.Contains(msg, "productName") {
			t.Fatalf("body %s: expected descriptive message, got %v", body, resp)
		}
	}
	if m.calls != 0 {
		t.Fatalf("gateway must not be called for malformed items, got %d calls", m.calls)
	}
}

func TestCreateTransaction_GatewayFailure(t *testing.T) {
	m := &mockSnap{err: &midtrans.Error{Message: "midtrans: access denied", StatusCode: 401}}
	r := newTransactionRouter(m)

	w := postJSON(t, r, "/create-transaction", `{"items":[{"productName":"A","price":10,"quantity":1}]}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	resp := decodeBody(t, w)
	if msg, _ := resp["error"].(string); !strings.Contains(msg, "access denied") {
		t.Fatalf("expected underlying message in response, got %v", resp)
	}
	if m.calls != 1 {
		t.Fatalf("expected one gateway call, got %d", m.calls)
	}
}
