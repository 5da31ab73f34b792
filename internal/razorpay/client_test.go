package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestToPaise(t *testing.T) {
	cases := map[float64]int64{
		500:    50000,
		0.01:   1,
		123.45: 12345,
		99.999: 10000,
	}
	for amount, want := range cases {
		if got := ToPaise(amount); got != want {
			t.Errorf("ToPaise(%v) = %d, want %d", amount, got, want)
		}
	}
}

func TestReceipt_Bounded(t *testing.T) {
	now := time.Unix(1700000000, 0)
	r := Receipt("4f2a9c31-77aa-4bde-9c55-1d2e3f405060", now)
	if len(r) > MaxReceiptLen {
		t.Fatalf("receipt too long: %d", len(r))
	}
	if !strings.Contains(r, "4f2a9c31") {
		t.Errorf("receipt missing due prefix: %q", r)
	}
	if !strings.HasPrefix(r, "1700000000000-") {
		t.Errorf("receipt missing timestamp: %q", r)
	}
}

func TestCreateOrder(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotReq CreateOrderRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(Order{ID: "order_abc", Amount: gotReq.Amount, Currency: gotReq.Currency, Status: "created"})
	}))
	defer ts.Close()

	c, err := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "secret", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	order, err := c.CreateOrder(context.Background(), CreateOrderRequest{
		Amount:   50000,
		Currency: "INR",
		Receipt:  "r-1",
		Notes:    map[string]string{"assignment_id": "D1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "order_abc" {
		t.Errorf("order id mismatch: %q", order.ID)
	}
	if gotAuthUser != "rzp_test_key" || gotAuthPass != "secret" {
		t.Errorf("basic auth mismatch: %q/%q", gotAuthUser, gotAuthPass)
	}
	if gotReq.Amount != 50000 || gotReq.Currency != "INR" {
		t.Errorf("request body mismatch: %+v", gotReq)
	}
	if gotReq.Notes["assignment_id"] != "D1" {
		t.Errorf("notes not forwarded: %+v", gotReq.Notes)
	}
}

func TestCreateOrder_Non2xxReturnsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"description":"bad key"}}`))
	}))
	defer ts.Close()

	c, err := NewClient(Config{KeyID: "k", KeySecret: "s", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.CreateOrder(context.Background(), CreateOrderRequest{Amount: 100, Currency: "INR"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *razorpay.Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("unexpected status code: %d", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Errorf("expected body to be populated")
	}
}

func TestNewClient_RequiresKeys(t *testing.T) {
	if _, err := NewClient(Config{KeySecret: "s"}); err == nil {
		t.Error("expected error for missing key id")
	}
	if _, err := NewClient(Config{KeyID: "k"}); err == nil {
		t.Error("expected error for missing secret")
	}
}
