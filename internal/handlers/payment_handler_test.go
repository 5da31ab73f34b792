package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/razorpay"
)

func TestOrderErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"due not found", models.ErrDueNotFound, http.StatusNotFound},
		{"already paid", models.ErrDueAlreadyPaid, http.StatusConflict},
		{"locked", models.ErrDueLocked, http.StatusConflict},
		{"inconsistency", models.ErrPersistenceInconsistency, http.StatusInternalServerError},
		{"gateway client error", &razorpay.Error{StatusCode: 400, Status: "400 Bad Request"}, http.StatusBadRequest},
		{"gateway auth error", &razorpay.Error{StatusCode: 401, Status: "401 Unauthorized"}, http.StatusUnauthorized},
		{"gateway server error", &razorpay.Error{StatusCode: 502, Status: "502 Bad Gateway"}, http.StatusBadGateway},
		{"unknown", errors.New("dial tcp: timeout"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderErrorStatus(tt.err); got != tt.want {
				t.Errorf("orderErrorStatus(%v) = %d; want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestOrderErrorStatus_WrappedError(t *testing.T) {
	err := errors.New("initiate order: " + models.ErrDueAlreadyPaid.Error())
	if got := orderErrorStatus(err); got != http.StatusBadGateway {
		t.Errorf("plain string error mapped to %d; want %d", got, http.StatusBadGateway)
	}

	wrapped := &razorpay.Error{StatusCode: 422, Status: "422 Unprocessable Entity"}
	if got := orderErrorStatus(wrapHelper(wrapped)); got != 422 {
		t.Errorf("wrapped gateway error mapped to %d; want 422", got)
	}
}

func wrapHelper(err error) error {
	return &wrappedErr{inner: err}
}

type wrappedErr struct{ inner error }

func (w *wrappedErr) Error() string { return "create order: " + w.inner.Error() }
func (w *wrappedErr) Unwrap() error { return w.inner }

func TestCreateOrder_RejectsBadInput(t *testing.T) {
	h := &PaymentHandler{}

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "{not json"},
		{"missing assignment id", `{}`},
		{"empty assignment id", `{"assignment_id":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/payments/orders", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.CreateOrder(w, r)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestVerifyPayment_RejectsIncompleteInput(t *testing.T) {
	h := &PaymentHandler{}

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "{"},
		{"empty body", `{}`},
		{"missing signature", `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","payment_id":"p1","assignment_id":"a1"}`},
		{"missing payment id", `{"razorpay_order_id":"order_1","razorpay_signature":"sig","payment_id":"p1","assignment_id":"a1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.VerifyPayment(w, r)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestGetParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/dues/abc?:id=due-123", nil)
	if got := getParam(r, "id"); got != "due-123" {
		t.Errorf("getParam colon form = %q; want %q", got, "due-123")
	}

	r = httptest.NewRequest(http.MethodGet, "/api/dues?id=due-456", nil)
	if got := getParam(r, "id"); got != "due-456" {
		t.Errorf("getParam plain form = %q; want %q", got, "due-456")
	}
}
