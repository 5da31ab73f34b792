package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/razorpay"
)

type fakeDueStore struct {
	dues map[string]models.Due
}

func (f *fakeDueStore) GetDueByID(ctx context.Context, id string) (models.Due, error) {
	d, ok := f.dues[id]
	if !ok {
		return models.Due{}, models.ErrDueNotFound
	}
	return d, nil
}

type fakePaymentStore struct {
	payments     map[string]models.Payment
	dues         *fakeDueStore
	createErr    error
	settleErr    error
	settleCalled int
}

func (f *fakePaymentStore) CreatePayment(ctx context.Context, p models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentStore) GetPaymentByID(ctx context.Context, id string) (models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return models.Payment{}, models.ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePaymentStore) MarkSettled(ctx context.Context, paymentID, razorpayPaymentID, dueID string) error {
	f.settleCalled++
	if f.settleErr != nil {
		return f.settleErr
	}
	p := f.payments[paymentID]
	p.RazorpayPaymentID = razorpayPaymentID
	p.Status = models.PaymentStatusCompleted
	f.payments[paymentID] = p

	d := f.dues.dues[dueID]
	d.Paid = true
	f.dues.dues[dueID] = d
	return nil
}

type fakeGateway struct {
	secret    string
	calls     int
	createErr error
	lastReq   razorpay.CreateOrderRequest
}

func (f *fakeGateway) CreateOrder(ctx context.Context, req razorpay.CreateOrderRequest) (razorpay.Order, error) {
	f.calls++
	f.lastReq = req
	if f.createErr != nil {
		return razorpay.Order{}, f.createErr
	}
	return razorpay.Order{ID: "order_abc", Amount: req.Amount, Currency: req.Currency, Status: "created"}, nil
}

func (f *fakeGateway) KeyID() string  { return "rzp_test_key" }
func (f *fakeGateway) Secret() string { return f.secret }

func newTestService() (*PaymentService, *fakeDueStore, *fakePaymentStore, *fakeGateway) {
	dues := &fakeDueStore{dues: map[string]models.Due{
		"D1": {ID: "D1", StudentID: "S1", EventID: "E1", Amount: 500, Paid: false, EventTitle: "Cultural Fest", EventType: "cultural"},
		"D2": {ID: "D2", StudentID: "S1", Amount: 120, Paid: true},
	}}
	payments := &fakePaymentStore{payments: map[string]models.Payment{}, dues: dues}
	gw := &fakeGateway{secret: "test_secret"}
	svc := &PaymentService{
		Dues:     dues,
		Payments: payments,
		Gateway:  gw,
		Currency: "INR",
	}
	return svc, dues, payments, gw
}

func TestInitiateOrder(t *testing.T) {
	svc, _, payments, gw := newTestService()

	checkout, err := svc.InitiateOrder(context.Background(), "D1", "S1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checkout.OrderID != "order_abc" {
		t.Errorf("order id mismatch: %q", checkout.OrderID)
	}
	if checkout.Amount != 500 || checkout.Currency != "INR" {
		t.Errorf("checkout amount mismatch: %+v", checkout)
	}
	if checkout.KeyID != "rzp_test_key" {
		t.Errorf("publishable key mismatch: %q", checkout.KeyID)
	}
	if gw.lastReq.Amount != 50000 {
		t.Errorf("gateway amount not in paise: %d", gw.lastReq.Amount)
	}
	if len(gw.lastReq.Receipt) > razorpay.MaxReceiptLen {
		t.Errorf("receipt exceeds limit: %q", gw.lastReq.Receipt)
	}
	if gw.lastReq.Notes["assignment_id"] != "D1" || gw.lastReq.Notes["student_id"] != "S1" {
		t.Errorf("order notes missing ids: %+v", gw.lastReq.Notes)
	}
	if gw.lastReq.Notes["event_type"] != "cultural" || gw.lastReq.Notes["event_title"] != "Cultural Fest" {
		t.Errorf("order notes missing event info: %+v", gw.lastReq.Notes)
	}

	p, err := payments.GetPaymentByID(context.Background(), checkout.PaymentID)
	if err != nil {
		t.Fatalf("payment row missing: %v", err)
	}
	if p.Status != models.PaymentStatusPending {
		t.Errorf("status = %q, want pending", p.Status)
	}
	if p.Amount != 500 {
		t.Errorf("payment amount %v does not match due amount", p.Amount)
	}
	if p.AssignmentID != "D1" || p.StudentID != "S1" || p.RazorpayOrderID != "order_abc" {
		t.Errorf("payment row mismatch: %+v", p)
	}
}

func TestInitiateOrder_DueNotFound(t *testing.T) {
	svc, _, payments, gw := newTestService()

	_, err := svc.InitiateOrder(context.Background(), "missing", "S1")
	if !errors.Is(err, models.ErrDueNotFound) {
		t.Fatalf("expected ErrDueNotFound, got %v", err)
	}
	if gw.calls != 0 {
		t.Errorf("gateway called for missing due")
	}
	if len(payments.payments) != 0 {
		t.Errorf("payment row created for missing due")
	}
}

func TestInitiateOrder_AlreadyPaid(t *testing.T) {
	svc, _, payments, gw := newTestService()

	_, err := svc.InitiateOrder(context.Background(), "D2", "S1")
	if !errors.Is(err, models.ErrDueAlreadyPaid) {
		t.Fatalf("expected ErrDueAlreadyPaid, got %v", err)
	}
	if gw.calls != 0 {
		t.Errorf("gateway called for paid due")
	}
	if len(payments.payments) != 0 {
		t.Errorf("payment row created for paid due")
	}
}

func TestInitiateOrder_WrongStudent(t *testing.T) {
	svc, _, _, gw := newTestService()

	_, err := svc.InitiateOrder(context.Background(), "D1", "S2")
	if !errors.Is(err, models.ErrDueNotFound) {
		t.Fatalf("expected ErrDueNotFound for foreign student, got %v", err)
	}
	if gw.calls != 0 {
		t.Errorf("gateway called for foreign student")
	}
}

func TestInitiateOrder_GatewayError(t *testing.T) {
	svc, _, payments, gw := newTestService()
	gw.createErr = &razorpay.Error{StatusCode: 502, Status: "502 Bad Gateway"}

	_, err := svc.InitiateOrder(context.Background(), "D1", "S1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *razorpay.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected razorpay.Error, got %T", err)
	}
	if len(payments.payments) != 0 {
		t.Errorf("payment row created despite gateway failure")
	}
}

func TestInitiateOrder_InsertFailureIsInconsistency(t *testing.T) {
	svc, _, payments, _ := newTestService()
	payments.createErr = errors.New("db down")

	_, err := svc.InitiateOrder(context.Background(), "D1", "S1")
	if !errors.Is(err, models.ErrPersistenceInconsistency) {
		t.Fatalf("expected ErrPersistenceInconsistency, got %v", err)
	}
}

type fakeLocker struct {
	held     map[string]bool
	acquired []string
	released []string
}

func (l *fakeLocker) Acquire(ctx context.Context, dueID string) (bool, error) {
	if l.held[dueID] {
		return false, nil
	}
	l.acquired = append(l.acquired, dueID)
	return true, nil
}

func (l *fakeLocker) Release(ctx context.Context, dueID string) {
	l.released = append(l.released, dueID)
}

func TestInitiateOrder_LockedDueRejected(t *testing.T) {
	svc, _, _, gw := newTestService()
	svc.Locker = &fakeLocker{held: map[string]bool{"D1": true}}

	_, err := svc.InitiateOrder(context.Background(), "D1", "S1")
	if !errors.Is(err, models.ErrDueLocked) {
		t.Fatalf("expected ErrDueLocked, got %v", err)
	}
	if gw.calls != 0 {
		t.Errorf("gateway called while due locked")
	}
}

func TestInitiateOrder_LockReleased(t *testing.T) {
	svc, _, _, _ := newTestService()
	locker := &fakeLocker{held: map[string]bool{}}
	svc.Locker = locker

	if _, err := svc.InitiateOrder(context.Background(), "D1", "S1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locker.acquired) != 1 || len(locker.released) != 1 {
		t.Errorf("lock not acquired+released exactly once: %+v", locker)
	}
}

func initiated(t *testing.T, svc *PaymentService) models.CheckoutDetails {
	t.Helper()
	checkout, err := svc.InitiateOrder(context.Background(), "D1", "S1")
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}
	return checkout
}

func TestVerifyPayment(t *testing.T) {
	svc, dues, payments, gw := newTestService()
	checkout := initiated(t, svc)

	req := VerifyPaymentRequest{
		RazorpayOrderID:   checkout.OrderID,
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: razorpay.Signature(checkout.OrderID, "pay_xyz", gw.secret),
		PaymentID:         checkout.PaymentID,
		AssignmentID:      "D1",
	}
	if err := svc.VerifyPayment(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !dues.dues["D1"].Paid {
		t.Errorf("due not marked paid")
	}
	p := payments.payments[checkout.PaymentID]
	if p.Status != models.PaymentStatusCompleted {
		t.Errorf("payment status = %q, want completed", p.Status)
	}
	if p.RazorpayPaymentID != "pay_xyz" {
		t.Errorf("gateway payment id not recorded: %q", p.RazorpayPaymentID)
	}
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	svc, dues, payments, _ := newTestService()
	checkout := initiated(t, svc)

	req := VerifyPaymentRequest{
		RazorpayOrderID:   checkout.OrderID,
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "deadbeef",
		PaymentID:         checkout.PaymentID,
		AssignmentID:      "D1",
	}
	if err := svc.VerifyPayment(context.Background(), req); !errors.Is(err, models.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}

	if dues.dues["D1"].Paid {
		t.Errorf("due marked paid on forged signature")
	}
	if payments.payments[checkout.PaymentID].Status != models.PaymentStatusPending {
		t.Errorf("payment mutated on forged signature")
	}
}

func TestVerifyPayment_MismatchedOrderRejected(t *testing.T) {
	svc, _, _, gw := newTestService()
	checkout := initiated(t, svc)

	// Valid signature, but for a different order than the payment record's.
	req := VerifyPaymentRequest{
		RazorpayOrderID:   "order_other",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: razorpay.Signature("order_other", "pay_xyz", gw.secret),
		PaymentID:         checkout.PaymentID,
		AssignmentID:      "D1",
	}
	if err := svc.VerifyPayment(context.Background(), req); !errors.Is(err, models.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyPayment_UnknownPayment(t *testing.T) {
	svc, _, _, gw := newTestService()

	req := VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: razorpay.Signature("order_abc", "pay_xyz", gw.secret),
		PaymentID:         "missing",
		AssignmentID:      "D1",
	}
	if err := svc.VerifyPayment(context.Background(), req); !errors.Is(err, models.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestVerifyPayment_ReplayIsNoOp(t *testing.T) {
	svc, dues, payments, gw := newTestService()
	checkout := initiated(t, svc)

	req := VerifyPaymentRequest{
		RazorpayOrderID:   checkout.OrderID,
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: razorpay.Signature(checkout.OrderID, "pay_xyz", gw.secret),
		PaymentID:         checkout.PaymentID,
		AssignmentID:      "D1",
	}
	if err := svc.VerifyPayment(context.Background(), req); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	if err := svc.VerifyPayment(context.Background(), req); err != nil {
		t.Fatalf("replayed verify should acknowledge, got %v", err)
	}

	if payments.settleCalled != 1 {
		t.Errorf("settlement applied %d times, want 1", payments.settleCalled)
	}
	if !dues.dues["D1"].Paid {
		t.Errorf("due unexpectedly unpaid after replay")
	}
}

func TestVerifyPayment_SettlementFailureSurfaced(t *testing.T) {
	svc, _, payments, gw := newTestService()
	checkout := initiated(t, svc)
	payments.settleErr = models.ErrPersistenceInconsistency

	req := VerifyPaymentRequest{
		RazorpayOrderID:   checkout.OrderID,
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: razorpay.Signature(checkout.OrderID, "pay_xyz", gw.secret),
		PaymentID:         checkout.PaymentID,
		AssignmentID:      "D1",
	}
	if err := svc.VerifyPayment(context.Background(), req); !errors.Is(err, models.ErrPersistenceInconsistency) {
		t.Fatalf("expected ErrPersistenceInconsistency, got %v", err)
	}
}
