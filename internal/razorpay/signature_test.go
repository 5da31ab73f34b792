package razorpay

import "testing"

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	sig := Signature("order_abc", "pay_xyz", secret)

	if !VerifySignature("order_abc", "pay_xyz", sig, secret) {
		t.Fatal("expected signature to be valid")
	}
	if VerifySignature("order_abc", "pay_xyz", "deadbeef", secret) {
		t.Fatal("unexpected valid signature")
	}
	if VerifySignature("order_abc", "pay_xyz", sig, "other_secret") {
		t.Fatal("signature valid under wrong secret")
	}
	if VerifySignature("order_abc", "pay_other", sig, secret) {
		t.Fatal("signature valid for different payment id")
	}
	if VerifySignature("order_abc", "pay_xyz", "zz"+sig[2:], secret) {
		t.Fatal("non-hex signature accepted")
	}
}

func TestVerifySignature_TamperedBit(t *testing.T) {
	secret := "test_secret"
	sig := Signature("order_abc", "pay_xyz", secret)

	// Flip one hex nibble at every position; all must fail.
	for i := 0; i < len(sig); i++ {
		b := []byte(sig)
		if b[i] == '0' {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
		if VerifySignature("order_abc", "pay_xyz", string(b), secret) {
			t.Fatalf("tampered signature accepted at position %d", i)
		}
	}
}
