package fees

import (
	"context"
	"errors"
	"testing"
)

func TestChargeValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Charge(ctx, Input{AmountCents: 500}); err == nil {
		t.Fatal("expected error without student_id")
	}
	if _, err := svc.Charge(ctx, Input{StudentID: "s1", AmountCents: 0}); err == nil {
		t.Fatal("expected error for non-positive amount")
	}
}

func TestSettleMarksFeePaidOnce(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	fee, err := svc.Charge(ctx, Input{StudentID: "s1", Description: "Term fee", AmountCents: 150000})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}

	payment, err := svc.Settle(ctx, fee.ID, 150000, "upi")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if payment.FeeID != fee.ID || payment.AmountCents != 150000 {
		t.Fatalf("unexpected payment: %+v", payment)
	}

	got, err := svc.Get(ctx, fee.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusPaid {
		t.Fatalf("expected paid status, got %s", got.Status)
	}

	if _, err := svc.Settle(ctx, fee.ID, 150000, "upi"); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected already paid, got %v", err)
	}
}

func TestSettleDefaultsToFullAmount(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	fee, err := svc.Charge(ctx, Input{StudentID: "s1", AmountCents: 80000})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	payment, err := svc.Settle(ctx, fee.ID, 0, "cash")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if payment.AmountCents != 80000 {
		t.Fatalf("expected defaulted amount 80000, got %d", payment.AmountCents)
	}
}

func TestSettleUnknownFee(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	if _, err := svc.Settle(context.Background(), "missing", 100, "cash"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListByStudent(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Charge(ctx, Input{StudentID: "s1", AmountCents: 100}); err != nil {
		t.Fatalf("charge: %v", err)
	}
	if _, err := svc.Charge(ctx, Input{StudentID: "s2", AmountCents: 200}); err != nil {
		t.Fatalf("charge: %v", err)
	}

	got, err := svc.ForStudent(ctx, "s2")
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(got) != 1 || got[0].AmountCents != 200 {
		t.Fatalf("unexpected fees: %+v", got)
	}
}
