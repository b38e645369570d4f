package aggregator

import "testing"

func TestCCCAggregate_StoreAndComplete(t *testing.T) {
	a := NewCCCAggregate(4)
	if a.Complete() {
		t.Fatal("expected incomplete before any Store")
	}

	vals := []float64{1, 2, 3, 4}
	for tau, v := range vals {
		if err := a.Store(int32(tau), v); err != nil {
			t.Fatal(err)
		}
	}

	if !a.Complete() {
		t.Fatal("expected complete after storing every tau")
	}
	if got := a.Result(); got[0] != 1 || got[3] != 4 {
		t.Fatalf("Result = %v, want %v", got, vals)
	}
}

func TestCCCAggregate_StoreOutOfRange(t *testing.T) {
	a := NewCCCAggregate(2)
	if err := a.Store(-1, 0); err == nil {
		t.Fatal("expected error for negative tau")
	}
	if err := a.Store(2, 0); err == nil {
		t.Fatal("expected error for tau == N")
	}
}

func TestCCCAggregate_DuplicateStoreRejected(t *testing.T) {
	a := NewCCCAggregate(2)
	if err := a.Store(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := a.Store(0, 2); err == nil {
		t.Fatal("expected error for duplicate tau")
	}
}
