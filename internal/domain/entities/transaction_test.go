package entities

import "testing"

func TestTransactionProcess(t *testing.T) {
	t.Run("from initial", func(t *testing.T) {
		tx := Transaction{UUID: "tx-1", State: TransactionStateInitial}
		if terr := tx.Process(); terr != nil {
			t.Fatalf("unexpected transition error: %v", terr)
		}
		if tx.State != TransactionStateProcessing {
			t.Fatalf("expected processing, got %s", tx.State)
		}
	})

	t.Run("from pending", func(t *testing.T) {
		tx := Transaction{UUID: "tx-1", State: TransactionStatePending}
		if terr := tx.Process(); terr != nil {
			t.Fatalf("unexpected transition error: %v", terr)
		}
		if tx.State != TransactionStateProcessing {
			t.Fatalf("expected processing, got %s", tx.State)
		}
	})

	t.Run("from settled is refused", func(t *testing.T) {
		tx := Transaction{UUID: "tx-1", State: TransactionStateSettled}
		terr := tx.Process()
		if terr == nil {
			t.Fatal("expected transition error")
		}
		if terr.From != TransactionStateSettled || terr.Transition != TransitionProcess {
			t.Fatalf("unexpected error fields: %+v", terr)
		}
		if tx.State != TransactionStateSettled {
			t.Fatalf("state must not change, got %s", tx.State)
		}
	})
}

func TestTransactionFail(t *testing.T) {
	tx := Transaction{UUID: "tx-1", State: TransactionStateProcessing}
	if terr := tx.Fail(); terr != nil {
		t.Fatalf("unexpected transition error: %v", terr)
	}
	if tx.State != TransactionStateFailed {
		t.Fatalf("expected failed, got %s", tx.State)
	}

	tx2 := Transaction{UUID: "tx-2", State: TransactionStateInitial}
	if terr := tx2.Fail(); terr == nil {
		t.Fatal("expected transition error from initial")
	}
}

func TestTransactionSettle(t *testing.T) {
	tx := Transaction{UUID: "tx-1", State: TransactionStateProcessing}
	if terr := tx.Settle(); terr != nil {
		t.Fatalf("unexpected transition error: %v", terr)
	}
	if tx.State != TransactionStateSettled {
		t.Fatalf("expected settled, got %s", tx.State)
	}

	tx2 := Transaction{UUID: "tx-2", State: TransactionStateInitial}
	terr := tx2.Settle()
	if terr == nil {
		t.Fatal("expected transition error from initial")
	}
	if tx2.State != TransactionStateInitial {
		t.Fatalf("state must not change, got %s", tx2.State)
	}
}

func TestTransactionSetResult(t *testing.T) {
	tx := Transaction{UUID: "tx-1"}
	tx.SetResult("declined body")
	if tx.Data["result"] != "declined body" {
		t.Fatalf("unexpected data: %+v", tx.Data)
	}

	tx.SetResult("second")
	if tx.Data["result"] != "second" {
		t.Fatalf("result must be overwritten, got %+v", tx.Data)
	}
}
