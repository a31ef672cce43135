package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"payu_billing/internal/domain/entities"
	mock_interfaces "payu_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newChargeableTransaction() entities.Transaction {
	return entities.Transaction{
		UUID:            "abc-123",
		Amount:          12.5,
		Currency:        "EUR",
		State:           entities.TransactionStateInitial,
		PaymentMethodID: "pm-1",
		ProcessorRef:    ProcessorReference,
	}
}

func newArchivedPaymentMethod() entities.PaymentMethod {
	return entities.PaymentMethod{
		ID:       "pm-1",
		Token:    "tok_123",
		Verified: true,
		ArchivedCustomer: map[string]string{
			entities.BillingFieldAddress: "1 Main St",
			entities.BillingFieldCity:    "Springfield",
			entities.BillingFieldEmail:   "homer@example.com",
			entities.BillingFieldFName:   "Homer",
			entities.BillingFieldLName:   "Simpson",
			entities.BillingFieldPhone:   "+40712345678",
		},
	}
}

func TestArchiveBillingDetails(t *testing.T) {
	billing := map[string]string{
		entities.BillingFieldFName:   "Homer",
		entities.BillingFieldAddress: "1 Main St Apt 2",
	}

	t.Run("first capture persists the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pmRepo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentProcessorUseCase(nil, pmRepo, nil)

		pmRepo.EXPECT().GetByID(gomock.Any(), "pm-1").Return(entities.PaymentMethod{ID: "pm-1"}, nil)
		pmRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
				if m.ArchivedCustomer[entities.BillingFieldFName] != "Homer" {
					t.Fatalf("unexpected archived record: %+v", m.ArchivedCustomer)
				}
				return m, nil
			})

		tx := newChargeableTransaction()
		if err := uc.ArchiveBillingDetails(context.Background(), &tx, billing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already archived is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pmRepo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentProcessorUseCase(nil, pmRepo, nil)

		existing := map[string]string{entities.BillingFieldFName: "Marge"}
		pmRepo.EXPECT().GetByID(gomock.Any(), "pm-1").Return(entities.PaymentMethod{ID: "pm-1", ArchivedCustomer: existing}, nil)
		// No Save expected: the first record wins.

		tx := newChargeableTransaction()
		if err := uc.ArchiveBillingDetails(context.Background(), &tx, billing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pmRepo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentProcessorUseCase(nil, pmRepo, nil)

		pmRepo.EXPECT().GetByID(gomock.Any(), "pm-1").Return(entities.PaymentMethod{}, nil)

		tx := newChargeableTransaction()
		if err := uc.ArchiveBillingDetails(context.Background(), &tx, billing); !errors.Is(err, ErrPaymentMethodNotFound) {
			t.Fatalf("expected ErrPaymentMethodNotFound, got %v", err)
		}
	})
}

func TestExecuteTransaction_Guards(t *testing.T) {
	t.Run("wrong processor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentProcessorUseCase(nil, nil, gateway)

		tx := newChargeableTransaction()
		tx.ProcessorRef = "someone_else"
		// No gateway call and no persistence may happen.
		if uc.ExecuteTransaction(context.Background(), &tx) {
			t.Fatal("expected false for foreign transaction")
		}
		if tx.State != entities.TransactionStateInitial {
			t.Fatalf("state must not change, got %s", tx.State)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentProcessorUseCase(nil, nil, gateway)

		for _, state := range []entities.TransactionState{
			entities.TransactionStateProcessing,
			entities.TransactionStateFailed,
			entities.TransactionStateSettled,
		} {
			tx := newChargeableTransaction()
			tx.State = state
			if uc.ExecuteTransaction(context.Background(), &tx) {
				t.Fatalf("expected false for state %s", state)
			}
			if tx.State != state {
				t.Fatalf("state must not change, got %s", tx.State)
			}
		}
	})
}

func TestExecuteTransaction_OutcomeMapping(t *testing.T) {
	setup := func(t *testing.T) (*PaymentProcessorUseCase, *mock_interfaces.MockITransactionRepository, *mock_interfaces.MockIPaymentMethodRepository, *mock_interfaces.MockIPaymentGateway) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		pmRepo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		return NewPaymentProcessorUseCase(txRepo, pmRepo, gateway), txRepo, pmRepo, gateway
	}

	t.Run("accepted charge drives pending and returns true", func(t *testing.T) {
		uc, txRepo, pmRepo, gateway := setup(t)

		pmRepo.EXPECT().GetByID(gomock.Any(), "pm-1").Return(newArchivedPaymentMethod(), nil)
		gateway.EXPECT().TokenCharge(gomock.Any(), gomock.Any(), "tok_123").Return(`{"code": 0}`, nil)

		var saved entities.Transaction
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				saved = tr
				return tr, nil
			})

		tx := newChargeableTransaction()
		if !uc.ExecuteTransaction(context.Background(), &tx) {
			t.Fatal("expected true")
		}
		if tx.State != entities.TransactionStateProcessing {
			t.Fatalf("expected processing, got %s", tx.State)
		}
		if saved.State != entities.TransactionStateProcessing {
			t.Fatalf("persisted state mismatch: %s", saved.State)
		}
	})

	t.Run("declined charge drives failed and retains the response", func(t *testing.T) {
		uc, txRepo, pmRepo, gateway := setup(t)

		raw := `{"code": 1, "message": "insufficient funds"}`
		pmRepo.EXPECT().GetByID(gomock.Any(), "pm-1").Return(newArchivedPaymentMethod(), nil)
		gateway.EXPECT().TokenCharge(gomock.Any(), gomock.Any(), "tok_123").Return(raw, nil)

		var saved entities.Transaction
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				saved = tr
				return tr, nil
			})

		tx := newChargeableTransaction()
		if uc.ExecuteTransaction(context.Background(), &tx) {
			t.Fatal("expected false")
		}
		if tx.State != entities.TransactionStateFailed {
			t.Fatalf("expected failed, got %s", tx.State)
		}
		if tx.Data["result"] != raw {
			t.Fatalf("expected raw response retained, got %q", tx.Data["result"])
		}
		if saved.Data["result"] != raw {
			t.Fatalf("persisted diagnostic mismatch: %q", saved.Data["result"])
		}
	})

	t.Run("unparseable response drives failed with parse error text", func(t *testing.T) {
		uc, txRepo, pmRepo, gateway := setup(t)

		pmRepo.EXPECT().GetByID(gomock.Any(), "pm-1").Return(newArchivedPaymentMethod(), nil)
		gateway.EXPECT().TokenCharge(gomock.Any(), gomock.Any(), "tok_123").Return("not json", nil)
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				return tr, nil
			})

		tx := newChargeableTransaction()
		if uc.ExecuteTransaction(context.Background(), &tx) {
			t.Fatal("expected false")
		}
		if tx.State != entities.TransactionStateFailed {
			t.Fatalf("expected failed, got %s", tx.State)
		}
		if !strings.Contains(tx.Data["result"], "invalid character") {
			t.Fatalf("expected parse error text, got %q", tx.Data["result"])
		}
	})

	t.Run("missing code field drives failed", func(t *testing.T) {
		uc, txRepo, pmRepo, gateway := setup(t)

		pmRepo.EXPECT().GetByID(gomock.Any(), "pm-1").Return(newArchivedPaymentMethod(), nil)
		gateway.EXPECT().TokenCharge(gomock.Any(), gomock.Any(), "tok_123").Return(`{"status":"?"}`, nil)
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				return tr, nil
			})

		tx := newChargeableTransaction()
		if uc.ExecuteTransaction(context.Background(), &tx) {
			t.Fatal("expected false")
		}
		if !strings.Contains(tx.Data["result"], "no code field") {
			t.Fatalf("expected missing-code diagnostic, got %q", tx.Data["result"])
		}
	})

	t.Run("transport error drives failed with error text", func(t *testing.T) {
		uc, txRepo, pmRepo, gateway := setup(t)

		pmRepo.EXPECT().GetByID(gomock.Any(), "pm-1").Return(newArchivedPaymentMethod(), nil)
		gateway.EXPECT().TokenCharge(gomock.Any(), gomock.Any(), "tok_123").Return("", errors.New("connection reset"))
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				return tr, nil
			})

		tx := newChargeableTransaction()
		if uc.ExecuteTransaction(context.Background(), &tx) {
			t.Fatal("expected false")
		}
		if tx.Data["result"] != "connection reset" {
			t.Fatalf("expected transport error retained, got %q", tx.Data["result"])
		}
	})
}

func TestBuildChargePayload(t *testing.T) {
	tx := newChargeableTransaction()
	pm := newArchivedPaymentMethod()

	payload := buildChargePayload(&tx, pm.ArchivedCustomer)

	if payload["AMOUNT"] != "12.50" {
		t.Fatalf("unexpected amount: %q", payload["AMOUNT"])
	}
	if payload["CURRENCY"] != "EUR" || payload["EXTERNAL_REF"] != "abc-123" {
		t.Fatalf("unexpected payment fields: %+v", payload)
	}

	// Delivery mirrors the six billing values under delivery names.
	pairs := map[string]string{
		"DELIVERY_ADDRESS": entities.BillingFieldAddress,
		"DELIVERY_CITY":    entities.BillingFieldCity,
		"DELIVERY_EMAIL":   entities.BillingFieldEmail,
		"DELIVERY_FNAME":   entities.BillingFieldFName,
		"DELIVERY_LNAME":   entities.BillingFieldLName,
		"DELIVERY_PHONE":   entities.BillingFieldPhone,
	}
	for deliveryField, billingField := range pairs {
		if payload[deliveryField] != pm.ArchivedCustomer[billingField] {
			t.Fatalf("%s mismatch: %q != %q", deliveryField, payload[deliveryField], pm.ArchivedCustomer[billingField])
		}
	}

	// Billing fields ride along unchanged.
	if payload[entities.BillingFieldCity] != "Springfield" {
		t.Fatalf("billing field lost: %+v", payload)
	}
}

func TestUpdateTransactionStatus(t *testing.T) {
	newUC := func(t *testing.T) (*PaymentProcessorUseCase, *mock_interfaces.MockITransactionRepository) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		return NewPaymentProcessorUseCase(txRepo, nil, nil), txRepo
	}

	t.Run("settle on initial is suppressed but persisted", func(t *testing.T) {
		uc, txRepo := newUC(t)
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				return tr, nil
			})

		tx := newChargeableTransaction()
		uc.UpdateTransactionStatus(context.Background(), &tx, StatusSettle)
		if tx.State != entities.TransactionStateInitial {
			t.Fatalf("state must stay initial, got %s", tx.State)
		}
	})

	t.Run("failed from initial passes through processing", func(t *testing.T) {
		uc, txRepo := newUC(t)
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				return tr, nil
			})

		tx := newChargeableTransaction()
		uc.UpdateTransactionStatus(context.Background(), &tx, StatusFailed)
		if tx.State != entities.TransactionStateFailed {
			t.Fatalf("expected failed, got %s", tx.State)
		}
	})

	t.Run("failed from processing skips the process step", func(t *testing.T) {
		uc, txRepo := newUC(t)
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				return tr, nil
			})

		tx := newChargeableTransaction()
		tx.State = entities.TransactionStateProcessing
		uc.UpdateTransactionStatus(context.Background(), &tx, StatusFailed)
		if tx.State != entities.TransactionStateFailed {
			t.Fatalf("expected failed, got %s", tx.State)
		}
	})

	t.Run("unknown keyword only persists", func(t *testing.T) {
		uc, txRepo := newUC(t)
		txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				return tr, nil
			})

		tx := newChargeableTransaction()
		uc.UpdateTransactionStatus(context.Background(), &tx, "bogus")
		if tx.State != entities.TransactionStateInitial {
			t.Fatalf("state must stay initial, got %s", tx.State)
		}
	})
}

func TestClassifyChargeResult(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		err     error
		outcome chargeOutcome
	}{
		{"numeric zero", `{"code": 0}`, nil, outcomeSuccess},
		{"null code", `{"code": null}`, nil, outcomeSuccess},
		{"empty string code", `{"code": ""}`, nil, outcomeSuccess},
		{"numeric nonzero", `{"code": 7}`, nil, outcomeDeclined},
		{"string zero is declined", `{"code": "0"}`, nil, outcomeDeclined},
		{"transport error", "", errors.New("boom"), outcomeError},
		{"invalid json", "not json", nil, outcomeError},
		{"missing code", `{}`, nil, outcomeError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, _ := classifyChargeResult(tc.raw, tc.err)
			if outcome != tc.outcome {
				t.Fatalf("expected outcome %d, got %d", tc.outcome, outcome)
			}
		})
	}
}
