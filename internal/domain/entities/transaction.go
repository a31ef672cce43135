package entities

import (
	"fmt"
	"time"
)

// TransactionState represents the lifecycle of a charge attempt.
//
// Domain notes:
//   - The transaction is created by the checkout flow in Initial state.
//   - Only the payment processor moves it forward; it is never deleted here.

type TransactionState string

const (
	TransactionStateInitial    TransactionState = "initial"
	TransactionStatePending    TransactionState = "pending"
	TransactionStateProcessing TransactionState = "processing"
	TransactionStateFailed     TransactionState = "failed"
	TransactionStateSettled    TransactionState = "settled"
)

// Transition names exposed by the state machine.
const (
	TransitionProcess = "process"
	TransitionFail    = "fail"
	TransitionSettle  = "settle"
)

// TransitionNotAllowedError reports an attempted transition that is not
// legal for the transaction's current state. Callers decide whether to
// surface or discard it; the entity never mutates state on this error.
type TransitionNotAllowedError struct {
	From       TransactionState
	Transition string
}

func (e *TransitionNotAllowedError) Error() string {
	return fmt.Sprintf("transition %q not allowed from state %q", e.Transition, e.From)
}

// Transaction is a single charge attempt persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: uuid (the gateway-visible external reference)
//
// The Data map carries free-form result payload; the gateway's raw decline
// response (or the parse error text) is retained under the "result" key.

type Transaction struct {
	UUID            string            `json:"uuid"`
	Amount          float64           `json:"amount"`
	Currency        string            `json:"currency"`
	State           TransactionState  `json:"state"`
	Data            map[string]string `json:"data,omitempty"`
	PaymentMethodID string            `json:"payment_method_id"`
	ProcessorRef    string            `json:"processor_ref"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Process moves the transaction into Processing, meaning the charge was
// accepted by the gateway and awaits asynchronous authorization.
func (t *Transaction) Process() *TransitionNotAllowedError {
	if t.State != TransactionStateInitial && t.State != TransactionStatePending {
		return &TransitionNotAllowedError{From: t.State, Transition: TransitionProcess}
	}
	t.State = TransactionStateProcessing
	return nil
}

// Fail marks a processing transaction as failed.
func (t *Transaction) Fail() *TransitionNotAllowedError {
	if t.State != TransactionStateProcessing {
		return &TransitionNotAllowedError{From: t.State, Transition: TransitionFail}
	}
	t.State = TransactionStateFailed
	return nil
}

// Settle finalizes a processing transaction after the authorization
// notification arrives.
func (t *Transaction) Settle() *TransitionNotAllowedError {
	if t.State != TransactionStateProcessing {
		return &TransitionNotAllowedError{From: t.State, Transition: TransitionSettle}
	}
	t.State = TransactionStateSettled
	return nil
}

// SetResult retains a charge diagnostic (raw decline body or error text)
// on the transaction's data payload.
func (t *Transaction) SetResult(result string) {
	if t.Data == nil {
		t.Data = map[string]string{}
	}
	t.Data["result"] = result
}
