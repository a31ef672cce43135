package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"payu_billing/internal/domain/entities"
	"payu_billing/internal/usecase/interfaces"
)

// ProcessorReference identifies this processor on transactions it owns.
const ProcessorReference = "payu_triggered"

// Status keywords accepted by UpdateTransactionStatus.
const (
	StatusPending = "pending"
	StatusFailed  = "failed"
	StatusSettle  = "settle"
)

var (
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrInvalidTransactionID  = errors.New("invalid transaction uuid")
	ErrMissingToken          = errors.New("payment method has no gateway token")
	ErrMissingBillingRecord  = errors.New("payment method has no archived billing record")
)

// chargeOutcome classifies one charge attempt's parsed response. It is
// never persisted; it only selects the status-driver path.
type chargeOutcome int

const (
	outcomeSuccess chargeOutcome = iota
	outcomeDeclined
	outcomeError
)

// IPaymentProcessorUseCase is the PayU triggered processor surface.
//
// Behavior:
//   - ArchiveBillingDetails caches validated billing data on the payment
//     method at most once.
//   - ExecuteTransaction runs one synchronous token charge and drives the
//     transaction state from the gateway outcome.
//   - UpdateTransactionStatus maps a coarse status keyword onto the
//     transaction's transitions.
//   - RefundTransaction/VoidTransaction are intentional no-ops: this
//     processor does not implement them.

type IPaymentProcessorUseCase interface {
	ArchiveBillingDetails(ctx context.Context, tx *entities.Transaction, billingDetails map[string]string) error
	ExecuteTransaction(ctx context.Context, tx *entities.Transaction) bool
	UpdateTransactionStatus(ctx context.Context, tx *entities.Transaction, status string)
	RefundTransaction(ctx context.Context, tx *entities.Transaction) error
	VoidTransaction(ctx context.Context, tx *entities.Transaction) error
}

type PaymentProcessorUseCase struct {
	txRepo  interfaces.ITransactionRepository
	pmRepo  interfaces.IPaymentMethodRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentProcessorUseCase = (*PaymentProcessorUseCase)(nil)

func NewPaymentProcessorUseCase(txRepo interfaces.ITransactionRepository, pmRepo interfaces.IPaymentMethodRepository, gateway interfaces.IPaymentGateway) *PaymentProcessorUseCase {
	return &PaymentProcessorUseCase{txRepo: txRepo, pmRepo: pmRepo, gateway: gateway}
}

// ArchiveBillingDetails stores the billing record from a validated form on
// the transaction's payment method, unless one is already cached. The
// record must already carry the combined BILL_ADDRESS field (both address
// lines joined with a single space); the form DTO computes it because the
// gateway needs one field where the form captures two lines.
//
// Later charges reuse the cached record and never re-derive it, even when
// subsequent form submissions differ.
func (u *PaymentProcessorUseCase) ArchiveBillingDetails(ctx context.Context, tx *entities.Transaction, billingDetails map[string]string) error {
	pm, err := u.pmRepo.GetByID(ctx, tx.PaymentMethodID)
	if err != nil {
		log.Printf("[processor][usecase] archive: payment method load failed uuid=%s payment_method_id=%s err=%v", tx.UUID, tx.PaymentMethodID, err)
		return err
	}
	if pm.ID == "" {
		return ErrPaymentMethodNotFound
	}
	if pm.Archived() {
		log.Printf("[processor][usecase] archive: already archived payment_method_id=%s", pm.ID)
		return nil
	}

	pm.ArchivedCustomer = billingDetails
	if _, err := u.pmRepo.Save(ctx, pm); err != nil {
		log.Printf("[processor][usecase] archive: payment method save failed payment_method_id=%s err=%v", pm.ID, err)
		return err
	}
	log.Printf("[processor][usecase] archive: billing record cached payment_method_id=%s fields=%d", pm.ID, len(billingDetails))
	return nil
}

// ExecuteTransaction runs the charge for a transaction owned by this
// processor in Initial or Pending state. Any other owner or state returns
// false with no side effects; this is the guard against double-charging.
func (u *PaymentProcessorUseCase) ExecuteTransaction(ctx context.Context, tx *entities.Transaction) bool {
	if tx.ProcessorRef != ProcessorReference {
		log.Printf("[processor][usecase] execute: refused, wrong processor uuid=%s processor_ref=%s", tx.UUID, tx.ProcessorRef)
		return false
	}
	if tx.State != entities.TransactionStateInitial && tx.State != entities.TransactionStatePending {
		log.Printf("[processor][usecase] execute: refused, wrong state uuid=%s state=%s", tx.UUID, tx.State)
		return false
	}

	return u.chargeTransaction(ctx, tx)
}

func (u *PaymentProcessorUseCase) chargeTransaction(ctx context.Context, tx *entities.Transaction) bool {
	pm, err := u.pmRepo.GetByID(ctx, tx.PaymentMethodID)
	if err != nil || pm.ID == "" {
		log.Printf("[processor][usecase] charge: payment method load failed uuid=%s payment_method_id=%s err=%v", tx.UUID, tx.PaymentMethodID, err)
		tx.SetResult(ErrPaymentMethodNotFound.Error())
		u.UpdateTransactionStatus(ctx, tx, StatusFailed)
		return false
	}
	// Token and billing record availability are collaborator invariants
	// (token notification and archiver run before any charge); a violation
	// fails the charge loudly rather than papering over it.
	if pm.Token == "" {
		log.Printf("[processor][usecase] charge: missing token uuid=%s payment_method_id=%s", tx.UUID, pm.ID)
		tx.SetResult(ErrMissingToken.Error())
		u.UpdateTransactionStatus(ctx, tx, StatusFailed)
		return false
	}
	if !pm.Archived() {
		log.Printf("[processor][usecase] charge: missing billing record uuid=%s payment_method_id=%s", tx.UUID, pm.ID)
		tx.SetResult(ErrMissingBillingRecord.Error())
		u.UpdateTransactionStatus(ctx, tx, StatusFailed)
		return false
	}

	payload := buildChargePayload(tx, pm.ArchivedCustomer)

	log.Printf("[processor][usecase] charge: calling gateway uuid=%s amount=%s currency=%s", tx.UUID, payload["AMOUNT"], payload["CURRENCY"])
	raw, err := u.gateway.TokenCharge(ctx, payload, pm.Token)

	outcome, result := classifyChargeResult(raw, err)
	switch outcome {
	case outcomeSuccess:
		log.Printf("[processor][usecase] charge: accepted uuid=%s", tx.UUID)
		u.UpdateTransactionStatus(ctx, tx, StatusPending)
		return true
	case outcomeDeclined:
		log.Printf("[processor][usecase] charge: declined uuid=%s", tx.UUID)
	case outcomeError:
		log.Printf("[processor][usecase] charge: errored uuid=%s result=%s", tx.UUID, result)
	}

	// Diagnostic goes on the transaction before the failed drive so the
	// unconditional persist in the status driver writes it through.
	tx.SetResult(result)
	u.UpdateTransactionStatus(ctx, tx, StatusFailed)
	return false
}

// buildChargePayload merges the archived billing record, the derived
// delivery sub-payload and the transaction sub-payload into one flat
// request. Field names are disjoint by the gateway's contract.
func buildChargePayload(tx *entities.Transaction, billing map[string]string) map[string]string {
	payload := map[string]string{
		"AMOUNT":       strconv.FormatFloat(tx.Amount, 'f', 2, 64),
		"CURRENCY":     tx.Currency,
		"EXTERNAL_REF": tx.UUID,
	}
	for k, v := range billing {
		payload[k] = v
	}
	// Delivery mirrors six billing fields under gateway delivery names.
	payload["DELIVERY_ADDRESS"] = billing[entities.BillingFieldAddress]
	payload["DELIVERY_CITY"] = billing[entities.BillingFieldCity]
	payload["DELIVERY_EMAIL"] = billing[entities.BillingFieldEmail]
	payload["DELIVERY_FNAME"] = billing[entities.BillingFieldFName]
	payload["DELIVERY_LNAME"] = billing[entities.BillingFieldLName]
	payload["DELIVERY_PHONE"] = billing[entities.BillingFieldPhone]
	return payload
}

// classifyChargeResult inspects the gateway response's "code" field:
// falsy (null, false, 0, "") means accepted, anything else means
// declined. Transport errors, unparseable bodies and a missing code field
// all classify as outcomeError with the error text as the result.
func classifyChargeResult(raw string, err error) (chargeOutcome, string) {
	if err != nil {
		return outcomeError, err.Error()
	}

	var parsed map[string]any
	if jerr := json.Unmarshal([]byte(raw), &parsed); jerr != nil {
		return outcomeError, jerr.Error()
	}
	code, ok := parsed["code"]
	if !ok {
		return outcomeError, fmt.Sprintf("gateway response has no code field: %s", raw)
	}
	if isFalsyCode(code) {
		return outcomeSuccess, raw
	}
	return outcomeDeclined, raw
}

func isFalsyCode(code any) bool {
	switch v := code.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

// UpdateTransactionStatus maps a coarse status keyword onto transitions.
// "failed" tries "process" first so a transaction can fail either straight
// from Initial or after moving to Processing. An illegal transition is
// logged and discarded; the transaction is persisted regardless so
// retained diagnostics are never lost.
func (u *PaymentProcessorUseCase) UpdateTransactionStatus(ctx context.Context, tx *entities.Transaction, status string) {
	switch status {
	case StatusPending:
		if terr := tx.Process(); terr != nil {
			log.Printf("[processor][usecase] status: suppressed uuid=%s err=%v", tx.UUID, terr)
		}
	case StatusFailed:
		if terr := tx.Process(); terr != nil {
			log.Printf("[processor][usecase] status: suppressed uuid=%s err=%v", tx.UUID, terr)
		}
		if terr := tx.Fail(); terr != nil {
			log.Printf("[processor][usecase] status: suppressed uuid=%s err=%v", tx.UUID, terr)
		}
	case StatusSettle:
		if terr := tx.Settle(); terr != nil {
			log.Printf("[processor][usecase] status: suppressed uuid=%s err=%v", tx.UUID, terr)
		}
	default:
		log.Printf("[processor][usecase] status: unknown keyword uuid=%s status=%q", tx.UUID, status)
	}

	if _, err := u.txRepo.Save(ctx, *tx); err != nil {
		log.Printf("[processor][usecase] status: transaction save failed uuid=%s err=%v", tx.UUID, err)
	}
}

// RefundTransaction is not implemented by this processor.
func (u *PaymentProcessorUseCase) RefundTransaction(_ context.Context, tx *entities.Transaction) error {
	log.Printf("[processor][usecase] refund: not supported uuid=%s", tx.UUID)
	return nil
}

// VoidTransaction is not implemented by this processor.
func (u *PaymentProcessorUseCase) VoidTransaction(_ context.Context, tx *entities.Transaction) error {
	log.Printf("[processor][usecase] void: not supported uuid=%s", tx.UUID)
	return nil
}
