package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"payu_billing/internal/usecase/interfaces"
)

var (
	ErrMissingExternalRef = errors.New("notification has no external reference")
	ErrMissingTokenValue  = errors.New("notification has no token value")
)

// PaymentAuthorizedEvent is the gateway's asynchronous authorization
// notification. REFNOEXT carries the external reference, equal to the
// transaction uuid.
type PaymentAuthorizedEvent struct {
	RefNoExt string `json:"REFNOEXT"`
}

// TokenCreatedEvent is the gateway's token-issued notification. The
// external reference sits on the nested IPN object.
type TokenCreatedEvent struct {
	IPN struct {
		RefNoExt string `json:"REFNOEXT"`
	} `json:"IPN"`
	Token string `json:"IPN_CC_TOKEN"`
}

// INotificationUseCase holds the two event subscribers wired onto the bus
// at startup. Both are idempotent lookups by external reference; a lookup
// miss propagates rather than being dropped, since a notification for an
// unknown transaction indicates external data corruption worth surfacing.

type INotificationUseCase interface {
	HandlePaymentAuthorized(ctx context.Context, payload json.RawMessage) error
	HandleTokenCreated(ctx context.Context, payload json.RawMessage) error
}

type NotificationUseCase struct {
	txRepo    interfaces.ITransactionRepository
	pmRepo    interfaces.IPaymentMethodRepository
	processor IPaymentProcessorUseCase
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(txRepo interfaces.ITransactionRepository, pmRepo interfaces.IPaymentMethodRepository, processor IPaymentProcessorUseCase) *NotificationUseCase {
	return &NotificationUseCase{txRepo: txRepo, pmRepo: pmRepo, processor: processor}
}

// HandlePaymentAuthorized finalizes settlement for the transaction the
// gateway authorized.
func (u *NotificationUseCase) HandlePaymentAuthorized(ctx context.Context, payload json.RawMessage) error {
	var evt PaymentAuthorizedEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return err
	}
	ref := strings.TrimSpace(evt.RefNoExt)
	if ref == "" {
		return ErrMissingExternalRef
	}

	log.Printf("[notification][usecase] payment authorized ref=%s", ref)
	tx, err := u.txRepo.GetByUUID(ctx, ref)
	if err != nil {
		return err
	}
	if tx.UUID == "" {
		return ErrTransactionNotFound
	}

	u.processor.UpdateTransactionStatus(ctx, &tx, StatusSettle)
	return nil
}

// HandleTokenCreated persists the issued charge token on the payment
// method reached through the referenced transaction. Transaction state is
// never touched here.
func (u *NotificationUseCase) HandleTokenCreated(ctx context.Context, payload json.RawMessage) error {
	var evt TokenCreatedEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return err
	}
	ref := strings.TrimSpace(evt.IPN.RefNoExt)
	if ref == "" {
		return ErrMissingExternalRef
	}
	token := strings.TrimSpace(evt.Token)
	if token == "" {
		return ErrMissingTokenValue
	}

	log.Printf("[notification][usecase] token created ref=%s", ref)
	tx, err := u.txRepo.GetByUUID(ctx, ref)
	if err != nil {
		return err
	}
	if tx.UUID == "" {
		return ErrTransactionNotFound
	}

	pm, err := u.pmRepo.GetByID(ctx, tx.PaymentMethodID)
	if err != nil {
		return err
	}
	if pm.ID == "" {
		return ErrPaymentMethodNotFound
	}

	pm.Token = token
	pm.Verified = true
	if _, err := u.pmRepo.Save(ctx, pm); err != nil {
		return err
	}
	log.Printf("[notification][usecase] token stored payment_method_id=%s", pm.ID)
	return nil
}
