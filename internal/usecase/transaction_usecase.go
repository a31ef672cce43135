package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"payu_billing/internal/domain/entities"
	"payu_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentMethodID = errors.New("invalid payment_method_id")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidCurrency        = errors.New("invalid currency")
)

// ITransactionUseCase exposes the checkout-side transaction operations.
//
// The processor never creates transactions itself; the checkout flow opens
// one per charge attempt and hands it to the processor.

type ITransactionUseCase interface {
	OpenTransaction(ctx context.Context, paymentMethodID, currency string, amount float64) (entities.Transaction, error)
	GetByUUID(ctx context.Context, id string) (entities.Transaction, error)
}

type TransactionUseCase struct {
	repo   interfaces.ITransactionRepository
	pmRepo interfaces.IPaymentMethodRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository, pmRepo interfaces.IPaymentMethodRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, pmRepo: pmRepo}
}

func (u *TransactionUseCase) OpenTransaction(ctx context.Context, paymentMethodID, currency string, amount float64) (entities.Transaction, error) {
	paymentMethodID = strings.TrimSpace(paymentMethodID)
	if paymentMethodID == "" {
		return entities.Transaction{}, ErrInvalidPaymentMethodID
	}
	if amount <= 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return entities.Transaction{}, ErrInvalidCurrency
	}

	pm, err := u.pmRepo.GetByID(ctx, paymentMethodID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if pm.ID == "" {
		return entities.Transaction{}, ErrPaymentMethodNotFound
	}

	now := time.Now().UTC()
	t := entities.Transaction{
		UUID:            uuid.NewString(),
		Amount:          amount,
		Currency:        currency,
		State:           entities.TransactionStateInitial,
		PaymentMethodID: pm.ID,
		ProcessorRef:    ProcessorReference,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TransactionUseCase) GetByUUID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.repo.GetByUUID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.UUID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}
