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

var ErrInvalidCustomerID = errors.New("invalid customer_id")

// IPaymentMethodUseCase exposes payment-method registration for the
// checkout flow. Methods start unverified and tokenless; the gateway's
// token-created notification fills both in.

type IPaymentMethodUseCase interface {
	Register(ctx context.Context, customerID string) (entities.PaymentMethod, error)
	GetByID(ctx context.Context, id string) (entities.PaymentMethod, error)
}

type PaymentMethodUseCase struct {
	repo interfaces.IPaymentMethodRepository
}

var _ IPaymentMethodUseCase = (*PaymentMethodUseCase)(nil)

func NewPaymentMethodUseCase(repo interfaces.IPaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

func (u *PaymentMethodUseCase) Register(ctx context.Context, customerID string) (entities.PaymentMethod, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.PaymentMethod{}, ErrInvalidCustomerID
	}

	now := time.Now().UTC()
	m := entities.PaymentMethod{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, m)
}

func (u *PaymentMethodUseCase) GetByID(ctx context.Context, id string) (entities.PaymentMethod, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMethod{}, ErrInvalidPaymentMethodID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if m.ID == "" {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	return m, nil
}
