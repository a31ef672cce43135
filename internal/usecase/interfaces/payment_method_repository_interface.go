package interfaces

import (
	"context"
	"payu_billing/internal/domain/entities"
)

// IPaymentMethodRepository abstracts DynamoDB persistence for PaymentMethod.

type IPaymentMethodRepository interface {
	Create(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error)
	GetByID(ctx context.Context, id string) (entities.PaymentMethod, error)
	Save(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error)
}
