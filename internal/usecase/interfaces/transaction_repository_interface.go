package interfaces

import (
	"context"
	"payu_billing/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// The processor must be able to:
//   - create a transaction when the checkout flow opens a charge attempt
//   - load a transaction by its gateway-visible external reference (uuid)
//   - save state/data mutations made by the status driver

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByUUID(ctx context.Context, uuid string) (entities.Transaction, error)
	Save(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
}
