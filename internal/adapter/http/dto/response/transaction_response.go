package response

import (
	"time"

	"payu_billing/internal/domain/entities"
)

type TransactionResponse struct {
	UUID            string            `json:"uuid"`
	Amount          float64           `json:"amount"`
	Currency        string            `json:"currency"`
	State           string            `json:"state"`
	PaymentMethodID string            `json:"payment_method_id"`
	ProcessorRef    string            `json:"processor_ref"`
	Data            map[string]string `json:"data,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		UUID:            t.UUID,
		Amount:          t.Amount,
		Currency:        t.Currency,
		State:           string(t.State),
		PaymentMethodID: t.PaymentMethodID,
		ProcessorRef:    t.ProcessorRef,
		Data:            t.Data,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type PaymentMethodResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Verified   bool      `json:"verified"`
	Archived   bool      `json:"archived"`
	HasToken   bool      `json:"has_token"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromPaymentMethod deliberately exposes token presence only; the token
// itself never leaves the service.
func FromPaymentMethod(m entities.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Verified:   m.Verified,
		Archived:   m.Archived(),
		HasToken:   m.Token != "",
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ChargeResponse reports the synchronous charge outcome to the checkout
// flow. Executed mirrors the processor's boolean return.
type ChargeResponse struct {
	Executed    bool                `json:"executed"`
	Transaction TransactionResponse `json:"transaction"`
}
