package request

// TransactionCreateRequest opens a charge attempt for a payment method.
type TransactionCreateRequest struct {
	PaymentMethodID string  `json:"payment_method_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Currency        string  `json:"currency" binding:"required,len=3"`
}

// PaymentMethodCreateRequest registers a charge target for a customer.
type PaymentMethodCreateRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}
