package entities

import "time"

// Billing field names shared by the archived customer record and the
// gateway charge payload.
const (
	BillingFieldAddress = "BILL_ADDRESS"
	BillingFieldCity    = "BILL_CITY"
	BillingFieldEmail   = "BILL_EMAIL"
	BillingFieldFName   = "BILL_FNAME"
	BillingFieldLName   = "BILL_LNAME"
	BillingFieldPhone   = "BILL_PHONE"
	BillingFieldCountry = "BILL_COUNTRYCODE"
	BillingFieldZipCode = "BILL_ZIPCODE"
	BillingFieldFiscal  = "BILL_FISCALCODE"
)

// PaymentMethod is a reusable charge target bound to a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Token stays empty until the gateway delivers the token-created
// notification; ArchivedCustomer stays nil until the first successful
// billing form capture.

type PaymentMethod struct {
	ID               string            `json:"id"`
	CustomerID       string            `json:"customer_id"`
	Token            string            `json:"token,omitempty"`
	Verified         bool              `json:"verified"`
	ArchivedCustomer map[string]string `json:"archived_customer,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Archived reports whether a billing record has been captured for this
// payment method.
func (m *PaymentMethod) Archived() bool {
	return m.ArchivedCustomer != nil
}
