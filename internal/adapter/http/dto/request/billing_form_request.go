package request

import (
	"strings"

	"payu_billing/internal/domain/entities"
)

// BillingFormRequest is the validated billing form submitted with a
// charge. Binding validation is the upstream contract: a bound form always
// carries the fields the delivery payload derives from.
type BillingFormRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	AddressLine1 string `json:"address_line_1" binding:"required"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city" binding:"required"`
	CountryCode  string `json:"country_code"`
	ZipCode      string `json:"zip_code"`
	FiscalCode   string `json:"fiscal_code"`
}

// ToBillingDetails converts the form to the gateway's billing field set.
// The two address lines collapse into the single BILL_ADDRESS field the
// gateway expects, joined with one space.
func (r BillingFormRequest) ToBillingDetails() map[string]string {
	details := map[string]string{
		entities.BillingFieldFName:   r.FirstName,
		entities.BillingFieldLName:   r.LastName,
		entities.BillingFieldEmail:   r.Email,
		entities.BillingFieldPhone:   r.Phone,
		entities.BillingFieldCity:    r.City,
		entities.BillingFieldAddress: r.CombinedAddress(),
	}
	if v := strings.TrimSpace(r.CountryCode); v != "" {
		details[entities.BillingFieldCountry] = v
	}
	if v := strings.TrimSpace(r.ZipCode); v != "" {
		details[entities.BillingFieldZipCode] = v
	}
	if v := strings.TrimSpace(r.FiscalCode); v != "" {
		details[entities.BillingFieldFiscal] = v
	}
	return details
}

func (r BillingFormRequest) CombinedAddress() string {
	return r.AddressLine1 + " " + r.AddressLine2
}
