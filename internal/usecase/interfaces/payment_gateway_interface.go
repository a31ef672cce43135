package interfaces

import "context"

// IPaymentGateway abstracts the external card-token gateway (PayU ALU).
//
// TokenCharge runs one synchronous charge against a stored card token with
// a flat field payload and returns the gateway's raw response body. The
// caller parses and classifies the response; transport failures surface as
// err.
type IPaymentGateway interface {
	TokenCharge(ctx context.Context, payload map[string]string, token string) (rawResponse string, err error)
}
