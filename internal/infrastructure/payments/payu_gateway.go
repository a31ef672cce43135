package payments

import (
	"context"
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"
)

var ErrMissingPayUCredentials = errors.New("missing PAYU_MERCHANT or PAYU_SECRET_KEY")
var ErrPayUGatewayNotConfigured = errors.New("payu gateway not configured")

const defaultALUEndpoint = "https://secure.payu.com/order/alu/v3"

// PayUGateway charges stored card tokens through PayU's ALU endpoint.
//
// The wire contract is a flat form POST signed with an HMAC-MD5 ORDER_HASH
// over the length-prefixed field values; the response body is returned
// verbatim for the caller to classify.

type PayUGateway struct {
	merchant   string
	secret     string
	endpoint   string
	httpClient *http.Client
	mockMode   bool
}

func NewPayUGateway(merchant, secret string) (*PayUGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PayUGateway{mockMode: true}, nil
	}

	if merchant == "" || secret == "" {
		log.Printf("[payment][gateway] missing PAYU_MERCHANT / PAYU_SECRET_KEY")
		return nil, ErrMissingPayUCredentials
	}

	endpoint := os.Getenv("PAYU_ALU_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultALUEndpoint
	}
	log.Printf("[payment][gateway] PayU client initialized endpoint=%s", endpoint)

	return &PayUGateway{
		merchant:   merchant,
		secret:     secret,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// TokenCharge posts one signed token charge and returns the raw response
// body. No retries; the transport timeout is the only cancellation beyond
// ctx.
func (g *PayUGateway) TokenCharge(ctx context.Context, payload map[string]string, token string) (string, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock charge ref=%s amount=%s", payload["EXTERNAL_REF"], payload["AMOUNT"])
		return fmt.Sprintf(`{"code":0,"status":"SUCCESS","reference":%q}`, payload["EXTERNAL_REF"]), nil
	}

	if g == nil || g.httpClient == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrPayUGatewayNotConfigured
	}

	fields := make(map[string]string, len(payload)+3)
	for k, v := range payload {
		fields[k] = v
	}
	fields["MERCHANT"] = g.merchant
	fields["CC_TOKEN"] = token
	fields["ORDER_DATE"] = time.Now().UTC().Format("2006-01-02 15:04:05")
	fields["ORDER_HASH"] = SignRequest(fields, g.secret)

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	log.Printf("[payment][gateway] charge start ref=%s fields=%d", payload["EXTERNAL_REF"], len(fields))
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] charge transport failed ref=%s err=%v", payload["EXTERNAL_REF"], err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[payment][gateway] charge body read failed ref=%s err=%v", payload["EXTERNAL_REF"], err)
		return "", err
	}
	log.Printf("[payment][gateway] charge done ref=%s http_status=%d body_len=%d", payload["EXTERNAL_REF"], resp.StatusCode, len(body))

	return string(body), nil
}

// SignRequest computes the ORDER_HASH: HMAC-MD5 over every field value in
// field-name order, each value prefixed with its byte length.
func SignRequest(fields map[string]string, secret string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == "ORDER_HASH" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var buf strings.Builder
	for _, name := range names {
		v := fields[name]
		buf.WriteString(fmt.Sprintf("%d%s", len(v), v))
	}

	mac := hmac.New(md5.New, []byte(secret))
	mac.Write([]byte(buf.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYU_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
