package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"payu_billing/internal/events"
	"payu_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNotificationHandler_Authorization(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("publishes the external reference", func(t *testing.T) {
		bus := events.NewBus()
		var got usecase.PaymentAuthorizedEvent
		bus.Subscribe(events.EventPaymentAuthorized, func(_ context.Context, payload json.RawMessage) error {
			return json.Unmarshal(payload, &got)
		})

		r := gin.New()
		h := NewNotificationHandler(bus)
		r.POST("/v1/notifications/payu", h.HandleAuthorizationNotification)

		w := postForm(r, "/v1/notifications/payu", url.Values{"REFNOEXT": {"abc-123"}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got.RefNoExt != "abc-123" {
			t.Fatalf("expected abc-123, got %q", got.RefNoExt)
		}
	})

	t.Run("missing reference", func(t *testing.T) {
		r := gin.New()
		h := NewNotificationHandler(events.NewBus())
		r.POST("/v1/notifications/payu", h.HandleAuthorizationNotification)

		w := postForm(r, "/v1/notifications/payu", url.Values{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lookup failure surfaces as 404", func(t *testing.T) {
		bus := events.NewBus()
		bus.Subscribe(events.EventPaymentAuthorized, func(_ context.Context, _ json.RawMessage) error {
			return usecase.ErrTransactionNotFound
		})

		r := gin.New()
		h := NewNotificationHandler(bus)
		r.POST("/v1/notifications/payu", h.HandleAuthorizationNotification)

		w := postForm(r, "/v1/notifications/payu", url.Values{"REFNOEXT": {"ghost"}})
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_Token(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("publishes reference and token", func(t *testing.T) {
		bus := events.NewBus()
		var got usecase.TokenCreatedEvent
		bus.Subscribe(events.EventTokenCreated, func(_ context.Context, payload json.RawMessage) error {
			return json.Unmarshal(payload, &got)
		})

		r := gin.New()
		h := NewNotificationHandler(bus)
		r.POST("/v1/notifications/payu/token", h.HandleTokenNotification)

		w := postForm(r, "/v1/notifications/payu/token", url.Values{
			"REFNOEXT":     {"abc-123"},
			"IPN_CC_TOKEN": {"tok_999"},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got.IPN.RefNoExt != "abc-123" || got.Token != "tok_999" {
			t.Fatalf("unexpected event: %+v", got)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		r := gin.New()
		h := NewNotificationHandler(events.NewBus())
		r.POST("/v1/notifications/payu/token", h.HandleTokenNotification)

		w := postForm(r, "/v1/notifications/payu/token", url.Values{"REFNOEXT": {"abc-123"}})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
