package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "payu_billing/internal/adapter/http/dto/request"
	"payu_billing/internal/events"
	"payu_billing/internal/usecase"
	"payu_billing/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler receives PayU's asynchronous IPN posts and publishes
// them onto the event bus. It owns no business logic; the subscribed
// notification usecase does the work, and its error decides the HTTP
// answer the gateway sees (PayU retries on non-2xx).

type NotificationHandler struct {
	bus *events.Bus
}

func NewNotificationHandler(bus *events.Bus) *NotificationHandler {
	return &NotificationHandler{bus: bus}
}

// HandleAuthorizationNotification processes the payment-authorized IPN.
func (h *NotificationHandler) HandleAuthorizationNotification(c *gin.Context) {
	var payload request.AuthorizationNotificationRequest
	if err := c.ShouldBind(&payload); err != nil {
		log.Printf("[notification][handler] authorization invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid notification payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[notification][handler] authorization received ref=%s", payload.RefNoExt)

	evt, err := json.Marshal(usecase.PaymentAuthorizedEvent{RefNoExt: payload.RefNoExt})
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.bus.Publish(c.Request.Context(), events.EventPaymentAuthorized, evt); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": payload.RefNoExt})
}

// HandleTokenNotification processes the token-created IPN.
func (h *NotificationHandler) HandleTokenNotification(c *gin.Context) {
	var payload request.TokenNotificationRequest
	if err := c.ShouldBind(&payload); err != nil {
		log.Printf("[notification][handler] token invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid notification payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[notification][handler] token received ref=%s", payload.RefNoExt)

	var evt usecase.TokenCreatedEvent
	evt.IPN.RefNoExt = payload.RefNoExt
	evt.Token = payload.Token
	body, err := json.Marshal(evt)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.bus.Publish(c.Request.Context(), events.EventTokenCreated, body); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": payload.RefNoExt})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingExternalRef), errors.Is(err, usecase.ErrMissingTokenValue):
		return pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid notification payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
