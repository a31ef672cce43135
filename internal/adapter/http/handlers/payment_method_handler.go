package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payu_billing/internal/adapter/http/dto/request"
	response "payu_billing/internal/adapter/http/dto/response"
	"payu_billing/internal/usecase"
	"payu_billing/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentMethodHandler handles HTTP requests for payment methods.

type PaymentMethodHandler struct {
	usecase usecase.IPaymentMethodUseCase
}

func NewPaymentMethodHandler(uc usecase.IPaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{usecase: uc}
}

// CreatePaymentMethod registers a new charge target for a customer.
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var payload request.PaymentMethodCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	m, err := h.usecase.Register(c.Request.Context(), payload.CustomerID)
	if err != nil {
		log.Printf("[payment-method][handler] create failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment-method][handler] create success id=%s customer_id=%s", m.ID, m.CustomerID)

	c.JSON(http.StatusCreated, response.FromPaymentMethod(m))
}

// GetPaymentMethod returns one payment method by id.
func (h *PaymentMethodHandler) GetPaymentMethod(c *gin.Context) {
	id := c.Param("id")

	m, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentMethod(m))
}

func mapPaymentMethodError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidPaymentMethodID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
