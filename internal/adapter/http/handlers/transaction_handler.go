package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payu_billing/internal/adapter/http/dto/request"
	response "payu_billing/internal/adapter/http/dto/response"
	"payu_billing/internal/adapter/http/middleware"
	"payu_billing/internal/usecase"
	"payu_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)

// TransactionHandler handles HTTP requests for the checkout-side charge
// flow: opening a transaction, fetching it, and running the charge with a
// billing form.

type TransactionHandler struct {
	transactions usecase.ITransactionUseCase
	processor    usecase.IPaymentProcessorUseCase
}

func NewTransactionHandler(transactions usecase.ITransactionUseCase, processor usecase.IPaymentProcessorUseCase) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, processor: processor}
}

// CreateTransaction opens a charge attempt for a payment method.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var payload request.TransactionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	tx, err := h.transactions.OpenTransaction(c.Request.Context(), payload.PaymentMethodID, payload.Currency, payload.Amount)
	if err != nil {
		log.Printf("[transaction][handler] create failed payment_method_id=%s err=%v", payload.PaymentMethodID, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] create success uuid=%s", tx.UUID)

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// GetTransaction returns one transaction by its external reference.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id := c.Param("uuid")

	tx, err := h.transactions.GetByUUID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ChargeTransaction runs the synchronous checkout charge: the validated
// billing form is archived on the payment method (first submission only),
// then the processor executes the transaction. A refused or failed charge
// answers 402 with the transaction's final state.
func (h *TransactionHandler) ChargeTransaction(c *gin.Context) {
	id := c.Param("uuid")
	log.Printf("[transaction][handler] charge start uuid=%s", id)

	var form request.BillingFormRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		log.Printf("[transaction][handler] charge invalid form uuid=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_BILLING_FORM", "Invalid billing form", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.transactions.GetByUUID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.processor.ArchiveBillingDetails(c.Request.Context(), &tx, form.ToBillingDetails()); err != nil {
		log.Printf("[transaction][handler] charge archive failed uuid=%s err=%v", id, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	executed := h.processor.ExecuteTransaction(c.Request.Context(), &tx)
	if executed {
		middleware.RecordChargeExecuted("accepted")
	} else {
		middleware.RecordChargeExecuted("failed")
	}
	log.Printf("[transaction][handler] charge done uuid=%s executed=%t state=%s", id, executed, tx.State)

	status := http.StatusOK
	if !executed {
		status = http.StatusPaymentRequired
	}
	c.JSON(status, response.ChargeResponse{Executed: executed, Transaction: response.FromTransaction(tx)})
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrInvalidPaymentMethodID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
