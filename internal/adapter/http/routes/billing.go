package routes

import (
	"payu_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTransactions   = "/transactions"
	PathPaymentMethods = "/payment-methods"
	PathNotifications  = "/notifications/payu"
)

func addBillingRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler, paymentMethodHandler *handlers.PaymentMethodHandler, notificationHandler *handlers.NotificationHandler) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.POST("", transactionHandler.CreateTransaction)
		transactions.GET("/:uuid", transactionHandler.GetTransaction)
		transactions.POST("/:uuid/charge", transactionHandler.ChargeTransaction)
	}

	paymentMethods := rg.Group(PathPaymentMethods)
	{
		paymentMethods.POST("", paymentMethodHandler.CreatePaymentMethod)
		paymentMethods.GET("/:id", paymentMethodHandler.GetPaymentMethod)
	}

	notifications := rg.Group(PathNotifications)
	{
		// PayU IPN endpoints; both are form-encoded POSTs.
		notifications.POST("", notificationHandler.HandleAuthorizationNotification)
		notifications.POST("/token", notificationHandler.HandleTokenNotification)
	}
}
