package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "payu_billing/docs" // This will be auto-generated
	"payu_billing/internal/adapter/http/handlers"
	"payu_billing/internal/adapter/http/middleware"
	repository2 "payu_billing/internal/adapter/persistence/repository"
	"payu_billing/internal/events"
	"payu_billing/internal/infrastructure/database"
	"payu_billing/internal/infrastructure/payments"
	"payu_billing/internal/usecase"
	"payu_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middleware.PrometheusHandler())

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	txRepo := repository2.NewTransactionDynamoRepository(ddb)
	pmRepo := repository2.NewPaymentMethodDynamoRepository(ddb)

	payuGateway, err := payments.NewPayUGateway(os.Getenv("PAYU_MERCHANT"), os.Getenv("PAYU_SECRET_KEY"))
	if err != nil {
		// Charges answer with a gateway-not-configured error until
		// credentials arrive; the rest of the API stays up.
		log.Printf("PayU gateway not configured: %v", err)
	}
	var paymentGateway interfaces.IPaymentGateway = payuGateway

	processorUseCase := usecase.NewPaymentProcessorUseCase(txRepo, pmRepo, paymentGateway)
	transactionUseCase := usecase.NewTransactionUseCase(txRepo, pmRepo)
	paymentMethodUseCase := usecase.NewPaymentMethodUseCase(pmRepo)
	notificationUseCase := usecase.NewNotificationUseCase(txRepo, pmRepo, processorUseCase)

	// Subscribers attach to the bus exactly once, here at startup; there
	// is no hidden global registry.
	bus := events.NewBus()
	bus.Subscribe(events.EventPaymentAuthorized, notificationUseCase.HandlePaymentAuthorized)
	bus.Subscribe(events.EventTokenCreated, notificationUseCase.HandleTokenCreated)

	transactionHandler := handlers.NewTransactionHandler(transactionUseCase, processorUseCase)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(paymentMethodUseCase)
	notificationHandler := handlers.NewNotificationHandler(bus)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, transactionHandler, paymentMethodHandler, notificationHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.MetricsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
