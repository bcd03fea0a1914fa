package routes

import (
	"log"
	"os"
	"strconv"

	_ "pix_checkout/docs" // This will be auto-generated
	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/adapter/persistence/repository"
	"pix_checkout/internal/infrastructure/database"
	"pix_checkout/internal/infrastructure/payments"
	"pix_checkout/internal/usecase"
	"pix_checkout/internal/usecase/interfaces"

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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	intentRepo := repository.NewPaymentIntentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	intentUseCase := usecase.NewPixIntentUseCase(intentRepo, paymentGateway)
	statusUseCase := usecase.NewPixStatusUseCase(paymentGateway)

	pixHandler := handlers.NewPixHandler(intentUseCase, statusUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPixRoutes(v1, pixHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
