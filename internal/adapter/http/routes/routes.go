package routes

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "funilaria_xpto/docs" // swag generated docs
	"funilaria_xpto/internal/adapter/http/handlers"
	"funilaria_xpto/internal/adapter/persistence/repository"
	"funilaria_xpto/internal/infrastructure/database"
	"funilaria_xpto/internal/infrastructure/logger"
	"funilaria_xpto/internal/infrastructure/payments"
	"funilaria_xpto/internal/usecase"
	"funilaria_xpto/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(log *zap.Logger) {
	ddb, err := database.ConnectDynamoDB(log)
	if err != nil {
		log.Fatal("failed to connect to dynamodb", zap.Error(err))
	}

	versionRepo := repository.NewEstimateVersionDynamoRepository(ddb, log)
	paymentRepo := repository.NewDeductiblePaymentDynamoRepository(ddb)

	importUseCase := usecase.NewEstimateImportUseCase(versionRepo, log)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewDeductiblePaymentUseCase(paymentRepo, versionRepo, paymentGateway, log)

	importHandler := handlers.NewEstimateImportHandler(importUseCase, log)
	paymentHandler := handlers.NewDeductiblePaymentHandler(paymentUseCase, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, importHandler, paymentHandler)
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
