package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "quanngon_payments/docs" // This will be auto-generated
	"quanngon_payments/internal/adapter/http/handlers"
	repository2 "quanngon_payments/internal/adapter/persistence/repository"
	"quanngon_payments/internal/infrastructure/database"
	"quanngon_payments/internal/infrastructure/payments"
	"quanngon_payments/internal/infrastructure/scheduler"
	"quanngon_payments/internal/usecase"

	"github.com/gin-contrib/cors"
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

	paymentRepo := repository2.NewPendingPaymentDynamoRepository(ddb)

	momoCfg := payments.LoadConfigFromEnv()
	verifier, err := payments.NewSignatureVerifier(momoCfg)
	if err != nil {
		log.Fatalf("MoMo verifier not configured: %v", err)
	}

	confirmationUseCase := usecase.NewPaymentConfirmationUseCase(paymentRepo, verifier)

	sweepUseCase := usecase.NewStaleSweepUseCase(
		paymentRepo,
		parseDuration("PENDING_PAYMENT_TTL", usecase.DefaultPendingTTL),
		parseDuration("COMPLETED_PAYMENT_TTL", usecase.DefaultCompletedTTL),
	)
	sweeper := scheduler.NewStaleSweeper(sweepUseCase, parseDuration("SWEEP_INTERVAL", scheduler.DefaultSweepInterval))
	sweeper.Start(context.Background())

	webhookHandler := handlers.NewMomoWebhookHandler(confirmationUseCase)
	paymentHandler := handlers.NewPaymentHandler(confirmationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, webhookHandler, paymentHandler)
}

func setMiddlewares() {
	// MoMo itself never preflights, but the staff app confirms payments from
	// a browser context. Keep the policy permissive.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "Authorization"},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}))
	router.HandleMethodNotAllowed = true

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func parseDuration(key string, def time.Duration) time.Duration {
	if raw, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}
	return def
}
