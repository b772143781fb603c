package routes

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "payment_sync/docs"
	"payment_sync/internal/adapter/http/handlers"
	"payment_sync/internal/adapter/http/middleware"
	"payment_sync/internal/adapter/platform"
	"payment_sync/internal/config"
	"payment_sync/internal/i18n"
	"payment_sync/internal/infrastructure/messaging"
	"payment_sync/internal/infrastructure/metrics"
	"payment_sync/internal/infrastructure/payments"
	"payment_sync/internal/usecase"
)

// Dependencies are the collaborators the HTTP surface is built on.
type Dependencies struct {
	Orders    usecase.IOrderUseCase
	Platforms handlers.PlatformOrders
	Metrics   *metrics.ServerMetrics
	JWTSecret string
}

// Run will start the server
func Run(cfg config.Config) {
	ctx := context.Background()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer repos.close()

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, config.IsPaymentGatewayMockEnabled())
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	}

	serverMetrics := metrics.NewServerMetrics("api")
	publisher := messaging.NewPublisher(messaging.NewClient(cfg.KafkaBrokers), cfg.KafkaOrderEventsTopic, cfg.KafkaNotificationsTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("[messaging][kafka] close failed err=%v", err)
		}
	}()

	catalog := i18n.NewCatalog(cfg.Locale)
	orderService := usecase.NewOrderService(
		repos.orders,
		repos.charges,
		repos.cards,
		gateway,
		cfg.Module,
		metrics.NewCountingPublisher(publisher, serverMetrics),
		catalog,
	)

	router := NewRouter(Dependencies{
		Orders:    orderService,
		Platforms: platform.NewFactory(repos.platformOrders, publisher, catalog),
		Metrics:   serverMetrics,
		JWTSecret: cfg.JWTSecret,
	})

	log.Printf("[api] listening port=%d storage=%s env=%s", cfg.Port, cfg.StorageDriver, cfg.Env)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(d Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, d.Metrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, handlers.NewOrderHandler(d.Orders, d.Platforms), middleware.BearerAuth(d.JWTSecret))
	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.ServerMetrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics(m))
}
