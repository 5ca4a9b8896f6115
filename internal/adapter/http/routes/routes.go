package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "vhc_service/docs" // swagger spec registration
	request "vhc_service/internal/adapter/http/dto/request"
	"vhc_service/internal/adapter/http/handlers"
	"vhc_service/internal/adapter/persistence/repository"
	"vhc_service/internal/domain/pricing"
	"vhc_service/internal/infrastructure/config"
	"vhc_service/internal/infrastructure/database"
	"vhc_service/internal/infrastructure/export"
	"vhc_service/internal/infrastructure/lock"
	"vhc_service/internal/infrastructure/logging"
	"vhc_service/internal/infrastructure/messaging"
	"vhc_service/internal/infrastructure/payments"
	"vhc_service/internal/infrastructure/phone"
	"vhc_service/internal/usecase"
	"vhc_service/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "vhc-service"

// Run will start the server
func Run() {
	logger := logging.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logging.SetLevel(cfg.LogLevel)

	if err := request.RegisterValidators(); err != nil {
		logger.Fatalf("Failed to register validators: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, closeFn, err := buildHandlers(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to startup the application: %v", err)
	}
	defer closeFn()

	router := newRouter(cfg)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	getRoutes(router, h, cfg)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Graceful shutdown failed: %v", err)
		}
	}()

	logger.Infof("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// Handlers groups every HTTP handler the routes are bound to.
type Handlers struct {
	HealthChecks   *handlers.HealthCheckHandler
	RepairItems    *handlers.RepairItemHandler
	Authorization  *handlers.AuthorizationHandler
	DeclineReasons *handlers.DeclineReasonHandler
	Pricing        *handlers.PricingHandler
	Payments       *handlers.BillingPaymentHandler
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	logger := logging.GetLogger()
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)

	healthCheckRepo := repository.NewHealthCheckDynamoRepository(ddb, cfg.Tables.HealthChecks)
	repairItemRepo := repository.NewRepairItemDynamoRepository(ddb, cfg.Tables.RepairItems)
	declineReasonRepo := repository.NewDeclineReasonDynamoRepository(ddb, cfg.Tables.DeclineReasons)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.Tables.Payments)

	locker, err := lock.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.LockTTL)
	if err != nil {
		return Handlers{}, nil, err
	}
	publisher, closePublisher, err := messaging.Connect(cfg.NATSURL)
	if err != nil {
		return Handlers{}, nil, err
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		logger.Warnf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	calc := pricing.NewCalculator(cfg.VATRate)

	healthCheckUseCase := usecase.NewHealthCheckUseCase(healthCheckRepo, repairItemRepo, calc,
		export.NewQuoteExcelExporter(), phone.NewNormalizer(cfg.DefaultPhoneRegion), publisher)
	repairItemUseCase := usecase.NewRepairItemUseCase(healthCheckRepo, repairItemRepo)
	authorizationUseCase := usecase.NewAuthorizationUseCase(healthCheckRepo, repairItemRepo, declineReasonRepo, calc, locker, publisher)
	declineReasonUseCase := usecase.NewDeclineReasonUseCase(declineReasonRepo)
	pricingUseCase := usecase.NewPricingUseCase(calc)
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, healthCheckRepo, repairItemRepo, calc, paymentGateway, locker,
		usecase.PayerSettings{
			AccessToken:   cfg.MercadoPagoAccessToken,
			SandboxEmail:  cfg.SandboxPayerEmail,
			SandboxUserID: cfg.SandboxPayerUserID,
			MockMode:      cfg.PaymentGatewayMock,
		})

	if err := declineReasonUseCase.EnsureDefaults(ctx); err != nil {
		logging.LogError(logger, "routes", "buildHandlers", "seeding decline reasons failed", cfg.Tables.DeclineReasons, err)
	}

	return Handlers{
		HealthChecks:   handlers.NewHealthCheckHandler(healthCheckUseCase),
		RepairItems:    handlers.NewRepairItemHandler(repairItemUseCase),
		Authorization:  handlers.NewAuthorizationHandler(authorizationUseCase),
		DeclineReasons: handlers.NewDeclineReasonHandler(declineReasonUseCase),
		Pricing:        handlers.NewPricingHandler(pricingUseCase),
		Payments:       handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
	}, closePublisher, nil
}

func newRouter(cfg config.Config) *gin.Engine {
	router := gin.New()
	router.Use(logging.GinLogger(logging.GetLogger()))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.GetLogger().Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	c.AddAllowMethods(http.MethodPatch, http.MethodDelete)
	c.AddAllowHeaders("Authorization")
	c.AddExposeHeaders("Content-Disposition")
	return c
}

func getRoutes(router *gin.Engine, h Handlers, cfg config.Config) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addHealthCheckRoutes(v1, h, newIPRateLimiter(cfg.AuthorizationRatePerSecond, cfg.AuthorizationBurst))
	addRepairItemRoutes(v1, h.RepairItems)
	addDeclineReasonRoutes(v1, h.DeclineReasons)
	addPricingRoutes(v1, h.Pricing)
	addPaymentRoutes(v1, h.Payments)
}
