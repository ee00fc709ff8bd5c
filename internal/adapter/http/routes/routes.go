package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "catrental/docs" // Generated by swag init
	"catrental/internal/adapter/http/handlers"
	"catrental/internal/adapter/http/middleware"
	"catrental/internal/adapter/persistence/repository"
	"catrental/internal/config"
	"catrental/internal/infrastructure/database"
	"catrental/internal/infrastructure/llm"
	"catrental/internal/usecase"
	"catrental/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

// Handlers groups everything the route tables mount.
type Handlers struct {
	Orders          *handlers.OrderHandler
	Transfers       *handlers.TransferHandler
	HealthScores    *handlers.HealthScoreHandler
	Machines        *handlers.MachineHandler
	Recommendations *handlers.RecommendationHandler
	RentalRequests  *handlers.RentalRequestHandler
	Dashboard       *handlers.DashboardHandler
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	h, closeFn := buildHandlers(ctx, cfg)
	defer closeFn()

	router := NewRouter(cfg, h)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[http] server starting port=%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("[http] shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown failed err=%v", err)
		return
	}
	log.Println("[http] server stopped")
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, func()) {
	ddb := database.ConnectDynamoDB(ctx, cfg)

	machineRepo := repository.NewMachineDynamoRepository(ddb, cfg.Tables.Machines)
	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	transferRepo := repository.NewTransferDynamoRepository(ddb, cfg.Tables.Transfers)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.Tables.Users)
	logRepo := repository.NewHealthScoreLogDynamoRepository(ddb, cfg.Tables.HealthScoreLogs)
	requestRepo := repository.NewRentalRequestDynamoRepository(ddb, cfg.Tables.RentalRequests)

	closeFn := func() {}
	var generator interfaces.ITextGenerator
	gemini, err := llm.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	switch {
	case err != nil:
		log.Printf("Gemini generator not configured: %v", err)
	case gemini == nil:
		log.Printf("Gemini generator disabled: GEMINI_API_KEY not set, recommendations are rule-based")
	default:
		generator = gemini
		closeFn = func() { _ = gemini.Close() }
	}

	summaries := usecase.NewSummaryCache(cfg.HealthScoreTTL)
	healthUseCase := usecase.NewHealthScoreUseCase(userRepo, machineRepo, logRepo, summaries)

	return Handlers{
		Orders:          handlers.NewOrderHandler(usecase.NewOrderUseCase(orderRepo, machineRepo, transferRepo)),
		Transfers:       handlers.NewTransferHandler(usecase.NewTransferUseCase(transferRepo, machineRepo, orderRepo)),
		HealthScores:    handlers.NewHealthScoreHandler(healthUseCase),
		Machines:        handlers.NewMachineHandler(usecase.NewMachineUseCase(machineRepo, summaries)),
		Recommendations: handlers.NewRecommendationHandler(usecase.NewRecommendationUseCase(healthUseCase, machineRepo, generator)),
		RentalRequests:  handlers.NewRentalRequestHandler(usecase.NewRentalRequestUseCase(requestRepo, machineRepo)),
		Dashboard:       handlers.NewDashboardHandler(usecase.NewDashboardUseCase(machineRepo, orderRepo, requestRepo)),
	}, closeFn
}

// NewRouter mounts the /v1 API on a fresh engine.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	v1 := router.Group("/v1")
	v1.Use(middleware.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))
	addPingRoutes(v1)

	// Everything below requires a bearer token.
	authed := v1.Group("")
	authed.Use(middleware.Authenticate(cfg.JWTSecret, cfg.JWTIssuer))
	addOrderRoutes(authed, h.Orders)
	addTransferRoutes(authed, h.Transfers)
	addHealthScoreRoutes(authed, h.HealthScores)
	addMachineRoutes(authed, h.Machines)
	addRecommendationRoutes(authed, h.Recommendations)
	addRentalRequestRoutes(authed, h.RentalRequests)
	addDashboardRoutes(authed, h.Dashboard)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
