package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"workshop_jobs/internal/adapter/http/dto/request"
	"workshop_jobs/internal/adapter/http/handlers"
	"workshop_jobs/internal/adapter/persistence"
	"workshop_jobs/internal/infrastructure/config"
	"workshop_jobs/internal/infrastructure/documents"
	"workshop_jobs/internal/infrastructure/logging"
	"workshop_jobs/internal/infrastructure/security"
	"workshop_jobs/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers is everything the router mounts.
type Handlers struct {
	Session     gin.HandlerFunc
	Auth        *handlers.AuthHandler
	Workshops   *handlers.WorkshopHandler
	Managers    *handlers.ManagerHandler
	Jobs        *handlers.JobHandler
	Payments    *handlers.PaymentHandler
	Settlements *handlers.SettlementHandler
	Reports     *handlers.ReportHandler
}

// NewHandlers builds the use cases on top of the store and wraps them in
// HTTP handlers.
func NewHandlers(cfg config.Config, store *persistence.Store, log logrus.FieldLogger) Handlers {
	scopes := usecase.NewScopeResolver(store.Workshops, store.Managers)
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokens := security.NewTokenCodec(cfg.JWTSecret, cfg.SessionTTL)

	authUseCase := usecase.NewAuthUseCase(store.Users, store.InviteCodes, scopes, hasher, tokens, log)
	workshopUseCase := usecase.NewWorkshopUseCase(store.Workshops, store.InviteCodes, scopes, cfg.DefaultCurrency, log)
	managerUseCase := usecase.NewManagerUseCase(store.Managers, store.Users, scopes, log)
	jobUseCase := usecase.NewJobUseCase(store.Jobs, store.Payments, store.Users, scopes, cfg.StatusPolicy, log)
	paymentUseCase := usecase.NewPaymentUseCase(store.Payments, store.Jobs, store.Workshops, store.Users, scopes, log)
	settlementUseCase := usecase.NewSettlementUseCase(store.Settlements, store.Users, scopes, log)
	analyticsUseCase := usecase.NewAnalyticsUseCase(store.Jobs, store.Payments, documents.NewSpreadsheetExporter(), scopes, log)
	documentUseCase := usecase.NewDocumentUseCase(jobUseCase, store.Workshops, documents.NewPDFRenderer())

	return Handlers{
		Session:     handlers.RequireSession(authUseCase, log),
		Auth:        handlers.NewAuthHandler(authUseCase, log),
		Workshops:   handlers.NewWorkshopHandler(workshopUseCase, log),
		Managers:    handlers.NewManagerHandler(managerUseCase, log),
		Jobs:        handlers.NewJobHandler(jobUseCase, log),
		Payments:    handlers.NewPaymentHandler(paymentUseCase, log),
		Settlements: handlers.NewSettlementHandler(settlementUseCase, log),
		Reports:     handlers.NewReportHandler(analyticsUseCase, documentUseCase, log),
	}
}

// NewRouter mounts the middlewares, the swagger UI and the /v1 surface.
func NewRouter(cfg config.Config, log logrus.FieldLogger, h Handlers) *gin.Engine {
	request.RegisterValidators()

	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Auth, h.Session)

	// Authenticated routes
	private := v1.Group("", h.Session)
	addWorkshopRoutes(private, h.Workshops, h.Managers)
	addJobRoutes(private, h.Jobs, h.Payments, h.Settlements)
	addReportRoutes(private, h.Reports)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config, log logrus.FieldLogger) {
	router.Use(logging.GinLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("path", c.Request.URL.Path).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
}

func corsConfig(origins []string) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization")
	cc.ExposeHeaders = []string{"Content-Disposition"}
	for _, o := range origins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	if len(origins) == 0 {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = origins
	cc.AllowCredentials = true
	return cc
}

// Run opens the store, serves HTTP and shuts down when ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log logrus.FieldLogger) error {
	store, err := persistence.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("close store")
		}
	}()

	router := NewRouter(cfg, log, NewHandlers(cfg, store, log))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "store": cfg.StoreDriver}).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}
