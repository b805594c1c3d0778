package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "workshop_jobs/docs"
	"workshop_jobs/internal/adapter/http/routes"
	"workshop_jobs/internal/infrastructure/config"
	"workshop_jobs/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Workshop Jobs API
// @version         1.0
// @description     Multi-tenant job tracker for vehicle repair workshops.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(logrus.InfoLevel).WithError(err).Fatal("invalid configuration")
	}
	log := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("failed to startup the application")
	}
}
