package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/config"
	"github.com/BruksfildServices01/table-booking/internal/logging"
	"github.com/BruksfildServices01/table-booking/internal/routes"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := wire(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to wire dependencies")
	}
	defer cleanup()

	r := routes.NewRouter(deps)

	log.WithFields(logrus.Fields{
		"mode":     cfg.Mode,
		"store":    cfg.ItemStore,
		"identity": cfg.IdentityProvider,
		"lock":     cfg.LockBackend,
		"audit":    cfg.AuditSink,
	}).Info("booking api starting")

	if cfg.Mode == config.ModeLambda {
		adapter := ginadapter.New(r)
		lambda.StartWithOptions(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		}, lambda.WithEnableSIGTERM(cleanup))
		return
	}

	serve(ctx, r, cfg, log)
}

func serve(ctx context.Context, r *gin.Engine, cfg *config.Config, log *logrus.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
