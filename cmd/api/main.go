package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/viki/internal/audit"
	"github.com/BruksfildServices01/viki/internal/config"
	dbpkg "github.com/BruksfildServices01/viki/internal/db"
	"github.com/BruksfildServices01/viki/internal/infra/idempotency"
	"github.com/BruksfildServices01/viki/internal/infra/payments"
	"github.com/BruksfildServices01/viki/internal/infra/storage"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/routes"
)

func main() {

	cfg := config.Load()
	logging.Setup(cfg)
	defer logging.Flush()

	db := dbpkg.NewDB(cfg)

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	deps := routes.Deps{
		Audit:  dispatcher,
		Tokens: newTokenStore(cfg),
	}

	if cfg.MercadoPagoAccessToken != "" {
		provider, err := payments.NewMercadoPagoProvider(cfg.MercadoPagoAccessToken, cfg.PaymentCurrency)
		if err != nil {
			logrus.WithError(err).Fatal("failed to configure mercadopago")
		}
		deps.Links = provider
	}

	if cfg.S3Bucket != "" {
		deps.Archiver = storage.NewS3Archiver(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.AWSAccessKeyID,
			SecretKey: cfg.AWSSecretKey,
		})
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, deps)

	logrus.WithField("addr", cfg.Addr()).Info("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.WithError(err).Error("failed to start server")
	}
}

// Redis quando configurado; senão memória local (uma instância só).
func newTokenStore(cfg *config.Config) idempotency.Store {
	if cfg.RedisURL == "" {
		return idempotency.NewMemoryStore(cfg.IdempotencyTTL)
	}

	client, err := idempotency.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logrus.WithError(err).Fatal("invalid REDIS_URL")
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Warn("redis unreachable at startup")
	}

	return idempotency.NewRedisStore(client, cfg.IdempotencyTTL)
}
