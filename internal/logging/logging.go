package logging

import (
	"context"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/viki/internal/config"
	"github.com/BruksfildServices01/viki/internal/httperr"
)

// Setup configura o logrus em JSON e, se houver DSN, o Sentry.
func Setup(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.SentryDSN == "" {
		return
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		AttachStacktrace: true,
	}); err != nil {
		logrus.WithError(err).Warn("sentry init failed")
	}
}

func Flush() {
	sentry.Flush(2 * time.Second)
}

// CaptureError registra falhas de infraestrutura para operadores.
func CaptureError(ctx context.Context, err error, fields logrus.Fields) {
	if err == nil {
		return
	}

	logrus.WithContext(ctx).WithFields(fields).WithError(err).Error("store failure")

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		for k, v := range fields {
			scope.SetExtra(k, v)
		}
	})
	hub.CaptureException(err)
}

// StoreFailure classifica err na fronteira do use case: erros de negócio
// passam intactos, o resto vira StoreError e é registrado.
func StoreFailure(ctx context.Context, err error, fields logrus.Fields) error {
	err = httperr.ErrStore(err)
	if httperr.IsKind(err, httperr.KindStore) {
		CaptureError(ctx, err, fields)
	}
	return err
}
