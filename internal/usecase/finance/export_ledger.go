package finance

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/viki/internal/domain/finance"
	"github.com/BruksfildServices01/viki/internal/logging"
)

// Archiver guarda uma cópia do arquivo exportado.
type Archiver interface {
	Archive(ctx context.Context, filename, contentType string, body []byte) (string, error)
}

type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type ExportLedger struct {
	build    *BuildLedger
	archiver Archiver
	loc      *time.Location
}

func NewExportLedger(
	build *BuildLedger,
	archiver Archiver,
	loc *time.Location,
) *ExportLedger {
	return &ExportLedger{
		build:    build,
		archiver: archiver,
		loc:      loc,
	}
}

// Execute gera o CSV do livro-caixa. Falha no arquivamento só é logada.
func (uc *ExportLedger) Execute(ctx context.Context) (ExportFile, error) {
	ledger, err := uc.build.Execute(ctx)
	if err != nil {
		return ExportFile{}, err
	}

	body, err := domain.ExportCSV(ledger.Entries)
	if err != nil {
		return ExportFile{}, logging.StoreFailure(ctx, err, logrus.Fields{"action": "export_ledger"})
	}

	file := ExportFile{
		Filename:    domain.ExportFilename(uc.build.now().In(uc.loc)),
		ContentType: domain.ExportContentType,
		Body:        body,
	}

	if uc.archiver != nil {
		key, err := uc.archiver.Archive(ctx, file.Filename, file.ContentType, file.Body)
		if err != nil {
			logrus.WithContext(ctx).
				WithError(err).
				WithField("filename", file.Filename).
				Warn("ledger export archive failed")
		} else {
			logrus.WithContext(ctx).
				WithField("key", key).
				WithField("rows", len(ledger.Entries)).
				Info("ledger export archived")
		}
	}

	return file, nil
}
