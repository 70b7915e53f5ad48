package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/viki/internal/domain/finance"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/metrics"
)

// BuildLedger usa os pagamentos reais quando existem; senão deriva uma
// linha sintética por atendimento pago. Nunca mistura as duas fontes.
type BuildLedger struct {
	repo  domain.Repository
	now   func() time.Time
	newID func() string
}

func NewBuildLedger(repo domain.Repository) *BuildLedger {
	return &BuildLedger{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (uc *BuildLedger) Execute(ctx context.Context) (domain.Ledger, error) {
	fields := logrus.Fields{"action": "build_ledger"}

	payments, err := uc.repo.ListPayments(ctx)
	if err != nil {
		return domain.Ledger{}, logging.StoreFailure(ctx, err, fields)
	}

	if len(payments) > 0 {
		metrics.RecordLedgerBuild(string(domain.SourcePayments))
		return domain.Ledger{
			Source:  domain.SourcePayments,
			Entries: domain.FromPayments(payments),
		}, nil
	}

	paid, err := uc.repo.ListPaidAppointments(ctx)
	if err != nil {
		return domain.Ledger{}, logging.StoreFailure(ctx, err, fields)
	}

	metrics.RecordLedgerBuild(string(domain.SourceSynthetic))
	return domain.Ledger{
		Source:  domain.SourceSynthetic,
		Entries: domain.Synthesize(paid, uc.now(), uc.newID),
	}, nil
}
