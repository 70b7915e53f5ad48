package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/infra/idempotency"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/validators"
)

type SubmitIntakeInput struct {
	StylistID  string
	FullName   string
	Phone      string
	ServiceIDs []string

	// data YYYY-MM-DD e hora HH:MM, ambas opcionais
	Date string
	Time string

	Notes        string
	RequestToken string
}

type IntakeResult struct {
	AppointmentID string `json:"appointment_id"`
	Replayed      bool   `json:"replayed"`
}

// ClientResolver resolve (ou cria) o cliente pelo telefone.
type ClientResolver interface {
	Execute(ctx context.Context, phone, fullName string) (string, error)
}

// SubmitIntake é a entrada única do formulário público: cliente, horário e
// pedido, com request_token opcional para reenvios seguros.
type SubmitIntake struct {
	clients ClientResolver
	create  *CreateRequest
	tokens  idempotency.Store
	loc     *time.Location
}

func NewSubmitIntake(
	clients ClientResolver,
	create *CreateRequest,
	tokens idempotency.Store,
	loc *time.Location,
) *SubmitIntake {
	return &SubmitIntake{
		clients: clients,
		create:  create,
		tokens:  tokens,
		loc:     loc,
	}
}

func (uc *SubmitIntake) Execute(
	ctx context.Context,
	in SubmitIntakeInput,
) (res IntakeResult, err error) {

	// --------------------------------------------------
	// Validação (antes de qualquer escrita)
	// --------------------------------------------------
	if strings.TrimSpace(in.StylistID) == "" {
		return res, httperr.ErrValidation("missing_stylist")
	}
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		len(compactIDs(in.ServiceIDs)) == 0 {
		return res, httperr.ErrValidation("missing_required")
	}
	if !validators.IsPhoneValid(validators.NormalizePhone(in.Phone)) {
		return res, httperr.ErrValidation("invalid_phone")
	}

	preferredAt, err := domain.ResolvePreferredAt(in.Date, in.Time, uc.loc)
	if err != nil {
		return res, err
	}

	// --------------------------------------------------
	// Request token
	// --------------------------------------------------
	token := strings.TrimSpace(in.RequestToken)
	if token != "" && uc.tokens != nil {
		existing, claimed, claimErr := uc.tokens.Claim(ctx, token)
		if claimErr != nil {
			return res, logging.StoreFailure(ctx, claimErr, logrus.Fields{"action": "submit_intake"})
		}
		if !claimed {
			if existing == idempotency.Pending {
				return res, httperr.ErrPolicy("request_in_progress")
			}
			return IntakeResult{AppointmentID: existing, Replayed: true}, nil
		}

		defer func() {
			if err != nil {
				_ = uc.tokens.Release(context.WithoutCancel(ctx), token)
				return
			}
			if cerr := uc.tokens.Complete(context.WithoutCancel(ctx), token, res.AppointmentID); cerr != nil {
				logrus.WithContext(ctx).WithError(cerr).Warn("failed to store intake token")
			}
		}()
	}

	// --------------------------------------------------
	// Cliente + pedido
	// --------------------------------------------------
	clientID, err := uc.clients.Execute(ctx, in.Phone, in.FullName)
	if err != nil {
		return res, err
	}

	ap, err := uc.create.Execute(ctx, CreateRequestInput{
		StylistID:   in.StylistID,
		ClientID:    &clientID,
		ServiceIDs:  in.ServiceIDs,
		PreferredAt: preferredAt,
		Notes:       in.Notes,
	})
	if err != nil {
		return res, err
	}

	res = IntakeResult{AppointmentID: ap.ID}
	return res, nil
}
