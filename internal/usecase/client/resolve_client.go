package client

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/viki/internal/domain/client"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/models"
	"github.com/BruksfildServices01/viki/internal/validators"
)

// ResolveClient devolve o cliente do telefone, criando se preciso.
// O telefone normalizado é a única chave de deduplicação.
type ResolveClient struct {
	repo domain.Repository
}

func NewResolveClient(repo domain.Repository) *ResolveClient {
	return &ResolveClient{repo: repo}
}

func (uc *ResolveClient) Execute(
	ctx context.Context,
	phone string,
	fullName string,
) (string, error) {

	phone = validators.NormalizePhone(phone)
	fullName = strings.TrimSpace(fullName)

	if phone == "" {
		return "", httperr.ErrValidation("invalid_phone")
	}
	if fullName == "" {
		return "", httperr.ErrValidation("missing_name")
	}

	fields := logrus.Fields{"action": "resolve_client"}

	existing, err := uc.repo.FindClientByPhone(ctx, phone)
	switch {
	case err == nil:
		return uc.refreshName(ctx, existing, fullName, fields)
	case !httperr.IsKind(err, httperr.KindNotFound):
		return "", logging.StoreFailure(ctx, err, fields)
	}

	c := &models.Client{
		FullName: fullName,
		Phone:    phone,
		Notes:    nil,
	}

	err = uc.repo.CreateClient(ctx, c)
	if err == nil {
		return c.ID, nil
	}
	if !httperr.IsUniqueViolation(err) {
		return "", logging.StoreFailure(ctx, err, fields)
	}

	// outro intake criou o mesmo telefone entre a leitura e o insert
	winner, err := uc.repo.FindClientByPhone(ctx, phone)
	if err != nil {
		return "", logging.StoreFailure(ctx, err, fields)
	}
	return uc.refreshName(ctx, winner, fullName, fields)
}

// last-write-wins no nome
func (uc *ResolveClient) refreshName(
	ctx context.Context,
	c *models.Client,
	fullName string,
	fields logrus.Fields,
) (string, error) {

	if c.FullName == fullName {
		return c.ID, nil
	}

	if err := uc.repo.UpdateClientName(ctx, c.ID, fullName); err != nil {
		return "", logging.StoreFailure(ctx, err, fields)
	}
	return c.ID, nil
}
