package client

import (
	"context"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/viki/internal/domain/client"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/models"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

// Execute busca por nome ou telefone; query vazia lista todos.
func (uc *ListClients) Execute(ctx context.Context, query string) ([]models.Client, error) {
	clients, err := uc.repo.ListClients(ctx, query)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, logrus.Fields{"action": "list_clients"})
	}
	return clients, nil
}
