package client

import (
	"context"

	"github.com/BruksfildServices01/viki/internal/models"
)

type Repository interface {
	FindClientByPhone(
		ctx context.Context,
		phone string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		c *models.Client,
	) error

	UpdateClientName(
		ctx context.Context,
		clientID string,
		fullName string,
	) error

	ListClients(
		ctx context.Context,
		query string,
	) ([]models.Client, error)
}
