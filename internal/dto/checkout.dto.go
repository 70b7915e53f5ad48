package dto

import "github.com/BruksfildServices01/viki/internal/models"

type CheckoutDTO struct {
	Appointment *models.Appointment `json:"appointment"`
	Services    []models.Service    `json:"services"`
	Selected    []string            `json:"selected"`
	Total       string              `json:"total"`
}
