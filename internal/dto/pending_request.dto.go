package dto

import "time"

// PendingRequestDTO é a linha da fila de pedidos do estilista.
type PendingRequestDTO struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	ClientName  string     `json:"client_name"`
	ClientPhone string     `json:"client_phone"`
	PreferredAt *time.Time `json:"preferred_at"`
	WhenLabel   string     `json:"when_label"`
	Services    []string   `json:"services"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
}
