package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	StylistID string `gorm:"size:64;index;not null" json:"stylist_id"`

	ClientID *string `gorm:"size:36;index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	Status string `gorm:"size:20;index;not null" json:"status"`

	PreferredAt *time.Time `json:"preferred_at"`
	Notes       string     `gorm:"type:text" json:"notes"`
	Paid        bool       `gorm:"not null" json:"paid"`

	Services []AppointmentService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Serviço solicitado no intake (nome congelado no momento do pedido)
type AppointmentService struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	AppointmentID string `gorm:"size:36;index;not null" json:"-"`
	ServiceID     string `gorm:"size:36;not null" json:"service_id"`
	ServiceName   string `gorm:"size:100;not null" json:"service_name"`
	Position      int    `gorm:"not null" json:"position"`
}
