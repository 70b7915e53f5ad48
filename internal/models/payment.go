package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment é append-only; quando existe, é o livro-caixa oficial.
type Payment struct {
	ID            string  `gorm:"primaryKey;size:36" json:"id"`
	AmountCents   *int64  `json:"amount_cents"`
	Method        *string `gorm:"size:50" json:"method"`
	AppointmentID *string `gorm:"size:36;index" json:"appointment_id"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
