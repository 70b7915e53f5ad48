package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	StylistID string `gorm:"size:64;index;not null" json:"stylist_id"`

	Name  string          `gorm:"size:100;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	// link de checkout hospedado no provedor externo
	PaymentLinkURL *string `gorm:"size:500" json:"payment_link_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *Service) HasPaymentLink() bool {
	return s.PaymentLinkURL != nil && *s.PaymentLinkURL != ""
}
