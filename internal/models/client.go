package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente sem login; o telefone normalizado é a identidade
type Client struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FullName string  `gorm:"size:120;not null" json:"full_name"`
	Phone    string  `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Notes    *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
