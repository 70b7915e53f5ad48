package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/viki/internal/models"
)

type Filter struct {
	StylistID string
	Action    string
	Entity    string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Normalize aplica os limites de paginação.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}
}

// List devolve a página pedida (mais recentes primeiro) e o total filtrado.
// Sempre restrito ao estilista.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("stylist_id = ?", f.StylistID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
