package repository

import (
	"context"

	"github.com/barbeariaclassica/agenda-api/internal/db"
	"github.com/barbeariaclassica/agenda-api/internal/models"
)

type AuditFileRepository struct {
	store *db.Store
}

func NewAuditFileRepository(store *db.Store) *AuditFileRepository {
	return &AuditFileRepository{store: store}
}

func (r *AuditFileRepository) Append(ctx context.Context, entry *models.AuditLog) error {
	return r.store.Update(func(d *db.Data) error {
		d.AuditLogs = append(d.AuditLogs, *entry)
		return nil
	})
}

// List retorna os registros mais recentes primeiro, no máximo limit.
func (r *AuditFileRepository) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var out []models.AuditLog
	r.store.View(func(d *db.Data) {
		n := len(d.AuditLogs)
		if limit <= 0 || limit > n {
			limit = n
		}
		out = make([]models.AuditLog, 0, limit)
		for i := n - 1; i >= n-limit; i-- {
			out = append(out, d.AuditLogs[i])
		}
	})
	return out, nil
}
