package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/barbeariaclassica/agenda-api/internal/models"
)

// Repository é onde os registros de auditoria ficam gravados.
type Repository interface {
	Append(ctx context.Context, entry *models.AuditLog) error
}

type Logger struct {
	repo Repository
}

func New(repo Repository) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Log(action, entity, entityID string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	}

	return l.repo.Append(context.Background(), &entry)
}
