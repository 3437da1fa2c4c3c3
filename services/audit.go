// file: services/audit.go
package services

import (
	"encoding/json"

	"InnoHub/logger"
	"InnoHub/models"

	"gorm.io/gorm"
)

// AuditRecorder writes one row per domain event. Failures are logged and
// never fail the surrounding request.
type AuditRecorder interface {
	Record(eventKind, entityKind string, entityID uint64, actorID uint32, prevState, newState interface{})
}

type DBAuditRecorder struct {
	db *gorm.DB
}

func NewDBAuditRecorder(db *gorm.DB) *DBAuditRecorder {
	return &DBAuditRecorder{db: db}
}

func (a *DBAuditRecorder) Record(eventKind, entityKind string, entityID uint64, actorID uint32, prevState, newState interface{}) {
	entry := models.AuditLog{
		EventKind:  eventKind,
		EntityKind: entityKind,
		EntityID:   entityID,
		ActorID:    actorID,
		PrevState:  marshalState(prevState),
		NewState:   marshalState(newState),
	}
	if err := a.db.Create(&entry).Error; err != nil {
		logger.Error("Failed to write audit log",
			"event", eventKind, "entity", entityKind, "entity_id", entityID, "error", err)
	}
}

func marshalState(state interface{}) string {
	if state == nil {
		return ""
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return ""
	}
	return string(raw)
}
