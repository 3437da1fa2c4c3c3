// file: models/audit_log.go
package models

import (
	"time"
)

type AuditLog struct {
	ID         uint64 `gorm:"primarykey"`
	EventKind  string `gorm:"size:50;not null;index"`
	EntityKind string `gorm:"size:50;not null"`
	EntityID   uint64 `gorm:"not null;index"`
	ActorID    uint32 `gorm:"not null"`
	PrevState  string `gorm:"type:text"`
	NewState   string `gorm:"type:text"`
	CreatedAt  time.Time
}

func (AuditLog) TableName() string {
	return "innohub_audit_log"
}
