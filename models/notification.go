// file: models/notification.go
package models

import (
	"time"
)

type Notification struct {
	ID        uint64 `gorm:"primarykey"`
	UserID    uint32 `gorm:"not null;index"`
	EventKind string `gorm:"size:50;not null"`
	Title     string `gorm:"size:255;not null"`
	Body      string `gorm:"type:text"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

func (Notification) TableName() string {
	return "innohub_notification"
}
