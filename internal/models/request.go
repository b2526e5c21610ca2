// internal/models/request.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Request is an inbound contact-form submission. It is immutable after
// creation; an administrator may only delete it.
type Request struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Phone     string    `json:"phone" gorm:"size:30;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Request) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// NotificationLog records every best-effort notification attempt so that
// silently-absorbed mail failures stay diagnosable.
type NotificationLog struct {
	ID         uuid.UUID          `json:"id" gorm:"type:uuid;primary_key"`
	RequestID  uuid.UUID          `json:"request_id" gorm:"type:uuid;not null;index"`
	Recipients pq.StringArray     `json:"recipients" gorm:"type:text[]"`
	Status     NotificationStatus `json:"status" gorm:"type:varchar(10);not null;index"`
	Error      string             `json:"error,omitempty" gorm:"type:text"`
	CreatedAt  time.Time          `json:"created_at"`
}

func (l *NotificationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
