package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"size:50;not null" json:"action"`
	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:64" json:"entityId"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}
