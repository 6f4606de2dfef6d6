package models

import "time"

const (
	EntityAccount = "account"
	EntityContact = "contact"

	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Entity   string `gorm:"size:50;not null;index:idx_audit_entity" json:"entity"` // "account", "contact"
	EntityID string `gorm:"size:36;index:idx_audit_entity" json:"entityId"`
	Action   string `gorm:"size:50;not null" json:"action"`
	Details  string `gorm:"type:text" json:"details"`
}
