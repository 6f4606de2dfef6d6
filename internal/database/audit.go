package database

import (
	"context"

	"contact-manager/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateAuditLog пишет запись в журнал аудита. Ошибка только логируется:
// журнал не должен ломать основной запрос.
func CreateAuditLog(ctx context.Context, db *gorm.DB, log *zap.Logger, entity, entityID, action, details string) {
	if db == nil {
		return
	}
	record := models.AuditLog{
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := db.WithContext(ctx).Create(&record).Error; err != nil {
		log.Warn("failed to write audit log",
			zap.String("entity", entity),
			zap.String("entity_id", entityID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
