package handlers

import (
	"net/http"

	"contact-manager/internal/models"

	"github.com/gin-gonic/gin"
)

const auditListLimit = 200

func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs := []models.AuditLog{}
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at desc, id desc").
		Limit(auditListLimit).
		Find(&logs).Error; err != nil {
		h.storeError(c, "list audit logs", err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// ContactHistory отдаёт журнал изменений одного контакта, от старых к новым.
func (h *Handler) ContactHistory(c *gin.Context) {
	contact, ok := h.findContact(c)
	if !ok {
		return
	}

	logs := []models.AuditLog{}
	if err := h.db.WithContext(c.Request.Context()).
		Where("entity = ? AND entity_id = ?", models.EntityContact, contact.ID).
		Order("created_at asc, id asc").
		Find(&logs).Error; err != nil {
		h.storeError(c, "contact history", err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
