package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"contact-manager/internal/database"
	"contact-manager/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRequest struct {
	CompanyName    string `json:"companyName"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyAddress string `json:"companyAddress"`
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts := []models.Contact{}
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at asc").
		Find(&contacts).Error; err != nil {
		h.storeError(c, "list contacts", err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// CreateContact сохраняет поля как есть, без проверок.
func (h *Handler) CreateContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	contact := models.Contact{
		CompanyName:    req.CompanyName,
		CompanyEmail:   req.CompanyEmail,
		CompanyPhone:   req.CompanyPhone,
		CompanyAddress: req.CompanyAddress,
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Create(&contact).Error; err != nil {
		h.storeError(c, "create contact", err)
		return
	}

	database.CreateAuditLog(ctx, h.db, h.log, models.EntityContact, contact.ID,
		models.ActionCreate, "Contact created: "+contact.CompanyName)

	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) GetContact(c *gin.Context) {
	contact, ok := h.findContact(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateContact меняет только переданные поля из models.ContactColumns.
func (h *Handler) UpdateContact(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body) == 0 {
		abortWithError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	updates, err := contactUpdates(body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	contact, ok := h.findContact(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res := h.db.WithContext(ctx).Model(contact).Updates(updates)
	if res.Error != nil {
		h.storeError(c, "update contact", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		abortWithError(c, http.StatusNotFound, "contact not found")
		return
	}

	if err := h.db.WithContext(ctx).First(contact, "contact_id = ?", contact.ID).Error; err != nil {
		h.storeError(c, "reload contact", err)
		return
	}

	database.CreateAuditLog(ctx, h.db, h.log, models.EntityContact, contact.ID,
		models.ActionUpdate, fmt.Sprintf("Contact updated: %d field(s)", len(updates)))

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	contact, ok := h.findContact(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res := h.db.WithContext(ctx).Delete(contact)
	if res.Error != nil {
		h.storeError(c, "delete contact", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		abortWithError(c, http.StatusNotFound, "contact not found")
		return
	}

	database.CreateAuditLog(ctx, h.db, h.log, models.EntityContact, contact.ID,
		models.ActionDelete, "Contact deleted: "+contact.CompanyName)

	c.JSON(http.StatusOK, gin.H{
		"message":        "contact deleted successfully",
		"deletedContact": contact,
	})
}

// findContact отвечает 404 сам, если контакта нет или id не похож на UUID.
func (h *Handler) findContact(c *gin.Context) (*models.Contact, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		abortWithError(c, http.StatusNotFound, "contact not found")
		return nil, false
	}

	var contact models.Contact
	err := h.db.WithContext(c.Request.Context()).First(&contact, "contact_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortWithError(c, http.StatusNotFound, "contact not found")
		return nil, false
	}
	if err != nil {
		h.storeError(c, "find contact", err)
		return nil, false
	}
	return &contact, true
}

// contactUpdates переводит JSON-ключи в имена колонок; всё, чего нет в
// списке, отклоняется до построения запроса.
func contactUpdates(body map[string]any) (map[string]any, error) {
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make(map[string]any, len(body))
	for _, k := range keys {
		column, ok := models.ContactColumns[k]
		if !ok {
			return nil, fmt.Errorf("unknown field %q", k)
		}
		value, ok := body[k].(string)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string", k)
		}
		updates[column] = value
	}
	return updates, nil
}
