package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact описывает карточку компании. Не привязана к аккаунту, видна всем.
type Contact struct {
	ID string `gorm:"column:contact_id;primaryKey;size:36" json:"contact_id"`

	CompanyName    string `gorm:"size:255" json:"companyName"`
	CompanyEmail   string `gorm:"size:255" json:"companyEmail"`
	CompanyPhone   string `gorm:"size:50" json:"companyPhone"`
	CompanyAddress string `gorm:"type:text" json:"companyAddress"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ContactColumns перечисляет единственные поля, которые можно менять через частичное
// обновление: JSON-имя → колонка.
var ContactColumns = map[string]string{
	"companyName":    "company_name",
	"companyEmail":   "company_email",
	"companyPhone":   "company_phone",
	"companyAddress": "company_address",
}
