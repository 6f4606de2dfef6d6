package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"contact-manager/internal/auth"
	"contact-manager/internal/database"
	"contact-manager/internal/logger"
	"contact-manager/internal/models"
	"contact-manager/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,basicemail"`
	Password string `json:"password" binding:"required,strongpassword"`
}

func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		abortWithError(c, http.StatusBadRequest, "name is required")
		return
	}

	ctx := c.Request.Context()
	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Account{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		h.storeError(c, "check account email", err)
		return
	}
	if count > 0 {
		abortWithError(c, http.StatusConflict, "account already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.storeError(c, "hash password", err)
		return
	}

	account := models.Account{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	if err := db.Create(&account).Error; err != nil {
		// гонка двух регистраций: проверку выше прошли обе, индекс пропустил одну
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			abortWithError(c, http.StatusConflict, "account already exists")
			return
		}
		h.storeError(c, "create account", err)
		return
	}

	database.CreateAuditLog(ctx, h.db, h.log, models.EntityAccount,
		strconv.FormatUint(uint64(account.ID), 10), models.ActionCreate, "Account created: "+logger.MaskEmail(account.Email))

	c.JSON(http.StatusCreated, gin.H{"message": "account created successfully"})
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,basicemail"`
	Password string `json:"password" binding:"required"`
}

// SignIn только сверяет пароль: ни сессии, ни токена не выдаём.
func (h *Handler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	var account models.Account
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", req.Email).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortWithError(c, http.StatusNotFound, "account not found")
		return
	}
	if err != nil {
		h.storeError(c, "find account", err)
		return
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		abortWithError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed in successfully"})
}
