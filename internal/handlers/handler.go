package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler держит общий пул соединений и логгер; состояния между запросами нет.
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// storeError логирует подробности один раз, а клиенту отдаёт только общий текст.
func (h *Handler) storeError(c *gin.Context, op string, err error) {
	h.log.Error("store error",
		zap.String("op", op),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	abortWithError(c, http.StatusInternalServerError, "internal server error")
}
