package server

import (
	"net/http"

	"contact-manager/internal/config"
	"contact-manager/internal/handlers"
	"contact-manager/internal/middleware"
	"contact-manager/internal/validation"

	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	if err := validation.RegisterGin(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	if cfg.MetricsEnabled {
		// вешает middleware и GET /metrics
		p := ginprometheus.NewPrometheus("contacts")
		p.Use(r)
	}

	h := handlers.New(db, log)

	// AUTH
	r.POST("/signup", h.SignUp)
	r.POST("/signin", h.SignIn)

	// CONTACTS
	r.GET("/contacts", h.ListContacts)
	r.POST("/contacts", h.CreateContact)
	r.GET("/contacts/:id", h.GetContact)
	r.PUT("/contacts/:id", h.UpdateContact)
	r.DELETE("/contacts/:id", h.DeleteContact)
	r.GET("/contacts/:id/history", h.ContactHistory)

	// AUDIT
	r.GET("/audit", h.ListAuditLogs)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}
