package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"contact-manager/internal/testutil"
	"contact-manager/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T, log *zap.Logger) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterGin())

	db := testutil.OpenDB(t)
	h := New(db, log)

	r := gin.New()
	r.POST("/signup", h.SignUp)
	r.POST("/signin", h.SignIn)
	r.GET("/contacts", h.ListContacts)
	r.POST("/contacts", h.CreateContact)
	r.GET("/contacts/:id", h.GetContact)
	r.PUT("/contacts/:id", h.UpdateContact)
	r.DELETE("/contacts/:id", h.DeleteContact)
	r.GET("/contacts/:id/history", h.ContactHistory)
	r.GET("/audit", h.ListAuditLogs)
	return r, db
}

// doJSON: строку шлёт как есть, остальное маршалит в JSON.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}
