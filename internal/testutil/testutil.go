package testutil

import (
	"strings"
	"testing"
	"time"

	"contact-manager/internal/config"
	"contact-manager/internal/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SQLiteConfig строит конфиг на отдельную in-memory SQLite базу для теста.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return &config.Config{
		DBDriver:          config.DriverSQLite,
		DBDSN:             "file:" + name + "?mode=memory&cache=shared",
		DBConnectAttempts: 1,
		DBConnectDelay:    time.Millisecond,
		LogLevel:          "info",
	}
}

// OpenDB открывает базу с миграциями и закрывает её в t.Cleanup.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenDBWithConfig(t, SQLiteConfig(t))
}

func OpenDBWithConfig(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// одно соединение держит in-memory базу живой
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
