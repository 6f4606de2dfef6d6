package database

import (
	"fmt"
	"time"

	"contact-manager/internal/auth"
	"contact-manager/internal/config"
	"contact-manager/internal/logger"
	"contact-manager/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open подключается к БД с повторами, прогоняет миграции и создаёт
// seed-аккаунт, если он задан в конфиге.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}
	if cfg.LogLevel == "debug" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	var db *gorm.DB
	for i := 1; i <= cfg.DBConnectAttempts; i++ {
		log.Info("connecting to DB",
			zap.String("driver", cfg.DBDriver),
			zap.Int("attempt", i),
			zap.Int("max_attempts", cfg.DBConnectAttempts),
		)

		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			log.Info("connected to DB")
			break
		}

		log.Warn("failed to connect to DB", zap.Error(err))
		if i < cfg.DBConnectAttempts {
			time.Sleep(cfg.DBConnectDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to db after %d attempts: %w", cfg.DBConnectAttempts, err)
	}

	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := seedAccount(db, cfg, log); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("seed account: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Contact{},
		&models.AuditLog{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialect(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", driver)
}

// аккаунт только из конфига; если уже есть, ничего не делаем
func seedAccount(db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	if cfg.SeedEmail == "" || cfg.SeedPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Account{}).
		Where("email = ?", cfg.SeedEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedPassword)
	if err != nil {
		return err
	}

	name := cfg.SeedName
	if name == "" {
		name = cfg.SeedEmail
	}

	account := models.Account{Name: name, Email: cfg.SeedEmail, Password: hash}
	if err := db.Create(&account).Error; err != nil {
		return err
	}

	log.Info("created seed account", zap.String("email", logger.MaskEmail(account.Email)))
	return nil
}
