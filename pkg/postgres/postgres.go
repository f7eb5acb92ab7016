package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
}

func (cfg Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.Username, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// Connect opens the pool and keeps pinging it until ctx is done.
func Connect(ctx context.Context, cfg Config, log *logrus.Entry) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed ping postgres - %w", err)
	}

	log.Infof("connection to %s:%s/%s opened", cfg.Host, cfg.Port, cfg.DBName)

	go func() {
		ticker := time.NewTicker(time.Second * 10)
		defer ticker.Stop()

		failed := false
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := sqlDB.PingContext(ctx); err != nil {
					if !failed {
						log.Errorf("postgres ping failed - %v", err)
					}
					failed = true
					continue
				}
				if failed {
					log.Infof("postgres ping restored")
				}
				failed = false
			}
		}
	}()

	return db, nil
}
