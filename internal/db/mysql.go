package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"learnhub/internal/model"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// NewMySQL opens a GORM handle, applies pool limits and verifies connectivity
// before returning it.
func NewMySQL(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	return gormDB, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Module{},
		&model.Video{},
		&model.Document{},
		&model.Enrollment{},
		&model.Feedback{},
	)
}

// Reset drops all tables, children first so foreign keys do not block the drop.
// Missing tables are logged and skipped.
func Reset(gormDB *gorm.DB) {
	tables := []interface{}{
		&model.Feedback{},
		&model.Enrollment{},
		&model.Document{},
		&model.Video{},
		&model.Module{},
		&model.Course{},
		&model.User{},
	}
	for _, table := range tables {
		if err := gormDB.Migrator().DropTable(table); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}
}
