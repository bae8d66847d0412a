package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/artfolio/artfolio/pkg/config"
	"github.com/artfolio/artfolio/pkg/domain/bookmark"
	"github.com/artfolio/artfolio/pkg/domain/comment"
	"github.com/artfolio/artfolio/pkg/domain/follow"
	"github.com/artfolio/artfolio/pkg/domain/thread"
	"github.com/artfolio/artfolio/pkg/domain/user"
	"github.com/artfolio/artfolio/pkg/domain/work"
)

type DB struct {
	DB *gorm.DB
}

func NewDB(cfg *config.DatabaseConfig) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&thread.Thread{},
		&work.Work{},
		&work.WorkThread{},
		&comment.Comment{},
		&bookmark.Bookmark{},
		&follow.Follow{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{DB: db}, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
