package storage

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLStorage implements core.HistoryStorage using a SQL database via GORM
type SQLStorage struct {
	db *gorm.DB
}

// FromSQLite creates a history log backed by a SQLite file
func FromSQLite(path string) (*SQLStorage, error) {
	return FromSQL(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// FromSQL creates a new SQL history log
func FromSQL(dialect gorm.Dialector, opts ...gorm.Option) (*SQLStorage, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&core.HistoryEntry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLStorage{db: db}, nil
}

// Record inserts a new entry
func (s *SQLStorage) Record(entry *core.HistoryEntry) error {
	if err := s.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// Entries retrieves entries in recording order based on provided filters
func (s *SQLStorage) Entries(filters ...core.HistoryFilter) ([]core.HistoryEntry, error) {
	var entries []core.HistoryEntry
	if err := s.db.Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}

	return lo.Filter(entries, func(entry core.HistoryEntry, _ int) bool {
		for _, filter := range filters {
			if !filter(entry) {
				return false
			}
		}
		return true
	}), nil
}

// Close closes the underlying connection pool
func (s *SQLStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
