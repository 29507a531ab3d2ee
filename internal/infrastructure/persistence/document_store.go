package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexera/storefront/internal/domain/store"
)

const (
	docOrders = "orders"
	docConfig = "config"
)

// documentRecord is one named JSON document. The whole order history lives
// in a single row, written wholesale on every change.
type documentRecord struct {
	Name      string `gorm:"primaryKey;size:50"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (documentRecord) TableName() string {
	return "documents"
}

// DocumentStore persists orders and runtime configuration as named JSON
// documents. A corrupt document degrades to its empty value with a log
// entry instead of failing the caller.
type DocumentStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDocumentStore creates the store.
func NewDocumentStore(db *gorm.DB, logger *zap.Logger) *DocumentStore {
	return &DocumentStore{db: db, logger: logger}
}

func (s *DocumentStore) read(ctx context.Context, name string) (string, bool, error) {
	var record documentRecord
	err := s.db.WithContext(ctx).First(&record, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return record.Payload, true, nil
}

func (s *DocumentStore) write(ctx context.Context, name, payload string) error {
	record := documentRecord{Name: name, Payload: payload, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
}

// LoadOrders restores the persisted order history.
func (s *DocumentStore) LoadOrders(ctx context.Context) ([]*store.Order, error) {
	payload, found, err := s.read(ctx, docOrders)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*store.Order{}, nil
	}

	var docs []store.OrderDocument
	if err := json.Unmarshal([]byte(payload), &docs); err != nil {
		s.logger.Warn("corrupt order history document, starting empty", zap.Error(err))
		return []*store.Order{}, nil
	}
	return store.DocumentsToOrders(docs), nil
}

// SaveOrders writes the full order history.
func (s *DocumentStore) SaveOrders(ctx context.Context, orders []*store.Order) error {
	payload, err := json.Marshal(store.OrdersToDocuments(orders))
	if err != nil {
		return err
	}
	return s.write(ctx, docOrders, string(payload))
}

// LoadConfig restores the persisted runtime configuration.
func (s *DocumentStore) LoadConfig(ctx context.Context) (store.AppConfig, error) {
	payload, found, err := s.read(ctx, docConfig)
	if err != nil {
		return store.AppConfig{}, err
	}
	if !found {
		return store.AppConfig{}, nil
	}

	var cfg store.AppConfig
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		s.logger.Warn("corrupt config document, using defaults", zap.Error(err))
		return store.AppConfig{}, nil
	}
	return cfg, nil
}

// SaveConfig writes the runtime configuration.
func (s *DocumentStore) SaveConfig(ctx context.Context, cfg store.AppConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.write(ctx, docConfig, string(payload))
}
