package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expedientes_app_go/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyValue is one stored document
type KeyValue struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for KeyValue
func (KeyValue) TableName() string {
	return "key_values"
}

// KeyValueBackend implements storage.Backend on top of the key_values table
type KeyValueBackend struct {
	db *gorm.DB
}

// NewKeyValueBackend migrates the key_values table and returns a backend over it
func NewKeyValueBackend(conn *gorm.DB) (*KeyValueBackend, error) {
	if err := AutoMigrate(conn, &KeyValue{}); err != nil {
		return nil, err
	}
	return &KeyValueBackend{db: conn}, nil
}

func (b *KeyValueBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var kv KeyValue
	err := b.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return kv.Value, nil
}

// Set upserts the value for key
func (b *KeyValueBackend) Set(ctx context.Context, key string, value []byte) error {
	kv := KeyValue{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (b *KeyValueBackend) Remove(ctx context.Context, key string) error {
	if err := b.db.WithContext(ctx).Where("key = ?", key).Delete(&KeyValue{}).Error; err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
