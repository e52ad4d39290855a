package slot

import (
	"context"
	"time"

	"mandoob/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotModel maps one slot key to its serialised value.
type snapshotModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements the GORM tabler interface.
func (snapshotModel) TableName() string { return "slot_snapshots" }

// postgresSlot stores snapshots in a key-value table via GORM.
type postgresSlot struct {
	db *gorm.DB
}

// NewPostgresSlot opens the connection and migrates the snapshot table.
func NewPostgresSlot(dsn string) (repository.Slot, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres slot")
	}
	if err := db.AutoMigrate(&snapshotModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate slot table")
	}

	return &postgresSlot{db: db}, nil
}

func (s *postgresSlot) Get(ctx context.Context, key string) (string, error) {
	var row snapshotModel
	if err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrap(err, "failed to read slot key")
	}

	return row.Value, nil
}

func (s *postgresSlot) Set(ctx context.Context, key, value string) error {
	row := snapshotModel{Key: key, Value: value}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return errors.Wrap(err, "failed to write slot key")
	}

	return nil
}

func (s *postgresSlot) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&snapshotModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete slot key")
	}
	if result.RowsAffected == 0 {
		return repository.ErrKeyNotFound
	}

	return nil
}
