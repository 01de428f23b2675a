package snapshot

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/htoohtoo/storefront/pkg/database"
)

// snapshotRow is the single key-value table behind the database driver.
type snapshotRow struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "identity_snapshots" }

type dbDriver struct {
	db *gorm.DB
}

func newDBDriver() (*dbDriver, error) {
	if database.DB == nil {
		return nil, errors.New("snapshot: database not connected")
	}
	if err := database.DB.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, err
	}
	return &dbDriver{db: database.DB}, nil
}

func (d *dbDriver) put(key, value string) error {
	row := snapshotRow{Key: key, Value: value, UpdatedAt: time.Now()}
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (d *dbDriver) get(key string) (string, bool, error) {
	var row snapshotRow
	err := d.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

func (d *dbDriver) del(key string) error {
	return d.db.Delete(&snapshotRow{}, "key = ?", key).Error
}
