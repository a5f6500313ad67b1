// Package settings provides database operations for key/value settings.
// The catalog import records its provenance here.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	err := repo.RecordImport("catalog.json", 40)
//	info, err := repo.ImportInfo()
package settings

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// GetSetting retrieves a setting by key.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetValue returns the value of a setting, or "" when it is not set.
func (r *Repository) GetValue(key string) (string, error) {
	setting, err := r.GetSetting(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// SetSetting creates or updates a setting.
func (r *Repository) SetSetting(key, value string) error {
	var setting entities.Setting
	result := r.db.Where("key = ?", key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = value
	return r.db.Save(&setting).Error
}

// DeleteSetting removes a setting by key.
func (r *Repository) DeleteSetting(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}

// ImportInfo describes the last catalog import.
type ImportInfo struct {
	Source     string    `json:"source"`
	ImportedAt time.Time `json:"imported_at"`
	BookCount  int       `json:"book_count"`
}

// RecordImport stores the provenance of the catalog that was just saved.
func (r *Repository) RecordImport(source string, bookCount int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &Repository{db: tx, now: r.now}
		if err := txRepo.SetSetting(entities.SettingKeyCatalogSource, source); err != nil {
			return err
		}
		if err := txRepo.SetSetting(entities.SettingKeyCatalogImportedAt, r.now().UTC().Format(time.RFC3339)); err != nil {
			return err
		}
		return txRepo.SetSetting(entities.SettingKeyCatalogBookCount, strconv.Itoa(bookCount))
	})
}

// ImportInfo returns the last recorded import, or nil if the catalog was never imported.
func (r *Repository) ImportInfo() (*ImportInfo, error) {
	source, err := r.GetValue(entities.SettingKeyCatalogSource)
	if err != nil {
		return nil, err
	}
	if source == "" {
		return nil, nil
	}

	info := &ImportInfo{Source: source}

	if raw, err := r.GetValue(entities.SettingKeyCatalogImportedAt); err != nil {
		return nil, err
	} else if raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			info.ImportedAt = ts
		}
	}

	if raw, err := r.GetValue(entities.SettingKeyCatalogBookCount); err != nil {
		return nil, err
	} else if raw != "" {
		info.BookCount, _ = strconv.Atoi(raw)
	}

	return info, nil
}
