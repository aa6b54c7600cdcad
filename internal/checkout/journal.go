package checkout

import (
	"fmt"

	"pos-terminal/internal/models"

	"gorm.io/gorm"
)

// GormJournal: satış günlüğünü yerel Postgres'e yazar.
type GormJournal struct {
	db *gorm.DB
}

func NewGormJournal(db *gorm.DB) *GormJournal {
	return &GormJournal{db: db}
}

func (j *GormJournal) Record(rec *models.CheckoutRecord) error {
	if err := j.db.Create(rec).Error; err != nil {
		return fmt.Errorf("satış kaydı yazılamadı: %w", err)
	}
	return nil
}

func (j *GormJournal) Recent(limit int) ([]models.CheckoutRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var recs []models.CheckoutRecord
	if err := j.db.Order("created_at desc").Limit(limit).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("satış kayıtları listelenemedi: %w", err)
	}
	return recs, nil
}
