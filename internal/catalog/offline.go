package catalog

import (
	"errors"
	"time"

	"pos-terminal/internal/models"

	"gorm.io/gorm"
)

// OfflineStore: yerel Postgres'teki ürün kopyası. Backend'e ulaşılamayan
// durumlarda barkod aramaları buradan cevaplanır.
type OfflineStore struct {
	db *gorm.DB
}

func NewOfflineStore(db *gorm.DB) *OfflineStore {
	return &OfflineStore{db: db}
}

func (s *OfflineStore) FindByBarcode(barcode string) (*models.Product, error) {
	var op models.OfflineProduct
	if err := s.db.Where("barcode = ?", barcode).First(&op).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p := models.Product{
		ID:            op.RemoteID,
		Name:          op.Name,
		Price:         op.Price,
		Unit:          op.Unit,
		StockQuantity: op.StockQuantity,
		CategoryID:    op.CategoryID,
		ImageURL:      op.ImageURL,
	}
	if op.Barcode != nil {
		p.Barcode = *op.Barcode
	}
	return &p, nil
}

// offlineRow: ürünü yerel tablo satırına çevirir. Boş barkod NULL olarak
// yazılır; unique index barkodsuz ürünleri birbirine çarptırmaz.
func offlineRow(p models.Product, syncedAt time.Time) models.OfflineProduct {
	row := models.OfflineProduct{
		RemoteID:      p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Unit:          p.Unit,
		StockQuantity: p.StockQuantity,
		CategoryID:    p.CategoryID,
		ImageURL:      p.ImageURL,
		SyncedAt:      syncedAt,
	}
	if p.Barcode != "" {
		b := p.Barcode
		row.Barcode = &b
	}
	return row
}

// Upsert: senkronizasyondan gelen ürünleri remote_id üzerinden yazar.
// Barkodu olmayan ürünler de saklanır, sadece barkodlu olanlar aramada
// bulunur.
func (s *OfflineStore) Upsert(products []models.Product, syncedAt time.Time) error {
	for _, p := range products {
		var existing models.OfflineProduct
		err := s.db.Where("remote_id = ?", p.ID).First(&existing).Error

		row := offlineRow(p, syncedAt)

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.db.Create(&row).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
		if err := s.db.Save(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *OfflineStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.OfflineProduct{}).Count(&n).Error
	return n, err
}
