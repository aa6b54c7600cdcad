package models

import "time"

// OfflineProduct: Backend'den senkronize edilen yerel ürün kopyası.
// Backend'e ulaşılamadığında barkod aramaları bu tablodan cevaplanır.
type OfflineProduct struct {
	ID       uint   `gorm:"primaryKey"`
	RemoteID string `gorm:"size:50;uniqueIndex;not null"` // Backend'deki ürün ID'si
	Name     string `gorm:"size:200;not null"`
	// Barkod opsiyoneldir; barkodsuz ürünler NULL yazılır ki unique index
	// boş string'leri birbirine çarptırmasın.
	Barcode       *string `gorm:"size:50;uniqueIndex"`
	Price         float64 `gorm:"not null"`
	Unit          string  `gorm:"size:20;not null"` // adet, kg, koli vs.
	StockQuantity int     `gorm:"not null;default:0"`
	CategoryID    string  `gorm:"size:50;index"`
	ImageURL      string  `gorm:"size:500"`
	SyncedAt      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
