package catalog

import (
	"context"
	"fmt"
	"time"

	"pos-terminal/internal/backend"
	"pos-terminal/internal/models"
)

const syncPageSize = 200

// Lister: backend'in sayfalı ürün listesi yüzü.
type Lister interface {
	ListProducts(ctx context.Context, page, limit int) (*backend.ProductPage, error)
}

// Upserter: senkronizasyonun yazdığı hedef.
type Upserter interface {
	Upsert(products []models.Product, syncedAt time.Time) error
}

// Syncer: backend'deki ürün kataloğunu sayfa sayfa çekip offline kopyaya
// yazar. Kasiyer vardiyaya başlamadan çalıştırılır; backend kesintisinde
// barkod aramaları bu kopyadan döner.
type Syncer struct {
	lister Lister
	store  Upserter
}

func NewSyncer(lister Lister, store Upserter) *Syncer {
	return &Syncer{lister: lister, store: store}
}

// Sync: tüm sayfaları çeker, yazılan ürün sayısını döndürür. Yarıda kesilen
// senkronizasyon o ana kadar yazılanları geri almaz; bir sonraki çalıştırma
// üzerine yazar.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	syncedAt := time.Now()
	total := 0

	for page := 1; ; page++ {
		pp, err := s.lister.ListProducts(ctx, page, syncPageSize)
		if err != nil {
			return total, fmt.Errorf("ürün listesi alınamadı (sayfa %d): %w", page, err)
		}

		batch := make([]models.Product, 0, len(pp.Products))
		for _, rp := range pp.Products {
			batch = append(batch, models.Product{
				ID:            rp.ID,
				Name:          rp.Name,
				Barcode:       rp.Barcode,
				Price:         rp.Price,
				Unit:          rp.Unit,
				StockQuantity: rp.StockQuantity,
				CategoryID:    rp.CategoryID,
				ImageURL:      rp.ImageURL,
			})
		}

		if err := s.store.Upsert(batch, syncedAt); err != nil {
			return total, fmt.Errorf("offline kopya yazılamadı: %w", err)
		}
		total += len(batch)

		if page >= pp.Pages || len(pp.Products) == 0 {
			break
		}
	}

	return total, nil
}
