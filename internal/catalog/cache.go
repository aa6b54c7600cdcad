package catalog

import (
	"context"
	"errors"
	"sync"

	"pos-terminal/internal/backend"
	"pos-terminal/internal/models"
)

// ErrNotFound: barkoda karşılık gelen ürün ne backend'de ne de offline
// kopyada var.
var ErrNotFound = errors.New("ürün bulunamadı")

// Remote: backend'in barkod arama yüzü. Testlerde sahtesi kullanılır.
type Remote interface {
	LookupProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
}

// OfflineLookup: ağ hatasında düşülen yerel arama yüzü.
type OfflineLookup interface {
	FindByBarcode(barcode string) (*models.Product, error)
}

// Cache: barkod → ürün önbelleği. Aynı barkod için oturum boyunca en fazla
// bir başarılı ağ çağrısı yapılır. Süre aşımı/temizleme yoktur; kanonik
// durum backend'de olduğu için bayatlama bilinçli olarak kabul edilir.
//
// Aynı barkodun eş zamanlı iki ıska araması iki ayrı backend çağrısı
// üretebilir (idempotent GET, son yazan kazanır); tekilleştirme bilerek
// yapılmaz.
type Cache struct {
	mu      sync.RWMutex
	byCode  map[string]models.Product
	remote  Remote
	offline OfflineLookup // nil olabilir
}

func NewCache(remote Remote, offline OfflineLookup) *Cache {
	return &Cache{
		byCode:  make(map[string]models.Product),
		remote:  remote,
		offline: offline,
	}
}

// Resolve: barkodu ürüne çözer. Önbellek ıskalarsa backend'e gider;
// backend'e ulaşılamazsa offline kopyaya düşer. Başarısız aramalar
// önbelleğe YAZILMAZ, geçici bir hata aynı kodun sonraki okutmalarını
// zehirlemez.
func (c *Cache) Resolve(ctx context.Context, barcode string) (*models.Product, error) {
	c.mu.RLock()
	if p, ok := c.byCode[barcode]; ok {
		c.mu.RUnlock()
		return &p, nil
	}
	c.mu.RUnlock()

	p, err := c.remote.LookupProductByBarcode(ctx, barcode)
	if err == nil {
		c.mu.Lock()
		c.byCode[barcode] = *p
		c.mu.Unlock()
		return p, nil
	}

	if errors.Is(err, backend.ErrNotFound) {
		return nil, ErrNotFound
	}

	// Ağ hatası: offline kopyayı dene. Offline sonuç önbelleğe alınmaz ki
	// backend ayağa kalkınca güncel kayıt tekrar sorulabilsin.
	if c.offline != nil {
		if op, offErr := c.offline.FindByBarcode(barcode); offErr == nil {
			return op, nil
		}
	}

	return nil, ErrNotFound
}

// Cached: test ve teşhis için; verilen barkod önbellekte mi?
func (c *Cache) Cached(barcode string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.byCode[barcode]
	return ok
}
