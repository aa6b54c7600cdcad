package cart

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"

	"pos-terminal/internal/models"
)

// SnapshotStore: sepetin kalıcı kopyası. Her mutasyondan sonra komple
// üzerine yazılır, temizlemede silinir. Son yazan kazanır, birleştirme
// yoktur.
type SnapshotStore interface {
	Save(ctx context.Context, sessionID string, lines []models.CartLine) error
	Load(ctx context.Context, sessionID string) ([]models.CartLine, error)
	Delete(ctx context.Context, sessionID string) error
}

// Cart: bir POS oturumunun satış sepeti. Satırlar ekleme sırasını korur,
// bir ürün için en fazla bir satır bulunur. Toplam hiçbir yerde saklanmaz,
// her okumada satırlardan hesaplanır.
type Cart struct {
	mu        sync.Mutex
	sessionID string
	lines     []models.CartLine
	store     SnapshotStore // nil olabilir (kalıcılık istenmeyen testler)
}

func New(sessionID string, store SnapshotStore) *Cart {
	return &Cart{sessionID: sessionID, store: store}
}

// Restore: oturum açılışında varsa eski anlık görüntüyü yükler.
func (c *Cart) Restore(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	lines, err := c.store.Load(ctx, c.sessionID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.lines = lines
	c.mu.Unlock()
	return nil
}

// AddProduct: aynı ürün sepetteyse miktarını 1 artırır, yoksa miktar 1 ile
// yeni satır ekler. Güncellenen satırı döndürür.
func (c *Cart) AddProduct(ctx context.Context, p models.Product) models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			line := c.lines[i]
			c.persist(ctx)
			return line
		}
	}

	line := models.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Barcode:   p.Barcode,
		Price:     p.Price,
		Unit:      p.Unit,
		Quantity:  1,
	}
	c.lines = append(c.lines, line)
	c.persist(ctx)
	return line
}

// SetQuantity: miktarı verilen değerle değiştirir. Değer pozitif tam sayıya
// çözülemiyorsa ("abc", "0", "-1", boş) satıra DOKUNULMAZ; bozuk bir giriş
// olayı satırı silmesin veya bozmasın diye bilinçli bir korumadır.
func (c *Cart) SetQuantity(ctx context.Context, productID, raw string) bool {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			c.persist(ctx)
			return true
		}
	}
	return false
}

// RemoveItem: satırı tamamen siler; ürün sepette yoksa no-op.
func (c *Cart) RemoveItem(ctx context.Context, productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist(ctx)
			return true
		}
	}
	return false
}

// Clear: sepeti boşaltır ve kalıcı kopyayı siler.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	if c.store != nil {
		if err := c.store.Delete(ctx, c.sessionID); err != nil {
			log.Printf("[WARN] Sepet anlık görüntüsü silinemedi (oturum %s): %v", c.sessionID, err)
		}
	}
}

// Lines: satırların kopyası, ekleme sırasıyla.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total: Σ(fiyat × miktar). Her çağrıda yeniden hesaplanır, satırlardan
// sapması mümkün değildir.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// persist: mevcut satırları olduğu gibi yazar. Yazma hatası kasa akışını
// durdurmaz; kalıcı kopya yeniden yükleme dayanıklılığı içindir.
// Çağıran kilidi tutuyor olmalı.
func (c *Cart) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	if err := c.store.Save(ctx, c.sessionID, lines); err != nil {
		log.Printf("[WARN] Sepet anlık görüntüsü yazılamadı (oturum %s): %v", c.sessionID, err)
	}
}
