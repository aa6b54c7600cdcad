package pos

import (
	"context"
	"sync"
	"time"

	"pos-terminal/internal/cart"
	"pos-terminal/internal/catalog"
	"pos-terminal/internal/scanner"

	"github.com/google/uuid"
)

// Session: bir kasiyer ekranının sahip olduğu durum: sepet, ürün önbelleği
// ve barkod tuş biriktiricisi. Ekran açılırken oluşturulur, kapanırken
// atılır; ekranlar arası gizli paylaşım yoktur. Önbellek oturumla birlikte
// ölür, sepetin kalıcı kopyası oturum kimliğiyle Redis'te yaşamaya devam
// eder.
type Session struct {
	ID        string
	CreatedAt time.Time
	Cart      *cart.Cart
	Cache     *catalog.Cache

	mu  sync.Mutex // biriktirici tek yazarlıdır
	acc *scanner.Accumulator
}

// KeyEvent: cihazdan gelen tek tuş olayı. Zaman damgası cihaz tarafında
// alınır; ağ gecikmesi tuş aralığı ölçümünü bozmasın diye.
type KeyEvent struct {
	Key    string `json:"key"`
	TimeMs int64  `json:"ts_ms"`
}

// FeedKeys: tuş olaylarını biriktiriciden geçirir, teslim edilen ham
// kodları sırasıyla döndürür.
func (s *Session) FeedKeys(events []KeyEvent) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var codes []string
	for _, ev := range events {
		if code, ok := s.acc.Feed(ev.Key, time.UnixMilli(ev.TimeMs)); ok {
			codes = append(codes, code)
		}
	}
	return codes
}

// Registry: açık oturumların kaydı. Oturum nesneleri bağımlılıklarını
// buradan alır (kurucu enjeksiyonu); global modül durumu yoktur.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	remote    catalog.Remote
	offline   catalog.OfflineLookup
	snapshots cart.SnapshotStore
	keyGap    time.Duration
}

func NewRegistry(remote catalog.Remote, offline catalog.OfflineLookup, snapshots cart.SnapshotStore, keyGap time.Duration) *Registry {
	return &Registry{
		sessions:  make(map[string]*Session),
		remote:    remote,
		offline:   offline,
		snapshots: snapshots,
		keyGap:    keyGap,
	}
}

// Open: yeni oturum açar; aynı kimlikle daha önce yazılmış bir sepet
// anlık görüntüsü varsa Resume ile devralınır.
func (r *Registry) Open(ctx context.Context) (*Session, error) {
	return r.open(ctx, uuid.NewString())
}

// Resume: bilinen bir oturum kimliğini yeniden açar (sayfa yenilemesi).
// Kayıtlı anlık görüntü varsa sepet ondan doldurulur.
func (r *Registry) Resume(ctx context.Context, sessionID string) (*Session, error) {
	r.mu.RLock()
	if s, ok := r.sessions[sessionID]; ok {
		r.mu.RUnlock()
		return s, nil
	}
	r.mu.RUnlock()
	return r.open(ctx, sessionID)
}

func (r *Registry) open(ctx context.Context, id string) (*Session, error) {
	crt := cart.New(id, r.snapshots)
	if err := crt.Restore(ctx); err != nil {
		return nil, err
	}

	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		Cart:      crt,
		Cache:     catalog.NewCache(r.remote, r.offline),
		acc:       scanner.NewAccumulator(r.keyGap),
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return s, nil
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Close: oturumu kayıttan düşürür. Sepet anlık görüntüsüne dokunulmaz;
// yarım kalan satış aynı kimlikle Resume edilirse geri gelir.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}
