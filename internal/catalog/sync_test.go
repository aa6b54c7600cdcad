package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"pos-terminal/internal/backend"
	"pos-terminal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister: sayfalı ürün listesi dönen sahte backend.
type fakeLister struct {
	pages [][]backend.RemoteProduct
	err   error
	calls int
}

func (f *fakeLister) ListProducts(_ context.Context, page, _ int) (*backend.ProductPage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &backend.ProductPage{
		Products: f.pages[page-1],
		Page:     page,
		Pages:    len(f.pages),
	}, nil
}

// fakeUpserter: yazılan partileri kaydeder.
type fakeUpserter struct {
	batches [][]models.Product
	stamps  []time.Time
	err     error
}

func (f *fakeUpserter) Upsert(products []models.Product, syncedAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, products)
	f.stamps = append(f.stamps, syncedAt)
	return nil
}

func TestSyncWalksAllPages(t *testing.T) {
	lister := &fakeLister{pages: [][]backend.RemoteProduct{
		{{ID: "p1", Name: "Coca-Cola 330ml", Barcode: "8934567890123", Price: 10000}},
		{{ID: "p2", Name: "Su 500ml", Barcode: "8691234567890", Price: 5000}},
	}}
	store := &fakeUpserter{}
	s := NewSyncer(lister, store)

	n, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, lister.calls)
	require.Len(t, store.batches, 2)
	assert.Equal(t, "p1", store.batches[0][0].ID)
	assert.Equal(t, "p2", store.batches[1][0].ID)

	// Tüm sayfalar aynı senkronizasyon damgasını taşır
	assert.Equal(t, store.stamps[0], store.stamps[1])
}

func TestSyncKeepsBarcodelessProducts(t *testing.T) {
	// Aynı sayfada birden fazla barkodsuz ürün olabilir; hiçbiri elenmez,
	// hepsi offline kopyaya yazılmak üzere iletilir.
	lister := &fakeLister{pages: [][]backend.RemoteProduct{
		{
			{ID: "p10", Name: "Açık Peynir", Price: 25000},
			{ID: "p11", Name: "Açık Zeytin", Price: 18000},
			{ID: "p1", Name: "Coca-Cola 330ml", Barcode: "8934567890123", Price: 10000},
		},
	}}
	store := &fakeUpserter{}
	s := NewSyncer(lister, store)

	n, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, store.batches, 1)

	batch := store.batches[0]
	require.Len(t, batch, 3)
	assert.Equal(t, "", batch[0].Barcode)
	assert.Equal(t, "", batch[1].Barcode)
	assert.Equal(t, "8934567890123", batch[2].Barcode)
}

func TestSyncListerFailureAborts(t *testing.T) {
	lister := &fakeLister{err: errors.New("connection refused")}
	s := NewSyncer(lister, &fakeUpserter{})

	n, err := s.Sync(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sayfa 1")
	assert.Equal(t, 0, n)
}

func TestSyncUpsertFailureAborts(t *testing.T) {
	lister := &fakeLister{pages: [][]backend.RemoteProduct{
		{{ID: "p1", Name: "Coca-Cola 330ml", Barcode: "8934567890123", Price: 10000}},
	}}
	store := &fakeUpserter{err: errors.New("disk full")}
	s := NewSyncer(lister, store)

	n, err := s.Sync(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}
