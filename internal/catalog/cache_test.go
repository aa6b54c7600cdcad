package catalog

import (
	"context"
	"errors"
	"testing"

	"pos-terminal/internal/backend"
	"pos-terminal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote: çağrı sayan sahte backend.
type fakeRemote struct {
	products map[string]models.Product
	err      error
	calls    int
}

func (f *fakeRemote) LookupProductByBarcode(_ context.Context, barcode string) (*models.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.products[barcode]; ok {
		return &p, nil
	}
	return nil, backend.ErrNotFound
}

type fakeOffline struct {
	products map[string]models.Product
	calls    int
}

func (f *fakeOffline) FindByBarcode(barcode string) (*models.Product, error) {
	f.calls++
	if p, ok := f.products[barcode]; ok {
		return &p, nil
	}
	return nil, ErrNotFound
}

var cola = models.Product{ID: "p1", Name: "Coca-Cola 330ml", Barcode: "8934567890123", Price: 10000}

func TestResolveCachesSuccess(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{products: map[string]models.Product{cola.Barcode: cola}}
	c := NewCache(remote, nil)

	p, err := c.Resolve(ctx, cola.Barcode)
	require.NoError(t, err)
	assert.Equal(t, "Coca-Cola 330ml", p.Name)
	assert.Equal(t, 1, remote.calls)

	// İkinci çözümleme ağa çıkmaz
	p, err = c.Resolve(ctx, cola.Barcode)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 1, remote.calls)
	assert.True(t, c.Cached(cola.Barcode))
}

func TestResolveNotFoundNotCached(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{products: map[string]models.Product{}}
	c := NewCache(remote, nil)

	_, err := c.Resolve(ctx, "0000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, c.Cached("0000000000000"))

	// Bulunamayan kod her denemede tekrar sorulur: önbellek zehirlenmedi,
	// ürün bu arada backend'e eklenmiş olabilir.
	remote.products["0000000000000"] = cola
	p, err := c.Resolve(ctx, "0000000000000")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 2, remote.calls)
}

func TestResolveTransientFailureNotCached(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{err: errors.New("connection refused")}
	c := NewCache(remote, nil)

	_, err := c.Resolve(ctx, cola.Barcode)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, c.Cached(cola.Barcode))

	// Backend düzelince aynı kod tekrar denenir ve bu kez tutar
	remote.err = nil
	remote.products = map[string]models.Product{cola.Barcode: cola}
	p, err := c.Resolve(ctx, cola.Barcode)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestResolveOfflineFallback(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{err: errors.New("connection refused")}
	offline := &fakeOffline{products: map[string]models.Product{cola.Barcode: cola}}
	c := NewCache(remote, offline)

	p, err := c.Resolve(ctx, cola.Barcode)
	require.NoError(t, err)
	assert.Equal(t, "Coca-Cola 330ml", p.Name)
	assert.Equal(t, 1, offline.calls)

	// Offline sonuç önbelleğe alınmaz: backend ayağa kalkınca güncel
	// kayıt tekrar sorulmalı.
	assert.False(t, c.Cached(cola.Barcode))
	_, _ = c.Resolve(ctx, cola.Barcode)
	assert.Equal(t, 2, remote.calls)
}

func TestResolveNotFoundSkipsOffline(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{products: map[string]models.Product{}}
	offline := &fakeOffline{products: map[string]models.Product{cola.Barcode: cola}}
	c := NewCache(remote, offline)

	// Backend "yok" dediyse offline kopyaya düşülmez; kopya bayat olabilir.
	_, err := c.Resolve(ctx, cola.Barcode)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, offline.calls)
}
