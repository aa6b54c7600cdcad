package cart

import (
	"context"
	"testing"

	"pos-terminal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore: anlık görüntüleri bellekte tutan SnapshotStore.
type fakeStore struct {
	snapshots map[string][]models.CartLine
	saves     int
	deletes   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{snapshots: make(map[string][]models.CartLine)}
}

func (f *fakeStore) Save(_ context.Context, sessionID string, lines []models.CartLine) error {
	f.saves++
	f.snapshots[sessionID] = lines
	return nil
}

func (f *fakeStore) Load(_ context.Context, sessionID string) ([]models.CartLine, error) {
	return f.snapshots[sessionID], nil
}

func (f *fakeStore) Delete(_ context.Context, sessionID string) error {
	f.deletes++
	delete(f.snapshots, sessionID)
	return nil
}

var cola = models.Product{
	ID:      "p1",
	Name:    "Coca-Cola 330ml",
	Barcode: "8934567890123",
	Price:   10000,
	Unit:    "adet",
}

var su = models.Product{
	ID:    "p2",
	Name:  "Su 500ml",
	Price: 5000,
	Unit:  "adet",
}

func TestAddProductMergesByID(t *testing.T) {
	ctx := context.Background()
	c := New("s1", nil)

	line := c.AddProduct(ctx, cola)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 10000.0, c.Total())

	line = c.AddProduct(ctx, cola)
	assert.Equal(t, 2, line.Quantity)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20000.0, c.Total())
}

func TestAddProductRepeatedK(t *testing.T) {
	ctx := context.Background()
	c := New("s1", nil)

	for i := 0; i < 7; i++ {
		c.AddProduct(ctx, cola)
	}

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	c := New("s1", nil)

	c.AddProduct(ctx, cola)
	c.AddProduct(ctx, su)
	c.AddProduct(ctx, cola) // merge, sırayı değiştirmez

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "p2", lines[1].ProductID)
}

func TestSetQuantityGuards(t *testing.T) {
	ctx := context.Background()
	c := New("s1", nil)
	c.AddProduct(ctx, cola)
	c.AddProduct(ctx, cola)

	// Bozuk girişler satıra dokunmaz
	assert.False(t, c.SetQuantity(ctx, "p1", "-1"))
	assert.False(t, c.SetQuantity(ctx, "p1", "abc"))
	assert.False(t, c.SetQuantity(ctx, "p1", "0"))
	assert.False(t, c.SetQuantity(ctx, "p1", ""))
	assert.Equal(t, 2, c.Lines()[0].Quantity)

	// Geçerli değer aynen yazılır
	assert.True(t, c.SetQuantity(ctx, "p1", "5"))
	assert.Equal(t, 5, c.Lines()[0].Quantity)
	assert.Equal(t, 50000.0, c.Total())

	// Sepette olmayan ürün: no-op
	assert.False(t, c.SetQuantity(ctx, "yok", "3"))
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	c := New("s1", nil)
	c.AddProduct(ctx, cola)
	c.AddProduct(ctx, su)

	assert.True(t, c.RemoveItem(ctx, "p1"))
	assert.False(t, c.RemoveItem(ctx, "p1")) // ikinci silme no-op

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)
	assert.Equal(t, 5000.0, c.Total())
}

func TestTotalRecomputedAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	c := New("s1", nil)

	assert.Equal(t, 0.0, c.Total())
	c.AddProduct(ctx, cola)
	assert.Equal(t, 10000.0, c.Total())
	c.SetQuantity(ctx, "p1", "3")
	assert.Equal(t, 30000.0, c.Total())
	c.RemoveItem(ctx, "p1")
	assert.Equal(t, 0.0, c.Total())
}

func TestPersistenceOnEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := New("s1", store)

	c.AddProduct(ctx, cola)
	c.AddProduct(ctx, cola)
	c.SetQuantity(ctx, "p1", "4")
	assert.Equal(t, 3, store.saves)
	require.Len(t, store.snapshots["s1"], 1)
	assert.Equal(t, 4, store.snapshots["s1"][0].Quantity)

	// Bozuk miktar mutasyon değildir, yazma tetiklemez
	c.SetQuantity(ctx, "p1", "abc")
	assert.Equal(t, 3, store.saves)
}

func TestClearRemovesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := New("s1", store)
	c.AddProduct(ctx, cola)

	c.Clear(ctx)
	assert.True(t, c.Empty())
	assert.Equal(t, 1, store.deletes)
	assert.NotContains(t, store.snapshots, "s1")
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	first := New("s1", store)
	first.AddProduct(ctx, cola)
	first.AddProduct(ctx, cola)

	// Aynı oturum kimliğiyle yeniden yükleme
	second := New("s1", store)
	require.NoError(t, second.Restore(ctx))

	lines := second.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20000.0, second.Total())
}
