package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gap = 50 * time.Millisecond

// feedString: makine hızında (aralık 5ms) tuşları basar.
func feedString(a *Accumulator, s string, start time.Time) time.Time {
	at := start
	for _, r := range s {
		a.Feed(string(r), at)
		at = at.Add(5 * time.Millisecond)
	}
	return at
}

func TestAccumulatorMachineSpeedScan(t *testing.T) {
	a := NewAccumulator(gap)
	at := feedString(a, "8934567890123", time.Now())

	code, ok := a.Feed("Enter", at)
	require.True(t, ok)
	assert.Equal(t, "8934567890123", code)

	// Teslimden sonra tampon boş: ikinci Enter hiçbir şey üretmez.
	_, ok = a.Feed("Enter", at.Add(5*time.Millisecond))
	assert.False(t, ok)
}

func TestAccumulatorGapResetsBuffer(t *testing.T) {
	a := NewAccumulator(gap)
	start := time.Now()
	at := feedString(a, "89345", start)

	// İnsan hızında bir duraklama: birikenler atılır.
	at = at.Add(200 * time.Millisecond)
	at = feedString(a, "67890123456", at)

	code, ok := a.Feed("Enter", at)
	require.True(t, ok)
	assert.Equal(t, "67890123456", code)
}

func TestAccumulatorEmptyEnterNoop(t *testing.T) {
	a := NewAccumulator(gap)
	_, ok := a.Feed("Enter", time.Now())
	assert.False(t, ok)
}

func TestAccumulatorIgnoresNonScanKeys(t *testing.T) {
	a := NewAccumulator(gap)
	at := time.Now()
	a.Feed("Shift", at)
	a.Feed("1", at.Add(5*time.Millisecond))
	a.Feed("Tab", at.Add(10*time.Millisecond))
	a.Feed("2", at.Add(15*time.Millisecond))

	code, ok := a.Feed("Enter", at.Add(20*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, "12", code)
}

func TestAccumulatorUppercases(t *testing.T) {
	a := NewAccumulator(gap)
	at := feedString(a, "abc123", time.Now())

	code, ok := a.Feed("Enter", at)
	require.True(t, ok)
	assert.Equal(t, "ABC123", code)
}

func TestAccumulatorReset(t *testing.T) {
	a := NewAccumulator(gap)
	at := feedString(a, "12345", time.Now())
	a.Reset()

	_, ok := a.Feed("Enter", at)
	assert.False(t, ok)
}

// Biriken kod Enter'dan hemen önce bayatlamışsa da teslim edilmez:
// eşik aşımı Enter işlenmeden önce tamponu temizler.
func TestAccumulatorStaleBufferNotSubmitted(t *testing.T) {
	a := NewAccumulator(gap)
	at := feedString(a, "8934567890123", time.Now())

	_, ok := a.Feed("Enter", at.Add(500*time.Millisecond))
	assert.False(t, ok)
}
