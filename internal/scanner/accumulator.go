package scanner

import (
	"strings"
	"time"
)

type accumulatorState int

const (
	stateIdle accumulatorState = iota
	stateAccumulating
)

// Accumulator: klavye taklidi yapan barkod okuyucunun tuş akışını tek bir
// koda dönüştürür. Okuyucu tuşları makine hızında (< gap) art arda basar;
// aradaki boşluk eşiği aşarsa biriken tampon insan girişi sayılır ve
// sıfırlanır. Idle → Accumulating → Idle şeklinde iki durumlu bir makinedir.
//
// Eş zamanlı kullanım için güvenli değildir; her POS oturumu kendi
// Accumulator'ını taşır.
type Accumulator struct {
	gap     time.Duration
	state   accumulatorState
	buf     strings.Builder
	lastKey time.Time
}

func NewAccumulator(gap time.Duration) *Accumulator {
	return &Accumulator{gap: gap, state: stateIdle}
}

// Feed: tek bir tuş olayını işler. "Enter" tamponu teslim eder; dönen
// ikinci değer true ise code ham birikimdir ve Normalize'dan geçirilmeden
// kullanılmamalıdır. Boş tamponla gelen Enter hiçbir şey üretmez.
// Enter dışındaki tuşlardan sadece [0-9A-Za-z] tampona eklenir,
// küçük harfler büyütülür.
func (a *Accumulator) Feed(key string, at time.Time) (code string, submitted bool) {
	// Eşik aşıldıysa birikim bayatlamıştır, baştan başla.
	if a.state == stateAccumulating && at.Sub(a.lastKey) > a.gap {
		a.reset()
	}
	a.lastKey = at

	if key == "Enter" {
		if a.state == stateIdle || a.buf.Len() == 0 {
			return "", false
		}
		code = a.buf.String()
		a.reset()
		return code, true
	}

	if len(key) == 1 && isScanChar(key[0]) {
		a.buf.WriteString(strings.ToUpper(key))
		a.state = stateAccumulating
	}
	return "", false
}

// Reset: oturum odağı başka bir alana geçtiğinde tamponu elle temizlemek için.
func (a *Accumulator) Reset() {
	a.reset()
}

func (a *Accumulator) reset() {
	a.buf.Reset()
	a.state = stateIdle
}

func isScanChar(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
