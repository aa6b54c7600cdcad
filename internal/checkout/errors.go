package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart: boş sepetle ödeme denendi; hiçbir ağ çağrısı yapılmadı.
	ErrEmptyCart = errors.New("sepet boş")
	// ErrUnknownMethod: seçilen ödeme yöntemi backend listesinde yok veya pasif.
	ErrUnknownMethod = errors.New("ödeme yöntemi tanınmıyor")
)

// BelowMinimumError: sepet toplamı yöntemin alt sınırının altında.
// CreateOrder çağrılmadan iptal edilir.
type BelowMinimumError struct {
	Method  string
	Minimum float64
	Total   float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("tutar çok düşük: %s için en az %.2f gerekli (sepet %.2f)", e.Method, e.Minimum, e.Total)
}

// PaymentError: sipariş backend'de OLUŞTU ama ödeme başarısız. Sepet
// bilinçli olarak temizlenmez; operatör aynı siparişe karşı ödemeyi
// tekrar deneyebilsin diye.
type PaymentError struct {
	OrderNumber string
	Err         error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("ödeme başarısız (sipariş %s): %v", e.OrderNumber, e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }
