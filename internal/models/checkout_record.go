package models

import "time"

type CheckoutStatus string

const (
	CheckoutPaid          CheckoutStatus = "paid"
	CheckoutPaymentFailed CheckoutStatus = "payment_failed"
)

// CheckoutRecord: Terminalin yerel satış günlüğü. Sipariş backend'de
// oluştuktan sonra yazılır; ödeme başarısız olsa bile kayıt tutulur
// (sipariş backend'de ödenmemiş olarak durur).
type CheckoutRecord struct {
	ID            uint           `gorm:"primaryKey"`
	OrderNumber   string         `gorm:"size:50;index;not null"`
	SessionID     string         `gorm:"size:50;index;not null"`
	OperatorID    uint           `gorm:"index"`
	PaymentMethod string         `gorm:"size:30;not null"`
	Total         float64        `gorm:"not null"`
	LineCount     int            `gorm:"not null"`
	Status        CheckoutStatus `gorm:"size:20;not null"`
	CreatedAt     time.Time
}
