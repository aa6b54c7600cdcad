package checkout

import (
	"context"
	"fmt"
	"log"

	"pos-terminal/internal/backend"
	"pos-terminal/internal/cart"
	"pos-terminal/internal/models"
)

// Gateway: orkestratörün backend'den beklediği üç operasyon.
type Gateway interface {
	ListPaymentMethods(ctx context.Context) ([]backend.PaymentMethod, error)
	CreateOrder(ctx context.Context, req backend.CreateOrderRequest) (*backend.Order, error)
	ProcessPayment(ctx context.Context, orderNumber string, req backend.PaymentRequest) (*backend.Payment, error)
}

// Journal: terminalin yerel satış günlüğü.
type Journal interface {
	Record(rec *models.CheckoutRecord) error
}

type Result struct {
	OrderNumber string  `json:"order_number"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
	Method      string  `json:"method"`
}

// Orchestrator: sipariş oluşturma + ödeme alma dizisini yürütür.
// Adımlar sıkı sıralıdır, hiçbir adım atlanmaz, hiçbir yerde otomatik
// tekrar denemesi yoktur; tekrar kararı her zaman operatöründür.
type Orchestrator struct {
	gw      Gateway
	journal Journal // nil olabilir
}

func New(gw Gateway, journal Journal) *Orchestrator {
	return &Orchestrator{gw: gw, journal: journal}
}

// Checkout protokolü:
//  1. Sepet boşsa reddet, ağa çıkma.
//  2. Yöntemin min_amount sınırını çöz; toplam altındaysa iptal, ağa çıkma.
//  3. Siparişi oluştur. Hata bu deneme için sondur; sepete dokunulmaz.
//  4. Sipariş numarasıyla ödemeyi işle.
//  5. Ödeme başarılıysa sepeti (ve anlık görüntüyü) temizle.
//  6. Ödeme başarısızsa sepet TEMİZLENMEZ: sipariş backend'de ödenmemiş
//     duruyor, satırları yeniden girdirmek yerel ve sunucu durumunu
//     birbirinden koparırdı. 3. ve 5. adım arasındaki bu asimetri bilinçli.
func (o *Orchestrator) Checkout(ctx context.Context, crt *cart.Cart, method, sessionID string, operatorID uint) (*Result, error) {
	lines := crt.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	// Toplam, sipariş kalemleriyle aynı anlık görüntüden hesaplanır; araya
	// giren bir okutma ödeme tutarını kalemlerden koparamaz.
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}

	methods, err := o.gw.ListPaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("ödeme yöntemleri alınamadı: %w", err)
	}

	var selected *backend.PaymentMethod
	for i := range methods {
		if methods[i].ID == method && methods[i].Active {
			selected = &methods[i]
			break
		}
	}
	if selected == nil {
		return nil, ErrUnknownMethod
	}
	if total < selected.MinAmount {
		return nil, &BelowMinimumError{Method: selected.ID, Minimum: selected.MinAmount, Total: total}
	}

	items := make([]backend.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, backend.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}

	order, err := o.gw.CreateOrder(ctx, backend.CreateOrderRequest{
		Items:         items,
		PaymentMethod: method,
	})
	if err != nil {
		return nil, fmt.Errorf("sipariş oluşturulamadı: %w", err)
	}

	_, err = o.gw.ProcessPayment(ctx, order.OrderNumber, backend.PaymentRequest{
		Amount: total,
		Method: method,
	})
	if err != nil {
		o.record(order.OrderNumber, sessionID, operatorID, method, total, len(lines), models.CheckoutPaymentFailed)
		return nil, &PaymentError{OrderNumber: order.OrderNumber, Err: err}
	}

	crt.Clear(ctx)
	o.record(order.OrderNumber, sessionID, operatorID, method, total, len(lines), models.CheckoutPaid)

	return &Result{
		OrderNumber: order.OrderNumber,
		Subtotal:    order.Subtotal,
		Tax:         order.Tax,
		Total:       order.Total,
		Method:      method,
	}, nil
}

// record: günlük yazımı en-iyi-çaba; hata kasayı durdurmaz.
func (o *Orchestrator) record(orderNumber, sessionID string, operatorID uint, method string, total float64, lineCount int, status models.CheckoutStatus) {
	if o.journal == nil {
		return
	}
	rec := &models.CheckoutRecord{
		OrderNumber:   orderNumber,
		SessionID:     sessionID,
		OperatorID:    operatorID,
		PaymentMethod: method,
		Total:         total,
		LineCount:     lineCount,
		Status:        status,
	}
	if err := o.journal.Record(rec); err != nil {
		log.Printf("[WARN] Satış günlüğü yazılamadı (sipariş %s): %v", orderNumber, err)
	}
}
