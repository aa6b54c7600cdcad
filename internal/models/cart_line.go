package models

// Product: Kasanın çalıştığı ürün görünümü. Kanonik kayıt backend'dedir,
// sepet sadece bir kopyasını taşır ve asla geri yazmaz.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Barcode       string  `json:"barcode,omitempty"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    string  `json:"category_id,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
}

// CartLine: Sepetteki tek satır. Ürün bilgisi eklenme anındaki kopyadır.
// Aynı ürün iki kez okutulursa yeni satır açılmaz, quantity artar.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Barcode   string  `json:"barcode,omitempty"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit,omitempty"`
	Quantity  int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
