package backend

// Backend cevapları {data, message, status} zarfı içinde döner.

type PaymentMethod struct {
	ID        string  `json:"id"` // cash, card, transfer, momo
	Name      string  `json:"name"`
	Active    bool    `json:"active"`
	MinAmount float64 `json:"min_amount"`
	MaxAmount float64 `json:"max_amount,omitempty"`
	Type      string  `json:"type,omitempty"` // online / offline
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CreateOrderRequest struct {
	Items         []OrderItem `json:"items"`
	PaymentMethod string      `json:"payment_method"`
	Notes         string      `json:"notes,omitempty"`
	CreatedBy     string      `json:"created_by,omitempty"`
}

type Order struct {
	OrderNumber   string  `json:"order_number"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	PaymentStatus string  `json:"payment_status"`
	Status        string  `json:"status"`
}

type PaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

type Payment struct {
	OrderNumber string  `json:"order_number"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Status      string  `json:"status"` // pending, completed, failed
	Reference   string  `json:"reference,omitempty"`
}

type ProductPage struct {
	Products []RemoteProduct `json:"products"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	Pages    int             `json:"pages"`
}

type RemoteProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Barcode       string  `json:"barcode,omitempty"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    string  `json:"category_id,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
}
