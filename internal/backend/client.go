package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pos-terminal/internal/config"
	"pos-terminal/internal/models"
)

var (
	// ErrNotFound: aranan kayıt backend'de yok (404). Ağ hatası değildir,
	// offline fallback denenmez.
	ErrNotFound = errors.New("kayıt backend'de bulunamadı")
	// ErrDeclined: backend ödemeyi reddetti.
	ErrDeclined = errors.New("ödeme reddedildi")
)

// Client: Mağaza backend API'sine giden HTTP istemcisi. Terminal kendi
// başına sipariş/ödeme tutmaz, kanonik durum her zaman backend'dedir.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BackendBaseURL, "/"),
		token:   cfg.BackendToken,
		http: &http.Client{
			Timeout: cfg.BackendTimeout,
		},
	}
}

// envelope: backend'in standart {data, message, status} cevabı.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("istek gövdesi oluşturulamadı: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("HTTP isteği oluşturulamadı: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend isteği başarısız: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			return fmt.Errorf("backend hatası (%d): %s", resp.StatusCode, env.Message)
		}
		return fmt.Errorf("backend hatası: HTTP %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cevap okunamadı: %w", err)
	}

	// Zarfı dene, zarf değilse gövdeyi doğrudan çöz.
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}

// LookupProductByBarcode: barkod → ürün. 404 → ErrNotFound.
func (c *Client) LookupProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	var rp RemoteProduct
	path := "/products/barcode/" + url.PathEscape(barcode)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &rp); err != nil {
		return nil, err
	}
	if rp.ID == "" {
		return nil, ErrNotFound
	}
	p := rp.toProduct()
	return &p, nil
}

func (c *Client) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	if err := c.doJSON(ctx, http.MethodGet, "/payment/methods?active_only=true", nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var order Order
	if err := c.doJSON(ctx, http.MethodPost, "/orders/", req, &order); err != nil {
		return nil, err
	}
	if order.OrderNumber == "" {
		return nil, fmt.Errorf("backend sipariş numarası döndürmedi")
	}
	return &order, nil
}

func (c *Client) ProcessPayment(ctx context.Context, orderNumber string, req PaymentRequest) (*Payment, error) {
	var payment Payment
	path := "/payment/order/" + url.PathEscape(orderNumber) + "/process"
	if err := c.doJSON(ctx, http.MethodPost, path, req, &payment); err != nil {
		return nil, err
	}
	if payment.Status == "failed" {
		return nil, ErrDeclined
	}
	return &payment, nil
}

// ListProducts: offline senkronizasyon için sayfalı ürün listesi.
func (c *Client) ListProducts(ctx context.Context, page, limit int) (*ProductPage, error) {
	var pp ProductPage
	path := "/products?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &pp); err != nil {
		return nil, err
	}
	return &pp, nil
}

func (rp RemoteProduct) toProduct() models.Product {
	return models.Product{
		ID:            rp.ID,
		Name:          rp.Name,
		Barcode:       rp.Barcode,
		Price:         rp.Price,
		Unit:          rp.Unit,
		StockQuantity: rp.StockQuantity,
		CategoryID:    rp.CategoryID,
		ImageURL:      rp.ImageURL,
	}
}
