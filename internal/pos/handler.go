package pos

import (
	"context"
	"errors"

	"pos-terminal/internal/catalog"
	"pos-terminal/internal/models"
	"pos-terminal/internal/scanner"

	"github.com/gofiber/fiber/v2"
)

type CartView struct {
	SessionID string            `json:"session_id"`
	Items     []models.CartLine `json:"items"`
	Total     float64           `json:"total"`
}

type ScanRequest struct {
	Code string `json:"code"`
}

type KeysRequest struct {
	Events []KeyEvent `json:"events"`
}

type SetQuantityRequest struct {
	// UI giriş alanından string gelir ("3"); bozuk değerler satıra dokunmaz.
	Quantity string `json:"quantity"`
}

type ClearRequest struct {
	Confirm bool `json:"confirm"`
}

// ScanResult: tek bir okutmanın sonucu. Ok false ise Message ve Signal
// operatöre gösterilecek geri bildirimi taşır.
type ScanResult struct {
	Ok      bool             `json:"ok"`
	Code    string           `json:"code,omitempty"`
	Item    *models.CartLine `json:"item,omitempty"`
	Message string           `json:"message,omitempty"`
	Signal  string           `json:"signal"`
}

func cartView(s *Session) CartView {
	return CartView{
		SessionID: s.ID,
		Items:     s.Cart.Lines(),
		Total:     s.Cart.Total(),
	}
}

func sessionFromParams(reg *Registry, c *fiber.Ctx) (*Session, error) {
	s, ok := reg.Get(c.Params("id"))
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Oturum bulunamadı")
	}
	return s, nil
}

// POST /api/pos/sessions  (opsiyonel body: {"session_id": "..."} ile devam)
func OpenSessionHandler(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			SessionID string `json:"session_id"`
		}
		_ = c.BodyParser(&body) // gövde boş olabilir

		var (
			s   *Session
			err error
		)
		if body.SessionID != "" {
			s, err = reg.Resume(c.Context(), body.SessionID)
		} else {
			s, err = reg.Open(c.Context())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Oturum açılamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(cartView(s))
	}
}

// DELETE /api/pos/sessions/:id
func CloseSessionHandler(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !reg.Close(c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "Oturum bulunamadı")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/pos/sessions/:id/cart
func GetCartHandler(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := sessionFromParams(reg, c)
		if err != nil {
			return err
		}
		return c.JSON(cartView(s))
	}
}

// POST /api/pos/sessions/:id/scan
// Elle girilen veya UI tarafından toplanmış tek bir kodu işler.
func ScanHandler(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := sessionFromParams(reg, c)
		if err != nil {
			return err
		}

		var body ScanRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		res := resolveAndAdd(c.Context(), s, body.Code)
		status := fiber.StatusOK
		if !res.Ok {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{
			"result": res,
			"cart":   cartView(s),
		})
	}
}

// POST /api/pos/sessions/:id/keys
// Barkod cihazının ham tuş olaylarını biriktiriciden geçirir. Bir pakette
// birden fazla teslim olabilir; her biri için ayrı sonuç döner.
func KeysHandler(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := sessionFromParams(reg, c)
		if err != nil {
			return err
		}

		var body KeysRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		results := make([]ScanResult, 0)
		for _, code := range s.FeedKeys(body.Events) {
			results = append(results, resolveAndAdd(c.Context(), s, code))
		}

		return c.JSON(fiber.Map{
			"results": results,
			"cart":    cartView(s),
		})
	}
}

// resolveAndAdd: doğrula → önbellekten çöz → sepete ekle. Geçersiz kod
// için arama yapılmaz; bulunamayan kod önbelleği zehirlemez.
func resolveAndAdd(ctx context.Context, s *Session, raw string) ScanResult {
	code, ok := scanner.Normalize(raw)
	if !ok {
		return ScanResult{Ok: false, Message: "Geçersiz barkod", Signal: SignalBeepError}
	}

	p, err := s.Cache.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return ScanResult{Ok: false, Code: code, Message: "Ürün bulunamadı", Signal: SignalBeepError}
		}
		return ScanResult{Ok: false, Code: code, Message: "Ürün aranırken hata oluştu", Signal: SignalBeepError}
	}

	line := s.Cart.AddProduct(ctx, *p)
	return ScanResult{Ok: true, Code: code, Item: &line, Signal: SignalBeepAdd}
}

// PUT /api/pos/sessions/:id/cart/items/:productId
func SetQuantityHandler(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := sessionFromParams(reg, c)
		if err != nil {
			return err
		}

		var body SetQuantityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		changed := s.Cart.SetQuantity(c.Context(), c.Params("productId"), body.Quantity)
		signal := SignalClick
		if !changed {
			// Bozuk miktar veya sepette olmayan ürün: no-op.
			signal = SignalBeepError
		}
		return c.JSON(fiber.Map{
			"changed": changed,
			"signal":  signal,
			"cart":    cartView(s),
		})
	}
}

// DELETE /api/pos/sessions/:id/cart/items/:productId
func RemoveItemHandler(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := sessionFromParams(reg, c)
		if err != nil {
			return err
		}

		removed := s.Cart.RemoveItem(c.Context(), c.Params("productId"))
		signal := SignalBeepRemove
		if !removed {
			signal = SignalClick
		}
		return c.JSON(fiber.Map{
			"removed": removed,
			"signal":  signal,
			"cart":    cartView(s),
		})
	}
}

// POST /api/pos/sessions/:id/cart/clear
// Dolu sepet için confirm=true istenir; boş sepet onay sormadan geçer.
func ClearCartHandler(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := sessionFromParams(reg, c)
		if err != nil {
			return err
		}

		var body ClearRequest
		_ = c.BodyParser(&body) // gövde boş olabilir

		if !s.Cart.Empty() && !body.Confirm {
			return c.JSON(fiber.Map{
				"cleared":          false,
				"confirm_required": true,
				"signal":           SignalClick,
			})
		}

		s.Cart.Clear(c.Context())
		return c.JSON(fiber.Map{
			"cleared": true,
			"signal":  SignalClick,
			"cart":    cartView(s),
		})
	}
}
