package pos

import (
	"errors"
	"fmt"

	"pos-terminal/internal/auth"
	"pos-terminal/internal/checkout"

	"github.com/gofiber/fiber/v2"
)

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// POST /api/pos/sessions/:id/checkout
// Başarıda sepet temizlenmiş döner. Ödeme aşaması başarısız olursa sepet
// olduğu gibi kalır ve cevapta sipariş numarası bulunur; operatör aynı
// siparişe karşı ödemeyi tekrar deneyebilir.
func CheckoutHandler(reg *Registry, orch *checkout.Orchestrator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := sessionFromParams(reg, c)
		if err != nil {
			return err
		}

		var body CheckoutRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.PaymentMethod == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ödeme yöntemi zorunlu")
		}

		result, err := orch.Checkout(c.Context(), s.Cart, body.PaymentMethod, s.ID, auth.OperatorID(c))
		if err != nil {
			return checkoutFailure(c, s, err)
		}

		return c.JSON(fiber.Map{
			"ok":     true,
			"order":  result,
			"signal": SignalBeepSuccess,
			"cart":   cartView(s),
		})
	}
}

func checkoutFailure(c *fiber.Ctx, s *Session, err error) error {
	status := fiber.StatusBadGateway
	message := "Ödeme işlemi başarısız"
	resp := fiber.Map{
		"ok":     false,
		"signal": SignalBeepError,
		"cart":   cartView(s),
	}

	var belowMin *checkout.BelowMinimumError
	var payErr *checkout.PaymentError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		status = fiber.StatusBadRequest
		message = "Sepet boş"
	case errors.Is(err, checkout.ErrUnknownMethod):
		status = fiber.StatusBadRequest
		message = "Ödeme yöntemi tanınmıyor"
	case errors.As(err, &belowMin):
		status = fiber.StatusBadRequest
		message = fmt.Sprintf("Tutar çok düşük: bu yöntem için en az %.2f gerekli", belowMin.Minimum)
		resp["min_amount"] = belowMin.Minimum
	case errors.As(err, &payErr):
		// Sipariş oluştu, ödeme düştü. Sepet bilinçli olarak korunur.
		message = "Ödeme başarısız, sipariş ödenmemiş olarak bekliyor"
		resp["order_number"] = payErr.OrderNumber
	default:
		message = "Sipariş oluşturulamadı"
	}

	resp["message"] = message
	return c.Status(status).JSON(resp)
}
