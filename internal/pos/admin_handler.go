package pos

import (
	"log"

	"pos-terminal/internal/backend"
	"pos-terminal/internal/catalog"
	"pos-terminal/internal/checkout"

	"github.com/gofiber/fiber/v2"
)

// OfflineCounter: offline kopyadaki ürün sayısını okur.
type OfflineCounter interface {
	Count() (int64, error)
}

// GET /api/pos/payment-methods
// UI'ın ödeme düğmelerini çizmesi için backend listesini geçirir.
func PaymentMethodsHandler(client *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		methods, err := client.ListPaymentMethods(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Ödeme yöntemleri alınamadı")
		}
		return c.JSON(methods)
	}
}

// POST /api/admin/offline-sync (sadece admin)
// Backend kataloğunu yerel offline kopyaya indirir.
func OfflineSyncHandler(syncer *catalog.Syncer, store OfflineCounter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := syncer.Sync(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Senkronizasyon başarısız: "+err.Error())
		}

		// Sayım sadece bilgi amaçlı; okunamazsa alan hiç dönmez,
		// yanıltıcı bir 0 dönmez.
		total, err := store.Count()
		if err != nil {
			log.Printf("[WARN] Offline ürün sayısı okunamadı: %v", err)
			return c.JSON(fiber.Map{"synced": n})
		}
		return c.JSON(fiber.Map{
			"synced":        n,
			"offline_total": total,
		})
	}
}

// GET /api/pos/checkout-records?limit=50
func CheckoutRecordsHandler(journal *checkout.GormJournal) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs, err := journal.Recent(c.QueryInt("limit", 50))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kayıtları listelenemedi")
		}
		return c.JSON(recs)
	}
}
