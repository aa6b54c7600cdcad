package main

import (
	"log"
	"strings"

	"pos-terminal/internal/auth"
	"pos-terminal/internal/backend"
	"pos-terminal/internal/cart"
	"pos-terminal/internal/catalog"
	"pos-terminal/internal/checkout"
	"pos-terminal/internal/config"
	"pos-terminal/internal/database"
	"pos-terminal/internal/models"
	"pos-terminal/internal/pos"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // .env yoksa sorun değil

	cfg := config.Load()
	database.Init(cfg)

	snapshots, err := cart.NewRedisSnapshotStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Redis başlatılamadı: %v", err)
	}

	client := backend.NewClient(cfg)
	offline := catalog.NewOfflineStore(database.DB)
	syncer := catalog.NewSyncer(client, offline)
	journal := checkout.NewGormJournal(database.DB)
	orchestrator := checkout.New(client, journal)
	registry := pos.NewRegistry(client, offline, snapshots, cfg.ScanKeyGap)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/operators", auth.CreateOperatorHandler())
	adminRoutes.Post("/offline-sync", pos.OfflineSyncHandler(syncer, offline))

	// POS ekranı
	protected.Post("/pos/sessions", pos.OpenSessionHandler(registry))
	protected.Delete("/pos/sessions/:id", pos.CloseSessionHandler(registry))
	protected.Get("/pos/sessions/:id/cart", pos.GetCartHandler(registry))
	protected.Post("/pos/sessions/:id/scan", pos.ScanHandler(registry))
	protected.Post("/pos/sessions/:id/keys", pos.KeysHandler(registry))
	protected.Put("/pos/sessions/:id/cart/items/:productId", pos.SetQuantityHandler(registry))
	protected.Delete("/pos/sessions/:id/cart/items/:productId", pos.RemoveItemHandler(registry))
	protected.Post("/pos/sessions/:id/cart/clear", pos.ClearCartHandler(registry))
	protected.Post("/pos/sessions/:id/checkout", pos.CheckoutHandler(registry, orchestrator))

	protected.Get("/pos/payment-methods", pos.PaymentMethodsHandler(client))
	protected.Get("/pos/checkout-records", pos.CheckoutRecordsHandler(journal))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
