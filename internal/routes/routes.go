package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/quim/internal/cart"
	"github.com/example/quim/internal/cartstore"
	"github.com/example/quim/internal/catalog"
	"github.com/example/quim/internal/config"
	"github.com/example/quim/internal/coupons"
	"github.com/example/quim/internal/database"
	"github.com/example/quim/internal/delivery"
	"github.com/example/quim/internal/handlers"
	"github.com/example/quim/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	provider := catalog.NewDBProvider(db)
	registry := coupons.NewDBRegistry(db)
	resolver := delivery.NewResolver(database.LoadZones(db))
	store := cartstore.NewGormStore(db, cfg.StorageName)

	sessions := cart.NewManager(cart.Deps{
		Catalog:  provider,
		Coupons:  registry,
		Delivery: resolver,
		Store:    store,
		Limits: cart.Limits{
			MinQuantity:     cfg.MinQuantity,
			MaxQuantity:     cfg.MaxQuantity,
			FreeShippingMin: cfg.FreeShippingMin,
		},
	})

	menuHandler := handlers.NewMenuHandler(provider)
	cartHandler := handlers.NewCartHandler(sessions)
	deliveryHandler := handlers.NewDeliveryHandler(resolver)
	couponHandler := handlers.NewCouponHandler(registry, sessions)
	orderHandler := handlers.NewOrderHandler(db, sessions, telegramService)

	api := app.Group("/api")

	// Menu routes
	menu := api.Group("/menu")
	menu.Get("/", menuHandler.ListMenu)
	menu.Get("/categories", menuHandler.ListCategories)
	menu.Get("/:slug", menuHandler.GetProduct)

	// Cart routes
	api.Post("/cart", cartHandler.CreateSession)
	carts := api.Group("/cart/:session")
	carts.Get("/", cartHandler.GetCart)
	carts.Delete("/", cartHandler.ClearCart)
	carts.Get("/summary", cartHandler.GetSummary)
	carts.Post("/items", cartHandler.AddItem)
	carts.Patch("/items/:key", cartHandler.UpdateQuantity)
	carts.Delete("/items/:key", cartHandler.RemoveItem)
	carts.Put("/coupon", cartHandler.SetCoupon)
	carts.Put("/destination", cartHandler.SetDestination)
	carts.Put("/pickup", cartHandler.SetPickup)

	// Delivery quote
	api.Get("/delivery/quote", deliveryHandler.Quote)

	// Coupons
	api.Get("/coupons", couponHandler.ListCoupons)
	api.Get("/coupons/check", couponHandler.CheckCoupon)

	// Orders
	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders", orderHandler.ListOrders)
	api.Get("/orders/:id", orderHandler.GetOrder)
}
