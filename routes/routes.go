package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/coinfolio/coinfolio/config"
	"github.com/coinfolio/coinfolio/controllers"
	"github.com/coinfolio/coinfolio/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        config.App.RateLimitMax,
		Expiration: time.Duration(config.App.RateLimitWindow) * time.Second,
	}))

	app.Get("/api/public/timestamp", controllers.GetTimestamp)

	auth := app.Group("/api/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Get("/me", middlewares.Authenticate, controllers.GetMe)

	// Public market reads are cached; everything beneath them is read-only.
	dashboard := app.Group("/api/dashboard", cache.New(cache.Config{
		Expiration: time.Duration(config.App.CacheExpiration) * time.Second,
	}))
	dashboard.Get("/summary", controllers.GetSummary)
	dashboard.Get("/cryptocurrencies", controllers.GetCryptocurrencies)
	dashboard.Get("/cryptocurrencies/:symbol/market-data", controllers.GetMarketData)
	dashboard.Get("/cryptocurrencies/:symbol/metadata", controllers.GetAssetMetaData)

	trade := app.Group("/api/trade", middlewares.Authenticate)
	trade.Post("/orders", controllers.CreateOrder)
	trade.Get("/orders", controllers.GetOrders)
	trade.Get("/orders/:id", controllers.GetOrderByID)
	trade.Post("/orders/:id/cancel", controllers.CancelOrderByID)

	portfolio := app.Group("/api/portfolio", middlewares.Authenticate)
	portfolio.Post("/", controllers.CreatePortfolio)
	portfolio.Get("/", controllers.GetPortfolios)
	portfolio.Get("/:id", controllers.GetPortfolioByID)
	portfolio.Delete("/:id", controllers.DeletePortfolioByID)
	portfolio.Post("/:id/assets", controllers.CreatePortfolioAsset)
	portfolio.Delete("/:id/assets/:asset_id", controllers.DeletePortfolioAssetByID)
	portfolio.Post("/:id/revalue", controllers.RevaluePortfolio)

	settings := app.Group("/api/settings", middlewares.Authenticate)
	settings.Get("/profile", controllers.GetProfile)
	settings.Put("/profile", controllers.UpdateProfile)
	settings.Put("/password", controllers.UpdatePassword)
	settings.Post("/deactivate", controllers.DeactivateAccount)

	return app
}
