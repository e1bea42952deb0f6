package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ibwangi/tripsearch/internal/cache"
	"github.com/ibwangi/tripsearch/internal/config"
	"github.com/ibwangi/tripsearch/internal/handler"
	"github.com/ibwangi/tripsearch/internal/ratelimit"
	"github.com/ibwangi/tripsearch/internal/vendors"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.Load()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limiter := ratelimit.NewVendorLimiter(ratelimit.DefaultConfig())
	limiter.SetVendorLimit("amadeus", 10, 20)
	limiter.SetVendorLimit("skyscanner", 5, 10)

	clients := &vendors.Clients{
		Amadeus: vendors.NewAmadeusClient(vendors.AmadeusConfig{
			ClientID:     cfg.Amadeus.ClientID,
			ClientSecret: cfg.Amadeus.ClientSecret,
			BaseURL:      cfg.Amadeus.BaseURL,
		}, limiter),
		Skyscanner: vendors.NewSkyscannerClient(vendors.SkyscannerConfig{
			APIKey:  cfg.Skyscanner.APIKey,
			BaseURL: cfg.Skyscanner.BaseURL,
		}, limiter),
	}
	if !clients.Amadeus.Configured() {
		log.Println("Amadeus credentials not set, searches will degrade to the next tier")
	}
	if !clients.Skyscanner.Configured() {
		log.Println("Skyscanner API key not set, searches will degrade to the next tier")
	}

	var offerCache cache.Cache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.Cache.Host,
			Port:     cfg.Cache.Port,
			Password: cfg.Cache.Password,
			TTL:      cfg.Cache.TTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		offerCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.Cache.Host, cfg.Cache.Port, cfg.Cache.TTL)
	} else {
		offerCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	rates := currency.NewProvider(cfg.ExchangeRate)
	log.Printf("USD to NGN rate: %.0f", rates.Rate())

	searchHandler := handler.NewSearchHandler(clients, offerCache, rates)
	selectionHandler := handler.NewSelectionHandler(rates)
	bookingHandler := handler.NewBookingHandler(rates)
	hotelsHandler := handler.NewHotelsHandler()
	rateHandler := handler.NewRateHandler(rates)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.POST("/flights/grid", searchHandler.PriceGrid)
	api.POST("/selection", selectionHandler.Select)
	api.POST("/selection/total", selectionHandler.Total)
	api.POST("/bookings", bookingHandler.Create)
	api.POST("/bookings/itinerary", bookingHandler.Itinerary)
	api.GET("/hotels", hotelsHandler.List)
	api.GET("/hotels/:id", hotelsHandler.Get)
	api.GET("/cities", hotelsHandler.Cities)
	api.GET("/exchange-rate", rateHandler.Get)
	api.PUT("/exchange-rate", rateHandler.Update)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
