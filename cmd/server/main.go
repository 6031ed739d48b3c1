package main

import (
	"context"
	"log"
	"travel_crm_go/config"
	"travel_crm_go/handlers"
	"travel_crm_go/middleware"
	"travel_crm_go/services/assistant"
	"travel_crm_go/services/i18n"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Load translations
	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// Hash static assets for cache busting
	middleware.InitAssetVersions("static")

	// Gemini powers the itinerary planner and the chatbot. Without a key both
	// answer with their fallback messages.
	if cfg.GeminiAPIKey != "" {
		gen, err := assistant.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("[WARNING] Gemini client unavailable: %v", err)
		} else {
			assistant.Default = gen
		}
	} else {
		log.Printf("[WARNING] GEMINI_API_KEY not set, assistant features will use fallback messages")
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.CSRF(cfg))

	// Static files
	e.Static("/static", "static")

	// Page routes
	e.GET("/", handlers.LandingHandler)
	e.GET("/lang/:lang", handlers.SwitchLanguageHandler)
	e.GET("/health", handlers.HealthHandler)

	// Live session (modal trigger and typed headlines)
	e.GET("/ws", handlers.LiveSessionHandler)

	// HTMX routes
	e.POST("/itinerary", handlers.ItineraryHandler)
	e.POST("/chat", handlers.ChatHandler)
	e.POST("/register", handlers.RegisterHandler)
	e.POST("/subscribe", handlers.SubscribeHandler)

	// Start server
	log.Printf("Server starting on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
