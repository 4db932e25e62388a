package main

import (
	"context"
	"log"
	"os"

	"modernliving-backend/internal/assistant"
	"modernliving-backend/internal/assistant/gemini"
	"modernliving-backend/internal/catalog"
	"modernliving-backend/internal/config"
	"modernliving-backend/internal/handlers"
	"modernliving-backend/internal/middleware"
	"modernliving-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	cat := catalog.Default()
	sessions := store.NewSessionStore(assistant.GreetingText)

	provider, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cat.All())
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}
	defer provider.Close()

	concierge := assistant.New(provider, cat, sessions, cfg.AssistantTimeout)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TrustedProxyHeaders())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Session middleware
	middleware.InitSessionStore(cfg.SessionSecret)
	r.Use(middleware.SessionMiddleware())

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(cat, sessions)
	cartHandler := handlers.NewCartHandler(cat, sessions)
	wishlistHandler := handlers.NewWishlistHandler(cat, sessions)
	sessionHandler := handlers.NewSessionHandler(sessions)
	chatHandler := handlers.NewChatHandler(concierge, sessions)
	localeHandler := handlers.NewLocaleHandler(sessions)

	// Public catalog routes
	public := r.Group("/api")
	{
		public.GET("/home", publicHandler.GetHome)
		public.GET("/categories", publicHandler.GetCategories)
		public.GET("/products", publicHandler.GetProducts)
		public.GET("/products/:id", publicHandler.GetProduct)
	}

	// Cart routes
	cart := r.Group("/api/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/add", cartHandler.AddToCart)
		cart.PUT("/update/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/remove/:id", cartHandler.RemoveFromCart)
		cart.POST("/clear", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/checkout", cartHandler.Checkout)
	}

	// Wishlist routes
	wishlist := r.Group("/api/wishlist")
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("/toggle/:id", wishlistHandler.ToggleWishlist)
	}

	// Session view-state routes
	session := r.Group("/api/session")
	{
		session.GET("", sessionHandler.GetSession)
		session.PUT("/view", sessionHandler.SetView)
		session.PUT("/language", sessionHandler.SetLanguage)
	}

	// Assistant routes
	chat := r.Group("/api/assistant")
	{
		chat.GET("/messages", chatHandler.GetMessages)
		chat.POST("/chat", chatHandler.PostMessage)
	}

	// Localization routes
	locale := r.Group("/api")
	{
		locale.GET("/translations/:lang", localeHandler.GetTranslations)
		locale.GET("/pages/:slug", localeHandler.GetPage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
