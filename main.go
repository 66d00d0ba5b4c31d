package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpLayer "threads-of-tradition/http"
	"threads-of-tradition/repository"
	"threads-of-tradition/service"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := envOr("PORT", "8080")
	secret := envOr("AUTH_SECRET", "threads-of-tradition-dev-secret")
	uploadDir := envOr("UPLOAD_DIR", "uploads")

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
	} else {
		cache = repository.NewMemoryCache()
	}

	artisanRepo := repository.NewArtisanRepositoryMemory()
	productRepo := repository.NewProductRepositoryMemory()
	adminRepo := repository.NewAdminRepositoryMemory()
	images := repository.NewLocalImageStore(uploadDir)

	authService := service.NewAuthService(secret)
	recommendationService := service.NewRecommendationService(cache, service.NewAIService(), nil)
	artisanService := service.NewArtisanService(artisanRepo, productRepo, authService, images)
	productService := service.NewProductService(productRepo, artisanRepo, recommendationService, images)
	adminService := service.NewAdminService(adminRepo, artisanRepo, productRepo, authService)

	if err := adminService.EnsureDefaultAdmin("admin", envOr("ADMIN_PASSWORD", "admin123")); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	artisanHandler := httpLayer.NewArtisanHandler(artisanService)
	productHandler := httpLayer.NewProductHandler(productService)
	adminHandler := httpLayer.NewAdminHandler(adminService)
	recommendationHandler := httpLayer.NewRecommendationHandler(recommendationService, artisanService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	artisanOnly := func(h http.HandlerFunc) http.Handler {
		return httpLayer.AuthMiddleware(authService, service.UserTypeArtisan, h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return httpLayer.AuthMiddleware(authService, service.UserTypeAdmin, h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","message":"Threads of Tradition API is running"}`))
	})

	mux.Handle("/api/artisan/register", http.HandlerFunc(artisanHandler.Register))
	mux.Handle("/api/artisan/login", http.HandlerFunc(artisanHandler.Login))
	mux.Handle("/api/artisan/profile", artisanOnly(artisanHandler.Profile))
	mux.Handle("/api/artisan/products", artisanOnly(artisanHandler.Products))

	mux.Handle("/api/products/materials", http.HandlerFunc(recommendationHandler.Materials))
	mux.Handle(
		"/api/products/generate-caption",
		httpLayer.RateLimitMiddleware(rateLimiter, artisanOnly(recommendationHandler.GenerateCaption)),
	)
	mux.Handle(
		"/api/products/recommend-price",
		httpLayer.RateLimitMiddleware(rateLimiter, artisanOnly(recommendationHandler.RecommendPrice)),
	)
	mux.Handle("/api/products/upload", artisanOnly(productHandler.Upload))
	mux.Handle("/api/products", http.HandlerFunc(productHandler.List))
	mux.Handle("GET /api/products/{id}", http.HandlerFunc(productHandler.Get))
	mux.Handle("DELETE /api/products/{id}", artisanOnly(productHandler.Delete))

	mux.Handle("/api/admin/login", http.HandlerFunc(adminHandler.Login))
	mux.Handle("/api/admin/artisans", adminOnly(adminHandler.ListArtisans))
	mux.Handle("GET /api/admin/artisans/{id}", adminOnly(adminHandler.GetArtisan))
	mux.Handle("POST /api/admin/artisans/{id}/verify", adminOnly(adminHandler.VerifyArtisan))
	mux.Handle("/api/admin/stats", adminOnly(adminHandler.Stats))

	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      httpLayer.CORSMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Threads of Tradition API listening on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
