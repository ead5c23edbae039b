package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"avatar_interview_backend/config"
	"avatar_interview_backend/middleware"
	"avatar_interview_backend/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Add godotenv at the start of main()
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found") // Non-fatal in production
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	keyStatus := "NOT SET -- add SPEECH_KEY to .env"
	if cfg.SpeechConfigured() {
		keyStatus = "OK configured"
	}
	log.Printf("Avatar Interviewer")
	log.Printf("  Mode   : %s", cfg.InterviewMode)
	log.Printf("  Region : %s", cfg.SpeechRegion)
	log.Printf("  Key    : %s", keyStatus)

	// Initialize router
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Setup CORS - the UI may be served from a different origin in dev
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"X-Request-ID",
	}
	corsConfig.AllowMethods = []string{
		"GET",
		"POST",
	}
	r.Use(cors.New(corsConfig))

	// Templates must exist at deploy time; a missing file is fatal here.
	r.LoadHTMLGlob("templates/*")

	// Setup routes
	routes.SetupRoutes(r, cfg)

	// Run server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}
