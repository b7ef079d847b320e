package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"afspraaksms/internal/auth"
	"afspraaksms/internal/database"
	"afspraaksms/internal/handlers"
	"afspraaksms/internal/services"
	"afspraaksms/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// This is our main function - the entry point of our application
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	// Reminder store: relational by default, flat file for
	// database-less deployments.
	var reminderStore store.Store
	switch backend := os.Getenv("REMINDER_STORE"); backend {
	case "", "postgres":
		if err := database.InitDB(); err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		reminderStore = store.NewGormStore(database.GetDB())
	case "file":
		path := envDefault("REMINDER_STORE_FILE", store.DefaultFilePath())
		fileStore, err := store.NewFileStore(path)
		if err != nil {
			log.Fatal("Failed to open reminder store:", err)
		}
		reminderStore = fileStore
	default:
		log.Fatalf("Unknown REMINDER_STORE value %q", backend)
	}

	organizer := os.Getenv("ORGANIZER_EMAIL")
	if organizer == "" {
		log.Fatal("Required environment variable ORGANIZER_EMAIL is not set")
	}

	credentialsFile := envDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	tokenFile := envDefault("GOOGLE_TOKEN_FILE", "token.json")
	client, err := auth.NewCalendarClient(ctx, credentialsFile, tokenFile)
	if err != nil {
		log.Fatal("Failed to build calendar client:", err)
	}

	calendarID := envDefault("CALENDAR_ID", "primary")
	calendarService, err := services.NewCalendarService(ctx, client, calendarID)
	if err != nil {
		log.Fatal("Failed to create calendar service:", err)
	}

	interval := 5 * time.Minute
	if raw := os.Getenv("WORKER_INTERVAL"); raw != "" {
		interval, err = time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid WORKER_INTERVAL %q: %v", raw, err)
		}
	}

	scheduler := services.NewScheduler(calendarService, services.NewSMSService(), reminderStore, organizer)
	worker := services.NewWorker(scheduler, services.NewAlertService(), interval)
	worker.Start()

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// Configure trusted proxies
	router.SetTrustedProxies([]string{"127.0.0.1"})

	h := handlers.NewHandler(worker)
	router.GET("/", h.Home)
	router.GET("/health", h.Health)
	router.GET("/send-reminders", h.SendReminders)
	router.POST("/ringring-webhook", h.RingRingWebhook)

	// Start the server
	port := envDefault("PORT", "8080")
	fmt.Printf("Server starting on port %s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func envDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
