package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"homeboard/fitness/internal/api"
	"homeboard/fitness/internal/config"
	"homeboard/fitness/internal/repository/mongo"
	"homeboard/fitness/internal/service"
)

func main() {
	log.Println("Starting Fitness Routine Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Indexes & Seed Data ---
	{
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		if err := mongo.EnsureWorkoutIndexes(ctx, appDB); err != nil {
			log.Printf("ERROR: Failed to ensure workout indexes: %v", err)
		}
		if err := mongo.SeedRoutine(ctx, appDB, defaultWeeklyRoutine()); err != nil {
			log.Printf("ERROR: Failed to seed weekly routine: %v", err)
		}
		if err := mongo.SeedWorkoutCatalog(ctx, appDB, defaultWorkoutDefinitions()); err != nil {
			log.Printf("ERROR: Failed to seed workout catalog: %v", err)
		}
		cancel()
		log.Println("Indexes and seed data ensured.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	routineStore := mongo.NewMongoRoutineStore(appDB)
	workoutCatalog := mongo.NewMongoWorkoutCatalog(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	routineService := service.NewRoutineService(routineStore, workoutCatalog)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.Server.CORSOrigins, routineService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
