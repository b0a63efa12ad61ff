package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DhaatuTheGamer/seamless-qr-dining/catalog"
	"github.com/DhaatuTheGamer/seamless-qr-dining/config"
	"github.com/DhaatuTheGamer/seamless-qr-dining/kds"
	"github.com/DhaatuTheGamer/seamless-qr-dining/models"
	"github.com/DhaatuTheGamer/seamless-qr-dining/router"
	"github.com/DhaatuTheGamer/seamless-qr-dining/storage"
	"github.com/DhaatuTheGamer/seamless-qr-dining/store"
	"github.com/DhaatuTheGamer/seamless-qr-dining/toast"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

func init() {
	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The relational DB always exists (staff accounts live there); whether
	// it also holds the order records depends on the configured backend.
	db, err := storage.OpenDatabase(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	var backend storage.Backend
	switch cfg.StorageBackend {
	case "redis":
		redisBackend, err := storage.NewRedisBackend(cfg.RedisURL)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		backend = redisBackend
	default:
		dbBackend, err := storage.NewDatabaseBackend(db)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to set up record store: %v", err)
		}
		dbBackend.SetPollInterval(cfg.SyncInterval)
		backend = dbBackend
	}
	defer backend.Close()

	cat := catalog.Default()
	hub := kds.NewHub()
	toasts := toast.NewQueue(cfg.ToastDuration)

	// Store notifications land in the toast queue and on staff screens.
	notifier := toast.Multi(toasts, toast.NotifierFunc(func(message string, _ toast.Severity) {
		hub.BroadcastStaffNotification(message)
	}))

	st := store.New(backend, notifier)

	ctx := context.Background()
	if err := st.Load(ctx); err != nil {
		utils.ErrorLogger.Fatalf("Failed to load persisted state: %v", err)
	}

	st.OnExternalChange(func(key string) {
		utils.InfoLogger.Printf("Applied external change to %s", key)
		hub.BroadcastDashboardUpdate(map[string]interface{}{
			"ordersByStatus":  st.OrdersByStatus(),
			"serviceRequests": st.ServiceRequests(),
		})
	})
	if err := st.StartSync(ctx); err != nil {
		utils.ErrorLogger.Fatalf("Failed to start storage sync: %v", err)
	}

	r := router.SetupRouter(router.Deps{
		DB:            db,
		Store:         st,
		Catalog:       cat,
		Hub:           hub,
		Toasts:        toasts,
		OTPAcceptCode: cfg.OTPAcceptCode,
	})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
