package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/routes"
	"github.com/zaxiang/Mini-Amazon/service"
	"github.com/zaxiang/Mini-Amazon/store"
	"github.com/zaxiang/Mini-Amazon/store/gormstore"
	"github.com/zaxiang/Mini-Amazon/store/memstore"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	st := initStore(logger)
	svc := service.NewRegistry(st, logger)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, svc)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// initStore picks the storage backend. STORE_BACKEND=memory runs entirely
// in-process, which is handy for local development without Postgres.
func initStore(logger *zap.Logger) store.Store {
	if os.Getenv("STORE_BACKEND") == "memory" {
		logger.Warn("using in-memory store, data will not survive a restart")
		return memstore.New()
	}

	db := initDatabase(logger)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Offering{},
		&models.Cart{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.Review{},
		&models.ReviewUpvote{},
		&models.Feedback{},
		&models.FeedbackUpvote{},
	); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	return gormstore.New(db)
}

// initDatabase sets up the GORM DB connection
func initDatabase(logger *zap.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal("db connection failed", zap.Error(err))
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("db connection failed", zap.Error(err))
	}
	return db
}
