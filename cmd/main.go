package main

import (
	"log"
	"portfolio-service/internal/assets"
	"portfolio-service/internal/config"
	"portfolio-service/internal/handlers"
	"portfolio-service/internal/metrics"
	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
	"portfolio-service/internal/services"
	"portfolio-service/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	minioClient := InitMinIOClient(cfg)

	host := assets.NewMinioHost(minioClient, cfg.MinioBucket, cfg.MinioEndpoint, cfg.MinioSSL)
	folderRepo := repository.NewFolderRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	folderService := services.NewFolderService(folderRepo, mediaRepo, host)
	mediaService := services.NewMediaService(mediaRepo, folderRepo, host, cfg.LayoutCycle, cfg.MaxUploadBytes)

	if err := folderService.SeedCategories(cfg.SeedCategories); err != nil {
		log.Fatalf("Category seeding failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadBytes) + 1024*1024,
	})

	//Register Prometheus metrics endpoint
	m := metrics.NewMetrics()
	app.Use(m.Middleware())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Set up routes for the folder tree and media operations
	fh := handlers.NewFolderHandler(folderService)
	mh := handlers.NewMediaHandler(mediaService)
	api := app.Group("/api/portfolio")

	api.Get("/categories", fh.ListCategories)
	api.Get("/categories/listing", fh.ListCategoriesWithProjects)
	api.Get("/categories/:id/projects", fh.ListProjects)
	api.Get("/categories/:id/projects/first-images", fh.ListProjectsWithFirstImage)
	api.Get("/projects", fh.ListAllProjects)
	api.Post("/projects", fh.CreateProject)
	api.Put("/projects/reorder", fh.ReorderProjects)
	api.Get("/folders/:id", fh.GetFolder)
	api.Put("/folders/:id/name", fh.RenameFolder)
	api.Put("/folders/:id/hero", fh.SetHeroImage)
	api.Put("/folders/:id/active", fh.SetActive)
	api.Put("/folders/:id/related", fh.SetRelatedProjects)
	api.Delete("/folders/:id", fh.DeleteFolder)

	api.Get("/folders/:id/media", mh.ListMedia)
	api.Post("/folders/:id/media", mh.UploadMedia)
	api.Post("/folders/:id/media/archive", mh.UploadArchive)
	api.Put("/media/reorder", mh.ReorderMedia)
	api.Put("/media/:id/layout", mh.CycleLayout)
	api.Put("/media/:id/video-start", mh.SetVideoStartTime)
	api.Delete("/media/:id", mh.DeleteMedia)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.Folder{}, &models.Media{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func InitMinIOClient(cfg *config.Config) *minio.Client {
	minioClient, err := storage.NewMinioClient(cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	return minioClient
}
