package config

import (
	"RestoOps-Backend/internal/api/handlers"
	"RestoOps-Backend/internal/api/routes"
	"RestoOps-Backend/internal/middleware"
	"RestoOps-Backend/internal/utils"
	"RestoOps-Backend/internal/utils/storage"
	"RestoOps-Backend/pkg/inference"
	"RestoOps-Backend/pkg/jwt"
	"RestoOps-Backend/pkg/menuimport"
	"RestoOps-Backend/pkg/product"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	engine, err := inference.NewEngine()
	if err != nil {
		log.Fatalf("error creating inference engine: %v", err)
	}

	// Repository
	productRepository := product.NewProductRepository(db)
	importRepository := menuimport.NewImportRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	productService := product.NewProductService(productRepository)
	signals := make(chan string, 64)
	importService := menuimport.NewImportService(
		importRepository,
		productRepository,
		productService,
		engine,
		s3,
		signals,
	)

	// Worker
	worker := menuimport.NewWorker(importService, importRepository, signals)
	worker.Start()

	// Handler
	menuImportHandler := handlers.NewMenuImportHandler(importService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		MenuImportHandler: menuImportHandler,
		ProductHandler:    productHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
