package routes

import (
	"RestoOps-Backend/internal/api/handlers"
	"RestoOps-Backend/internal/middleware"
	"RestoOps-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	MenuImportHandler handlers.MenuImportHandler
	ProductHandler    handlers.ProductHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.MenuImports()
	c.Products()
	c.GuestRoute()
}

func (c *Config) MenuImports() {
	imports := c.App.Group("/api/v1/menu-imports", c.Middleware.AuthMiddleware(c.JWTService))
	{
		imports.Post("", c.MenuImportHandler.StartImport)
		imports.Get("", c.MenuImportHandler.GetImportJobs)
		imports.Get("/:id", c.MenuImportHandler.GetImportJob)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))
	{
		products.Get("", c.ProductHandler.GetProducts)
		products.Get("/:id", c.ProductHandler.GetProductDetail)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
