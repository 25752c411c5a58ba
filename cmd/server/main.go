package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/inmobiliaria/api-inmobiliaria/internal/config"
	"github.com/inmobiliaria/api-inmobiliaria/internal/database"
	"github.com/inmobiliaria/api-inmobiliaria/internal/handlers"
	"github.com/inmobiliaria/api-inmobiliaria/internal/middleware"
	"github.com/inmobiliaria/api-inmobiliaria/internal/services"
	"github.com/inmobiliaria/api-inmobiliaria/internal/utils"

	_ "github.com/inmobiliaria/api-inmobiliaria/docs/api" // Swagger docs
)

// @title API Inmobiliaria
// @version 1.0.0
// @description REST backend for a real-estate brokerage with multi-database support
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/inmobiliaria/api-inmobiliaria

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.VersionMiddleware())

	// Prometheus metrics
	prometheus := fiberprometheus.New("api-inmobiliaria")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// Create handlers
	agenciaHandler := &handlers.AgenciaHandler{Service: services.NewAgenciaService(db)}
	clienteHandler := &handlers.ClienteHandler{Service: services.NewClienteService(db)}
	propietarioHandler := &handlers.PropietarioHandler{Service: services.NewPropietarioService(db)}
	inmuebleHandler := &handlers.InmuebleHandler{Service: services.NewInmuebleService(db)}
	visitaHandler := &handlers.VisitaHandler{Service: services.NewVisitaService(db)}

	// Fixed analytical routes go first so they don't match as :id
	app.Get("/agencias/facturacion", agenciaHandler.PorFacturacion)
	app.Get("/agencias", agenciaHandler.List)
	app.Get("/agencias/:id", agenciaHandler.Get)
	app.Post("/agencias", agenciaHandler.Create)
	app.Put("/agencias/:id", agenciaHandler.Update)
	app.Delete("/agencias/:id", agenciaHandler.Delete)

	app.Get("/clientes/vip", clienteHandler.Vip)
	app.Get("/clientes", clienteHandler.List)
	app.Get("/clientes/:id", clienteHandler.Get)
	app.Post("/clientes", clienteHandler.Create)
	app.Put("/clientes/:id", clienteHandler.Update)
	app.Delete("/clientes/:id", clienteHandler.Delete)

	app.Get("/propietarios/empresas", propietarioHandler.Empresas)
	app.Get("/propietarios", propietarioHandler.List)
	app.Get("/propietarios/:id", propietarioHandler.Get)
	app.Post("/propietarios", propietarioHandler.Create)
	app.Put("/propietarios/:id", propietarioHandler.Update)
	app.Delete("/propietarios/:id", propietarioHandler.Delete)

	app.Get("/inmuebles/rango", inmuebleHandler.RangoPrecio)
	app.Get("/inmuebles", inmuebleHandler.List)
	app.Get("/inmuebles/:id", inmuebleHandler.Get)
	app.Post("/inmuebles", inmuebleHandler.Create)
	app.Put("/inmuebles/:id", inmuebleHandler.Update)
	app.Delete("/inmuebles/:id", inmuebleHandler.Delete)

	app.Get("/visitas/pasadas", visitaHandler.Pasadas)
	app.Get("/visitas", visitaHandler.List)
	app.Get("/visitas/:id", visitaHandler.Get)
	app.Post("/visitas", visitaHandler.Create)
	app.Put("/visitas/:id", visitaHandler.Update)
	app.Delete("/visitas/:id", visitaHandler.Delete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Recurso no encontrado: "+c.OriginalURL())
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler maps unhandled errors onto the wire error schema
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	title := "internal-server-error"
	switch code {
	case fiber.StatusNotFound:
		title = "not-found"
	case fiber.StatusBadRequest:
		title = "bad-request"
	}

	return utils.GeneralError(c, code, title, message)
}
