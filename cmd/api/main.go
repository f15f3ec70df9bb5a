package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-sheets/internal/config"
	"go-warehouse-sheets/internal/handler"
	"go-warehouse-sheets/internal/middleware"
	"go-warehouse-sheets/internal/service"
	"go-warehouse-sheets/internal/store"
	"go-warehouse-sheets/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Tabular Store
	st := openStore(cfg)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	invService := service.NewInventoryService(st, cfg, wsHub)
	authService, err := service.NewAuthService(cfg)
	if err != nil {
		log.Fatal("Failed to set up auth service: ", err)
	}

	invHandler := handler.NewInventoryHandler(invService)
	authHandler := handler.NewAuthHandler(authService)
	pageHandler := handler.NewPageHandler(invService)

	// 5. Setup Fiber
	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName: "Virtual Warehouse Pro v1.0",
		Views:   engine,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	// 6. Routes
	app.Get("/", pageHandler.Index)

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)
	api.Get("/departments", invHandler.GetDepartments)
	api.Get("/departments/:name/items", invHandler.GetDepartmentItems)

	// ============ PROTECTED ROUTES ============
	// Mutations require the admin session
	protected := api.Group("", middleware.RequireAuth(cfg))
	protected.Post("/items", invHandler.CreateItem)
	protected.Put("/items/:code", invHandler.UpdateItem)
	protected.Delete("/items/:code", invHandler.DeleteItem)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// openStore picks the tabular store driver from config.
func openStore(cfg *config.Config) store.TabularStore {
	switch cfg.StoreDriver {
	case config.DriverSheets:
		st, err := store.NewSheetsStore(context.Background(), cfg.SpreadsheetID, cfg.GoogleCredentialsFile)
		if err != nil {
			log.Fatal("Failed to open Google Sheets store. \n", err)
		}
		log.Println("Google Sheets store connected:", cfg.SpreadsheetID)
		return st

	case config.DriverExcel:
		st, err := store.NewExcelStore(cfg.SheetFile)
		if err != nil {
			log.Fatal("Failed to open workbook store. \n", err)
		}
		log.Println("Workbook store opened:", cfg.SheetFile)
		return st

	case config.DriverMemory:
		st := store.NewMemoryStore()
		seedMemoryStore(st, cfg)
		return st

	default:
		log.Fatalf("Unknown STORE_DRIVER %q (want memory, excel or gsheets)", cfg.StoreDriver)
		return nil
	}
}

// seedMemoryStore provisions the departments reference sheet, which an
// external spreadsheet would already carry, so a fresh dev run is usable.
func seedMemoryStore(st *store.MemoryStore, cfg *config.Config) {
	if err := st.CreateSheet(cfg.DepartmentsSheet); err != nil {
		log.Fatal("Failed to seed memory store: ", err)
	}
	if err := st.WriteHeader(cfg.DepartmentsSheet, []string{"Department"}); err != nil {
		log.Fatal("Failed to seed memory store: ", err)
	}
}
