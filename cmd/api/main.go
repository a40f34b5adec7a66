package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "temple-backend/configs"
	"temple-backend/database"
	"temple-backend/handlers"
	"temple-backend/jobs"
	"temple-backend/notifications"
	"temple-backend/routes"
	"temple-backend/services"
	"temple-backend/store"
	"temple-backend/websocket"
)

func main() {
	bookingRepo := openBookingRepository()

	volunteerStore, err := store.NewVolunteerStore(config.ConfigOr("VOLUNTEERS_FILE", "data/volunteers.json"))
	if err != nil {
		log.Fatalf("🔥 Failed to open volunteer store: %v", err)
	}
	lunchStore, err := store.NewLunchStore(config.ConfigOr("LUNCH_FILE", "data/lunch.json"))
	if err != nil {
		log.Fatalf("🔥 Failed to open lunch store: %v", err)
	}
	userStore, err := store.NewUserStore(store.DemoUsers)
	if err != nil {
		log.Fatalf("🔥 Failed to seed demo users: %v", err)
	}

	sender, err := notifications.NewSenderFromConfig()
	if err != nil {
		log.Fatalf("🔥 Failed to configure email delivery: %v", err)
	}
	log.Printf("✅ Email delivery via %s", sender.Name())

	uploader, err := services.NewQRUploaderFromEnv()
	if err != nil {
		log.Fatalf("🔥 Failed to configure QR hosting: %v", err)
	}
	var qrHost services.QRHost
	if uploader != nil {
		qrHost = uploader
	} else {
		log.Println("QR hosting disabled; confirmation emails embed the image inline")
	}

	mailer := notifications.NewSMTPMailerFromEnv()
	bookingSvc := services.NewBookingService(bookingRepo, lunchStore, sender, qrHost)
	scanSvc := services.NewScanService(bookingRepo)

	handlers.Init(handlers.Deps{
		Users:      userStore,
		Volunteers: volunteerStore,
		Lunch:      lunchStore,
		Bookings:   bookingRepo,
		BookingSvc: bookingSvc,
		ScanSvc:    scanSvc,
		Mailer:     mailer,
	})

	poller := jobs.NewStorePoller(bookingRepo)
	poller.Prime()
	c := cron.New(cron.WithSeconds())
	c.AddFunc("*/5 * * * * *", poller.Poll)
	c.AddFunc("0 0 18 * * *", func() { jobs.SendSevaReminders(bookingRepo, mailer) })
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Temple Backend",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		PassLocalsToViews: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization, Content-Disposition",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Sri Vidyaranyapura Mutt API",
		})
	})

	routes.AuthRoutes(app)
	routes.CatalogRoutes(app)
	routes.BookingRoutes(app)
	routes.EmailRoutes(app)
	routes.VolunteerRoutes(app)
	routes.LunchRoutes(app)
	routes.ScanRoutes(app)
	routes.DashboardRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}

// openBookingRepository picks the system of record: the default JSON file
// store, or Postgres when STORAGE_DRIVER=postgres.
func openBookingRepository() store.BookingRepository {
	if config.ConfigOr("STORAGE_DRIVER", "file") == "postgres" {
		database.ConnectDB()
		database.Migrate()
		return database.NewBookingRepository(database.DB)
	}

	repo, err := store.NewBookingStore(config.ConfigOr("BOOKINGS_FILE", "data/bookings.json"))
	if err != nil {
		log.Fatalf("🔥 Failed to open booking store: %v", err)
	}
	return repo
}
