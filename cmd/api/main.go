package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/consoleforeveryone/rental-api/internal/config"
	"github.com/consoleforeveryone/rental-api/internal/infra/database"
	"github.com/consoleforeveryone/rental-api/internal/infra/http/handlers"
	"github.com/consoleforeveryone/rental-api/internal/infra/integration/resend"
	"github.com/consoleforeveryone/rental-api/internal/infra/mail"
	"github.com/consoleforeveryone/rental-api/internal/infra/queue"
	"github.com/consoleforeveryone/rental-api/internal/metrics"
	"github.com/consoleforeveryone/rental-api/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositories
	inquiryRepo := database.NewInquiryRepository(db)

	// 2. Email providers: Resend first, Zoho SMTP as the fallback
	primary := mail.NewResendSender(resend.NewClient(cfg.Mail.ResendAPIKey))
	secondary := mail.NewSMTPSender(cfg.Mail.ZohoHost, cfg.Mail.ZohoPort, cfg.Mail.ZohoEmail, cfg.Mail.ZohoAppPassword)
	gateway := mail.NewGateway(primary, secondary)
	composer := mail.NewComposer(cfg.Mail.FromAddress, cfg.Mail.NotificationEmail, cfg.Mail.ContactPhone)

	// 3. Event producer (optional)
	var producer usecase.EventProducerInterface
	if cfg.Queue.URL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue.URL)
		if err != nil {
			log.Printf("[MAIN] Warning: RabbitMQ unavailable, events disabled: %v", err)
		} else {
			defer rabbitMQ.Close()
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		}
	}

	// 4. UseCases
	submitUC := usecase.NewSubmitInquiryUseCase(inquiryRepo, gateway, composer, producer, cfg.App.EnforceFutureStart)

	// 5. Handlers
	inquiryHandler := handlers.NewInquiryHandler(submitUC, !cfg.IsProduction())
	healthHandler := handlers.NewHealthHandler(gateway)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://consoleforeveryone.com", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/inquiries", inquiryHandler.Submit)
	r.Get("/inquiries/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.App.Port
	log.Printf("Rental inquiry API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
