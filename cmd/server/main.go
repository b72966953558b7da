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

	"github.com/kebo-sukses/calius-digital/internal/api"
	"github.com/kebo-sukses/calius-digital/internal/api/handler"
	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/app/worker"
	"github.com/kebo-sukses/calius-digital/internal/common/security"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"
	"github.com/kebo-sukses/calius-digital/internal/platform/cdn"
	"github.com/kebo-sukses/calius-digital/internal/platform/config"
	"github.com/kebo-sukses/calius-digital/internal/platform/database"
	"github.com/kebo-sukses/calius-digital/internal/platform/mail"
	"github.com/kebo-sukses/calius-digital/internal/platform/payment"
	"github.com/kebo-sukses/calius-digital/internal/platform/queue"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to the database: %v", err)
	}
	defer db.Close()

	rdb, err := queue.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	// Repositories
	userRepo := repository.NewMongoUserRepository(db.DB)
	serviceRepo := repository.NewMongoServiceRepository(db.DB)
	templateRepo := repository.NewMongoTemplateRepository(db.DB)
	portfolioRepo := repository.NewMongoPortfolioRepository(db.DB)
	blogRepo := repository.NewMongoBlogRepository(db.DB)
	testimonialRepo := repository.NewMongoTestimonialRepository(db.DB)
	pricingRepo := repository.NewMongoPricingRepository(db.DB)
	contactRepo := repository.NewMongoContactRepository(db.DB)
	settingsRepo := repository.NewMongoSettingsRepository(db.DB)
	txRepo := repository.NewMongoTransactionRepository(db.DB)
	notificationRepo := repository.NewMongoNotificationRepository(db.DB)

	// Platform clients. The nil-tolerant constructors let the server come up
	// with providers unconfigured; the affected endpoints report it.
	tokenManager := security.NewTokenManager(cfg.JWTKey, cfg.JWTExp)
	notificationQueue := queue.NewNotificationQueue(rdb, cfg.NotificationQueueName)
	mailer := mail.NewResendMailer(cfg.ResendAPIKey)
	if mailer == nil {
		log.Println("WARN: RESEND_API_KEY not set, email delivery disabled")
	}
	var gateway payment.SnapGateway
	if cfg.MidtransServerKey != "" {
		gateway = payment.NewSnapClient(cfg.MidtransServerKey, cfg.MidtransIsProduction)
	} else {
		log.Println("WARN: MIDTRANS_SERVER_KEY not set, checkout disabled")
	}
	cdnStore, err := cdn.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize Cloudinary: %v", err)
	}
	if cdnStore == nil {
		log.Println("WARN: Cloudinary credentials not set, uploads disabled")
	}

	// Services
	authService := service.NewAuthService(userRepo, tokenManager)
	notificationService := service.NewNotificationService(
		notificationRepo, txRepo, notificationQueue, mailer,
		cfg.AdminEmail, cfg.SenderEmail, cfg.SiteBaseURL,
	)
	paymentService := service.NewPaymentService(gateway, txRepo)
	webhookService := service.NewWebhookService(cfg.MidtransServerKey, txRepo, notificationService)
	statsService := service.NewStatsService(templateRepo, portfolioRepo, blogRepo, contactRepo, txRepo)
	uploadService := service.NewUploadService(cdnStore)

	router := api.NewRouter(tokenManager, userRepo, api.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Services:     handler.NewServiceHandler(serviceRepo),
		Templates:    handler.NewTemplateHandler(templateRepo),
		Portfolio:    handler.NewPortfolioHandler(portfolioRepo),
		Blog:         handler.NewBlogHandler(blogRepo),
		Testimonials: handler.NewTestimonialHandler(testimonialRepo),
		Pricing:      handler.NewPricingHandler(pricingRepo),
		Contacts:     handler.NewContactHandler(contactRepo),
		Settings:     handler.NewSettingsHandler(settingsRepo),
		Stats:        handler.NewStatsHandler(statsService),
		Payment:      handler.NewPaymentHandler(paymentService, cfg.MidtransClientKey, cfg.MidtransIsProduction),
		Webhook:      handler.NewWebhookHandler(webhookService),
		Upload:       handler.NewUploadHandler(uploadService),
		Export:       handler.NewExportHandler(contactRepo, txRepo, templateRepo, portfolioRepo, blogRepo),
		Sitemap:      handler.NewSitemapHandler(serviceRepo, templateRepo, blogRepo, cfg.SiteBaseURL),
	})

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	notificationWorker := worker.NewNotificationWorker(rdb, cfg.NotificationQueueName, notificationRepo, notificationQueue, notificationService)
	go notificationWorker.Start(workerCtx)

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	go func() {
		log.Printf("INFO: Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: Could not listen on port %s: %v", cfg.APIPort, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("INFO: Shutting down server...")

	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("INFO: Server exited gracefully.")
}
