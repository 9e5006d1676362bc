package router

import (
	"time"

	"puntadas/config"
	"puntadas/internal/domain"
	"puntadas/internal/handler"
	"puntadas/internal/middleware"
	"puntadas/internal/repository"
	"puntadas/internal/service"
	"puntadas/pkg/bold"
	"puntadas/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, rdb *redis.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	commRepo := repository.NewCommunicationRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	completionRepo := repository.NewCompletionNotificationRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	notifSvc := service.NewNotificationService(&cfg.Notify)
	workflowSvc := service.NewWorkflowService(customerRepo, requestRepo, completionRepo, notifSvc)
	gateway := bold.NewClient(cfg.Bold.CheckoutBaseURL, cfg.Bold.APIKey)
	paymentSvc := service.NewPaymentService(paymentRepo, requestRepo, customerRepo, notifSvc, gateway)
	trackingSvc := service.NewTrackingService(requestRepo, trackingRepo, cfg.Tracking.PublicBaseURL)

	// Handlers
	customerHandler := handler.NewCustomerHandler(customerRepo)
	requestHandler := handler.NewRequestHandler(workflowSvc, requestRepo, completionRepo)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, paymentRepo)
	webhookHandler := handler.NewPaymentWebhookHandler(paymentSvc, &cfg.Bold)
	commHandler := handler.NewCommunicationHandler(commRepo, requestRepo)
	trackingHandler := handler.NewTrackingHandler(trackingSvc)
	galleryHandler := handler.NewGalleryHandler(galleryRepo, promotionRepo)
	promotionHandler := handler.NewPromotionHandler(promotionRepo)
	adminHandler := handler.NewAdminHandler(adminRepo, requestRepo, paymentRepo, cfg)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin)
	cacheMw := middleware.CacheResponses(rdb, cfg.Redis.CacheTTL)

	api := r.Group("/api/v1")
	{
		api.POST("/customers", customerHandler.Register)
		api.GET("/customers", customerHandler.GetByEmail)
		api.GET("/customers/:id", customerHandler.GetByID)
		api.GET("/customers/:id/requests", requestHandler.ListByCustomer)
		api.GET("/referrals/:code", customerHandler.GetByReferralCode)

		api.POST("/requests", requestHandler.Create)
		api.GET("/requests/:id", requestHandler.GetByID)
		api.GET("/requests/:id/communications", commHandler.ListByRequest)
		api.GET("/requests/:id/notifications", requestHandler.ListNotifications)
		api.GET("/requests/:id/payments", paymentHandler.ListByRequest)
		api.GET("/requests/:id/qr", trackingHandler.GetQR)
		api.POST("/communications", commHandler.Create)

		api.POST("/payments", paymentHandler.Create)
		api.POST("/payments/:id/attach", paymentHandler.Attach)
		api.POST("/webhooks/bold", webhookHandler.Handle)

		api.GET("/track/:code", trackingHandler.TrackByCode)

		gallery := api.Group("/gallery")
		gallery.Use(cacheMw)
		{
			gallery.GET("", galleryHandler.List)
			gallery.GET("/highlighted", galleryHandler.ListHighlighted)
			gallery.GET("/categories", galleryHandler.ListCategories)
			gallery.GET("/category/:category", galleryHandler.ListByCategory)
		}
		api.GET("/promotions", cacheMw, promotionHandler.ListActive)

		api.POST("/admin/login", adminHandler.Login)

		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/requests", requestHandler.ListAll)
			admin.PATCH("/requests/:id", requestHandler.Update)
			admin.POST("/requests/:id/ready", requestHandler.MarkReady)
			admin.POST("/requests/:id/qr", trackingHandler.GenerateQR)
			admin.PATCH("/requests/:id/qr", trackingHandler.UpdateQRStatus)

			admin.POST("/gallery", galleryHandler.CreateItem)
			admin.PATCH("/gallery/:id", galleryHandler.UpdateItem)
			admin.DELETE("/gallery/:id", galleryHandler.DeleteItem)
			admin.POST("/gallery/categories", galleryHandler.CreateCategory)
			admin.PATCH("/gallery/categories/:id", galleryHandler.UpdateCategory)
			admin.POST("/gallery/upload", uploadHandler.UploadGalleryImage)

			admin.GET("/promotions", promotionHandler.ListAll)
			admin.POST("/promotions", promotionHandler.Create)
			admin.PATCH("/promotions/:id", promotionHandler.Update)
			admin.DELETE("/promotions/:id", promotionHandler.Delete)
		}
		api.POST("/admin/admins", authMw, middleware.RequireRole(domain.RoleSuperAdmin), adminHandler.CreateAdmin)
		api.GET("/admin/dashboard", authMw,
			middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleAccountant),
			adminHandler.Dashboard)

		api.POST("/uploads/reference", uploadHandler.UploadReferenceImage)
	}

	return r
}
