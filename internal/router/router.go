package router

import (
	"time"

	"nuvita/config"
	"nuvita/internal/handler"
	"nuvita/internal/middleware"
	"nuvita/internal/repository"
	"nuvita/internal/service"
	"nuvita/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	packageRepo := repository.NewPackageRepository(db)
	productRepo := repository.NewProductRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, adminRepo, sessionRepo)
	catalogSvc := service.NewCatalogService(packageRepo, productRepo)
	notifySvc := service.NewNotifyService(&cfg.Notify)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, authSvc, auditRepo)
	packageHandler := handler.NewPackageHandler(catalogSvc)
	productHandler := handler.NewProductHandler(catalogSvc)
	adminHandler := handler.NewAdminHandler(authSvc, auditRepo)
	settingHandler := handler.NewSettingHandler(settingRepo)
	inquiryHandler := handler.NewInquiryHandler(inquiryRepo, notifySvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	sessionMw := middleware.SessionRequired(&cfg.Session, authSvc)
	superMw := middleware.SuperAdminRequired(authSvc)
	loginLimiter := middleware.NewInMemoryRateLimiter(10, time.Minute)

	api := r.Group("/api/v1")
	{
		// Public catalog and site surface
		api.GET("/packages", packageHandler.List)
		api.GET("/packages/:id", packageHandler.Get)
		api.GET("/packages/:id/products", packageHandler.ListProducts)
		api.GET("/packages/:id/totals", packageHandler.Totals)
		api.GET("/packages/theme/:theme", packageHandler.ListByTheme)
		api.GET("/settings", settingHandler.List)
		api.POST("/contact", inquiryHandler.Create)

		// Session lifecycle
		api.POST("/admin/login", middleware.RateLimit(loginLimiter), authHandler.Login)
		api.POST("/admin/logout", authHandler.Logout)
		api.GET("/admin/status", authHandler.Status)

		admin := api.Group("/admin")
		admin.Use(sessionMw)
		{
			admin.POST("/packages", packageHandler.Create)
			admin.PUT("/packages/:id", packageHandler.Update)
			admin.DELETE("/packages/:id", packageHandler.Delete)

			admin.POST("/package-products", productHandler.Create)
			admin.PUT("/package-products/:id", productHandler.Update)
			admin.PATCH("/package-products/:id/quantity", productHandler.UpdateQuantity)
			admin.DELETE("/package-products/:id", productHandler.Delete)

			admin.PUT("/settings/:key", settingHandler.Set)

			admin.GET("/inquiries", inquiryHandler.List)
			admin.PATCH("/inquiries/:id/handled", inquiryHandler.MarkHandled)

			admin.GET("/admins", adminHandler.List)
			admin.POST("/admins", adminHandler.Create)
			admin.PATCH("/password", authHandler.ChangePassword)
			admin.DELETE("/admins/:id", superMw, adminHandler.Delete)

			admin.POST("/upload/image", uploadHandler.UploadImage)
		}
	}

	return r
}
