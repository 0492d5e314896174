package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-admin-backend/internal/config"
	"catalog-admin-backend/internal/database"
	"catalog-admin-backend/internal/handler"
	"catalog-admin-backend/internal/middleware"
	"catalog-admin-backend/internal/repository"
	"catalog-admin-backend/internal/service"
	"catalog-admin-backend/internal/storage"
	"catalog-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize the object store for product images
	store, err := storage.NewS3Store(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	// 5. Initialize repositories
	adminRepo := repository.NewAdminRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	tagRepo := repository.NewTagRepo(db)
	providerRepo := repository.NewProviderRepo(db)
	productRepo := repository.NewProductRepo(db)
	imageRepo := repository.NewProductImageRepo(db)
	contentRepo := repository.NewSiteContentRepo(db)

	// 6. Initialize services
	authService := service.NewAuthService(db, adminRepo, auditRepo)
	adminService := service.NewAdminService(db, adminRepo, auditRepo)
	auditService := service.NewAuditService(auditRepo)
	categoryService := service.NewCategoryService(db, categoryRepo, auditRepo)
	tagService := service.NewTagService(db, tagRepo, auditRepo)
	providerService := service.NewProviderService(db, providerRepo, auditRepo)
	productService := service.NewProductService(db, productRepo, imageRepo, categoryRepo, tagRepo, providerRepo, auditRepo, store)
	contentService := service.NewSiteContentService(db, contentRepo, auditRepo)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService, auditService)
	adminHandler := handler.NewAdminHandler(adminService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	tagHandler := handler.NewTagHandler(tagService)
	providerHandler := handler.NewProviderHandler(providerService)
	productHandler := handler.NewProductHandler(productService)
	contentHandler := handler.NewSiteContentHandler(contentService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "catalog-admin-backend",
		})
	})

	api := r.Group("/api")

	// Public catalog routes
	api.GET("/categories", categoryHandler.ListCategories)
	api.GET("/tags", tagHandler.ListTags)
	api.GET("/products", productHandler.ListPublicProducts)
	api.GET("/products/:id", productHandler.GetPublicProduct)
	api.GET("/site-content/:key", contentHandler.GetContent)

	// Auth routes
	api.POST("/auth/login", authHandler.Login)

	auth := api.Group("/auth")
	auth.Use(middleware.AuthMiddleware(adminRepo))
	{
		auth.GET("/me", authHandler.Me)
		auth.GET("/audit", authHandler.ListAuditLogs)

		auth.GET("/admins", adminHandler.ListAdmins)
		auth.POST("/admins", adminHandler.CreateAdmin)
		auth.PUT("/admins/:id", adminHandler.UpdateAdmin)
		auth.PUT("/admins/:id/password", adminHandler.ChangePassword)
		auth.PUT("/admins/:id/toggle", adminHandler.ToggleAdminStatus)
		auth.DELETE("/admins/:id", adminHandler.DeleteAdmin)
	}

	// Admin catalog management routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(adminRepo))
	{
		admin.GET("/categories", categoryHandler.ListCategories)
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		admin.GET("/tags", tagHandler.ListTags)
		admin.POST("/tags", tagHandler.CreateTag)
		admin.PUT("/tags/:id", tagHandler.UpdateTag)
		admin.DELETE("/tags/:id", tagHandler.DeleteTag)

		admin.GET("/providers", providerHandler.ListProviders)
		admin.POST("/providers", providerHandler.CreateProvider)
		admin.PUT("/providers/:id", providerHandler.UpdateProvider)
		admin.DELETE("/providers/:id", providerHandler.DeleteProvider)

		admin.GET("/products", productHandler.ListAdminProducts)
		admin.GET("/products/:id", productHandler.GetAdminProduct)
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.POST("/products/:id/images", productHandler.AddProductImages)
		admin.PUT("/products/:id/images/:imageID/set-primary", productHandler.SetPrimaryProductImage)
		admin.DELETE("/products/:id/images/:imageID", productHandler.DeleteProductImage)

		admin.PUT("/site-content/:key", contentHandler.UpdateContent)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
