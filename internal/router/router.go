package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gstbill/internal/config"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Company    *handler.CompanyHandler
	Client     *handler.ClientHandler
	Product    *handler.ProductHandler
	BankDetail *handler.BankDetailHandler
	Invoice    *handler.InvoiceHandler
	Storage    *handler.StorageHandler
	Health     *handler.HealthHandler
}

// New assembles the gin engine with all routes and middleware.
func New(cfg *config.Config, auth service.AuthService, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/healthz", h.Health.Live)
	r.GET("/readyz", h.Health.Ready)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(auth, cfg.JWT.CookieName))
	{
		protected.GET("/company", h.Company.Get)
		protected.PUT("/company", h.Company.Update)

		clients := protected.Group("/clients")
		{
			clients.POST("", h.Client.Create)
			clients.GET("", h.Client.List)
			clients.GET("/:id", h.Client.Get)
			clients.PUT("/:id", h.Client.Update)
			clients.DELETE("/:id", h.Client.Delete)
		}

		products := protected.Group("/products")
		{
			products.POST("", h.Product.Create)
			products.GET("", h.Product.List)
			products.GET("/:id", h.Product.Get)
			products.PUT("/:id", h.Product.Update)
			products.DELETE("/:id", h.Product.Delete)
		}

		bankDetails := protected.Group("/bank-details")
		{
			bankDetails.POST("", h.BankDetail.Create)
			bankDetails.GET("", h.BankDetail.List)
			bankDetails.GET("/:id", h.BankDetail.Get)
			bankDetails.PUT("/:id", h.BankDetail.Update)
			bankDetails.DELETE("/:id", h.BankDetail.Delete)
		}

		invoices := protected.Group("/invoices")
		{
			invoices.POST("", h.Invoice.Create)
			invoices.GET("", h.Invoice.List)
			invoices.GET("/next-number", h.Invoice.NextNumber)
			invoices.GET("/validate-number", h.Invoice.ValidateNumber)
			invoices.GET("/export", h.Invoice.Export)
			invoices.GET("/:id", h.Invoice.Get)
			invoices.GET("/:id/details", h.Invoice.Get)
			invoices.PUT("/:id", h.Invoice.Update)
			invoices.PATCH("/:id/status", h.Invoice.SetStatus)
			invoices.POST("/:id/email", h.Invoice.SendEmail)
		}

		storage := protected.Group("/storage")
		{
			storage.POST("/upload", h.Storage.Upload)
			storage.POST("/sign-url", h.Storage.SignURL)
			storage.GET("/sign-url", h.Storage.SignURL)
		}
	}

	return r
}
