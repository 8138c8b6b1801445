// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
	"github.com/your-org/storefront-backend/internal/domain/upload"
	redisdb "github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/email"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SetupRoutes wires every storefront and admin route onto the API
// group. Services are constructed once here and shared by the handlers
// that need them.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redisdb.Client, cfg *config.Config) {
	// Domain services
	catalogService := catalog.NewService(db, cfg)
	categoryService := catalog.NewCategoryService(db, cfg)
	cartStore := cart.NewStore(redisClient, cfg.Cart.TTL)
	cartService := cart.NewService(cartStore, catalogService, cfg)
	orderService := order.NewService(db, cfg)
	checkoutService := checkout.NewService(cfg, cartService, orderService)
	paymentService := payment.NewStripeService(cfg, orderService)
	uploadService := upload.NewService(cfg)
	emailService := email.NewEmailService(cfg)
	pdfService := pdf.NewService(cfg)

	// Handlers
	productHandler := handlers.NewProductHandler(catalogService, cfg)
	categoryHandler := handlers.NewCategoryHandler(categoryService, cfg)
	cartHandler := handlers.NewCartHandler(cartService, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, emailService, cfg)
	orderHandler := handlers.NewOrderHandler(orderService, cfg)
	customOrderHandler := handlers.NewCustomOrderHandler(orderService, emailService, cfg)
	paymentHandler := handlers.NewPaymentHandler(paymentService, cfg)
	uploadHandler := handlers.NewUploadHandler(uploadService, cfg)
	metaHandler := handlers.NewMetaHandler(cfg)
	authHandler := handlers.NewAuthHandler(cfg)
	invoiceHandler := handlers.NewInvoiceHandler(orderService, pdfService, cfg)

	// Catalog (public)
	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
	}

	// Cart (session-keyed, public)
	cartRoutes := rg.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
		cartRoutes.GET("/count", cartHandler.GetCount)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
	}

	// Checkout (public)
	checkoutRoutes := rg.Group("/checkout")
	{
		checkoutRoutes.GET("/summary", checkoutHandler.GetSummary)
		checkoutRoutes.POST("", checkoutHandler.PlaceOrder)
	}

	// Order lookup by number (public)
	rg.GET("/orders/:number", orderHandler.GetOrderByNumber)

	// Custom orders (public create)
	rg.POST("/custom-orders", customOrderHandler.Create)

	// Design uploads (public)
	rg.POST("/uploads/design", uploadHandler.UploadDesignImage)

	// Payment (public)
	paymentRoutes := rg.Group("/payment")
	{
		paymentRoutes.POST("/create-intent", paymentHandler.CreateIntent)
		paymentRoutes.POST("/confirm", paymentHandler.Confirm)
	}

	// Storefront reference data (public)
	meta := rg.Group("/meta")
	{
		meta.GET("/fonts", metaHandler.GetFonts)
		meta.GET("/sizes", metaHandler.GetSizes)
		meta.GET("/colors", metaHandler.GetColors)
		meta.GET("/shirt-styles", metaHandler.GetShirtStyles)
	}

	// Admin
	admin := rg.Group("/admin")
	admin.POST("/login", authHandler.Login)

	protected := admin.Group("")
	protected.Use(middleware.AdminMiddleware(cfg))
	{
		protected.POST("/products", productHandler.CreateProduct)
		protected.PUT("/products/:id", productHandler.UpdateProduct)
		protected.DELETE("/products/:id", productHandler.DeleteProduct)

		protected.POST("/categories", categoryHandler.CreateCategory)

		protected.GET("/orders", orderHandler.GetOrders)
		protected.GET("/orders/:id", orderHandler.GetOrder)
		protected.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
		protected.GET("/orders/:id/invoice", invoiceHandler.DownloadInvoice)

		protected.GET("/custom-orders", customOrderHandler.List)
		protected.GET("/custom-orders/:id", customOrderHandler.Get)
		protected.PUT("/custom-orders/:id/status", customOrderHandler.UpdateStatus)
	}
}
