// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/domain/newsletter"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/returns"
	"github.com/your-org/storefront-backend/internal/domain/review"
	"github.com/your-org/storefront-backend/internal/domain/template"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/gateway/shopify"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/email"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SetupRoutes wires services and handlers onto the API route groups
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	gateway := shopify.NewClient(cfg.Shopify, logger)
	mailer := email.NewService(cfg)

	templateService := template.NewService(db)
	cartService := cart.NewService(gateway, redisClient, cfg, logger)
	returnsService := returns.NewService(db, mailer, logger)
	reviewService := review.NewService(db, logger)
	catalogService := catalog.NewService(gateway, logger)
	orderService := order.NewService(gateway, templateService, mailer, logger)
	customerService := customer.NewService(gateway, templateService, mailer, cfg, logger)
	newsletterService := newsletter.NewService(db, templateService, mailer, logger)
	userService := user.NewService(db, cfg)
	pdfService := pdf.NewService(cfg)

	cartHandler := handlers.NewCartHandler(cartService, cfg, logger)
	returnsHandler := handlers.NewReturnsHandler(returnsService, pdfService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	orderHandler := handlers.NewOrderHandler(orderService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService, cfg, logger)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, logger)
	userHandler := handlers.NewUserHandler(userService, cfg, logger)
	templateHandler := handlers.NewTemplateHandler(templateService, logger)

	setupStorefrontRoutes(rg, cartHandler, returnsHandler, reviewHandler, customerHandler, orderHandler, newsletterHandler)
	setupAdminRoutes(rg, cfg, returnsHandler, reviewHandler, catalogHandler, orderHandler, userHandler, templateHandler, newsletterHandler)
}

// setupStorefrontRoutes registers the public storefront endpoints. These are
// session-scoped via cookies, never via JWT.
func setupStorefrontRoutes(
	rg *gin.RouterGroup,
	cartHandler *handlers.CartHandler,
	returnsHandler *handlers.ReturnsHandler,
	reviewHandler *handlers.ReviewHandler,
	customerHandler *handlers.CustomerHandler,
	orderHandler *handlers.OrderHandler,
	newsletterHandler *handlers.NewsletterHandler,
) {
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:merchandiseId", cartHandler.RemoveItem)
		cartGroup.POST("/checkout", cartHandler.Checkout)
	}

	rg.POST("/returns", returnsHandler.SubmitReturn)

	reviews := rg.Group("/reviews")
	{
		reviews.POST("", reviewHandler.SubmitReview)
		reviews.GET("/existing", reviewHandler.GetExistingReviews)
	}

	customers := rg.Group("/customers")
	{
		customers.POST("/register", customerHandler.Register)
		customers.POST("/login", customerHandler.Login)
		customers.POST("/logout", customerHandler.Logout)
		customers.GET("/orders", orderHandler.GetCustomerOrders)
	}

	news := rg.Group("/newsletter")
	{
		news.POST("/subscribe", newsletterHandler.Subscribe)
		news.POST("/unsubscribe", newsletterHandler.Unsubscribe)
	}
}

// setupAdminRoutes registers the dashboard endpoints. Login is public;
// everything else requires a team user token.
func setupAdminRoutes(
	rg *gin.RouterGroup,
	cfg *config.Config,
	returnsHandler *handlers.ReturnsHandler,
	reviewHandler *handlers.ReviewHandler,
	catalogHandler *handlers.CatalogHandler,
	orderHandler *handlers.OrderHandler,
	userHandler *handlers.UserHandler,
	templateHandler *handlers.TemplateHandler,
	newsletterHandler *handlers.NewsletterHandler,
) {
	admin := rg.Group("/admin")

	admin.POST("/login", userHandler.Login)

	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/me", userHandler.GetProfile)

		returnsGroup := protected.Group("/returns")
		{
			returnsGroup.GET("", returnsHandler.GetReturns)
			returnsGroup.GET("/:id", returnsHandler.GetReturn)
			returnsGroup.PUT("/:id/status", returnsHandler.UpdateStatus)
			returnsGroup.PUT("/:id/customer", returnsHandler.UpdateCustomerInfo)
			returnsGroup.GET("/:id/slip", returnsHandler.DownloadSlip)
		}

		protected.PUT("/return-items/:itemId", returnsHandler.UpdateProductInfo)

		protected.GET("/reviews", reviewHandler.GetReviews)

		protected.POST("/products", catalogHandler.CreateProduct)

		protected.POST("/orders/cancel", orderHandler.CancelOrder)

		users := protected.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		templates := protected.Group("/templates")
		{
			templates.GET("", templateHandler.GetTemplates)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.POST("", templateHandler.CreateTemplate)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		news := protected.Group("/newsletter")
		{
			news.GET("/subscribers", newsletterHandler.GetSubscribers)
			news.POST("/send", newsletterHandler.Send)
		}
	}
}
