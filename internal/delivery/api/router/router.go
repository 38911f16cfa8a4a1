// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/router/handler"
	"geekstore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	ProductHandler   *handler.ProductHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	PaymentHandler   *handler.PaymentHandler
	AddressHandler   *handler.AddressHandler
	WishlistHandler  *handler.WishlistHandler
	ComplaintHandler *handler.ComplaintHandler
	MediaHandler     *handler.MediaHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	productHandler   *handler.ProductHandler
	catalogHandler   *handler.CatalogHandler
	orderHandler     *handler.OrderHandler
	paymentHandler   *handler.PaymentHandler
	addressHandler   *handler.AddressHandler
	wishlistHandler  *handler.WishlistHandler
	complaintHandler *handler.ComplaintHandler
	mediaHandler     *handler.MediaHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userHandler:      params.UserHandler,
		productHandler:   params.ProductHandler,
		catalogHandler:   params.CatalogHandler,
		orderHandler:     params.OrderHandler,
		paymentHandler:   params.PaymentHandler,
		addressHandler:   params.AddressHandler,
		wishlistHandler:  params.WishlistHandler,
		complaintHandler: params.ComplaintHandler,
		mediaHandler:     params.MediaHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.GET("/confirm", r.authHandler.ConfirmAccount)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/password/recover", r.authHandler.RecoverPassword)
		authGroup.POST("/verify-recovery-code", r.authHandler.VerifyRecoveryCode)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)
	}

	// Profile and saved addresses of the caller
	meGroup := apiV1.Group("/users/me")
	meGroup.Use(authenticate)
	{
		meGroup.GET("", r.userHandler.GetProfile)
		meGroup.PUT("", r.userHandler.UpdateProfile)
		meGroup.PUT("/password", r.userHandler.ChangePassword)

		meGroup.GET("/addresses", r.addressHandler.ListAddresses)
		meGroup.POST("/addresses", r.addressHandler.CreateAddress)
		meGroup.PUT("/addresses/:id", r.addressHandler.UpdateAddress)
		meGroup.DELETE("/addresses/:id", r.addressHandler.DeleteAddress)
	}

	// User back office
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(authenticate, adminOnly)
	{
		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.GET("/users/:id", r.userHandler.GetUser)
		adminGroup.POST("/users", r.userHandler.CreateUser)
		adminGroup.PUT("/users/:id", r.userHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.userHandler.DeleteUser)
	}

	// Catalog: reads are public, writes need the admin role
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/featured", r.productHandler.GetFeaturedProduct)
		productsGroup.GET("/category/:categoryId", r.productHandler.ListProductsByCategory)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.POST("", r.productHandler.CreateProduct, authenticate, adminOnly)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, authenticate, adminOnly)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, authenticate, adminOnly)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.catalogHandler.ListCategories)
		categoriesGroup.GET("/:id", r.catalogHandler.GetCategory)
		categoriesGroup.POST("", r.catalogHandler.CreateCategory, authenticate, adminOnly)
		categoriesGroup.PUT("/:id", r.catalogHandler.UpdateCategory, authenticate, adminOnly)
		categoriesGroup.DELETE("/:id", r.catalogHandler.DeleteCategory, authenticate, adminOnly)
	}

	brandsGroup := apiV1.Group("/brands")
	{
		brandsGroup.GET("", r.catalogHandler.ListBrands)
		brandsGroup.GET("/:id", r.catalogHandler.GetBrand)
		brandsGroup.POST("", r.catalogHandler.CreateBrand, authenticate, adminOnly)
		brandsGroup.PUT("/:id", r.catalogHandler.UpdateBrand, authenticate, adminOnly)
		brandsGroup.DELETE("/:id", r.catalogHandler.DeleteBrand, authenticate, adminOnly)
	}

	ordersGroup := apiV1.Group("/orders")
	ordersGroup.Use(authenticate)
	{
		ordersGroup.GET("/me", r.orderHandler.ListMyOrders)
		ordersGroup.POST("/create-manual", r.orderHandler.CreateManualOrder)
		ordersGroup.GET("/admin/all", r.orderHandler.ListAllOrders, adminOnly)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus, adminOnly)
		ordersGroup.PUT("/:id/tracking", r.orderHandler.AddTracking, adminOnly)
	}

	paymentsGroup := apiV1.Group("/payments")
	paymentsGroup.Use(authenticate)
	{
		paymentsGroup.POST("/process_payment", r.paymentHandler.ProcessPayment)
		paymentsGroup.GET("/yape/qr", r.paymentHandler.GenerateYapeQR)
	}

	wishlistGroup := apiV1.Group("/wishlist")
	wishlistGroup.Use(authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.ListWishlist)
		wishlistGroup.POST("/:productId", r.wishlistHandler.ToggleProduct)
	}

	// Anyone may file a complaint; only admins read and resolve them
	complaintsGroup := apiV1.Group("/complaints")
	{
		complaintsGroup.POST("", r.complaintHandler.FileComplaint)
		complaintsGroup.GET("", r.complaintHandler.ListComplaints, authenticate, adminOnly)
		complaintsGroup.PATCH("/:id/resolver", r.complaintHandler.SetResolved, authenticate, adminOnly)
	}

	mediaGroup := apiV1.Group("/media")
	mediaGroup.Use(authenticate, adminOnly)
	{
		mediaGroup.POST("/upload", r.mediaHandler.UploadImage)
	}
}
