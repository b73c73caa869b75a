package routes

import (
	"net/http"
	"time"

	"lenshub/handlers"
	"lenshub/middleware"
	"lenshub/models"
	"lenshub/services/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Sessions session.Store

	Users         *handlers.UserHandler
	Photographers *handlers.PhotographerHandler
	Bookings      *handlers.BookingHandler
	AddOns        *handlers.AddOnHandler
	Packages      *handlers.PackageHandler
	Categories    *handlers.SyncedHandler[models.Category]
	CategoryAdmin *handlers.CategoryAdminHandler
	Coupons       *handlers.SyncedHandler[models.Coupon]
	Gifts         *handlers.SyncedHandler[models.Gift]
	Tickets       *handlers.TicketHandler
}

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	auth := middleware.JWTAuthMiddleware(h.Sessions)
	admin := middleware.RequireRole(models.RoleAdmin)

	users := r.Group("/api/users")
	{
		users.POST("/register", h.Users.RegisterHandler)
		users.POST("/login", h.Users.LoginHandler)

		users.Use(auth)
		users.GET("/me", h.Users.MeHandler)
		users.POST("/logout", h.Users.LogoutHandler)
		users.GET("", admin, h.Users.ListUsersHandler)
		users.PATCH("/:id", admin, h.Users.UpdateUserHandler)
		users.DELETE("/:id", admin, h.Users.DeleteUserHandler)
	}

	phot := r.Group("/api/photographers")
	{
		// Public storefront endpoints.
		phot.GET("", h.Photographers.ListHandler)
		phot.GET("/search", h.Photographers.SearchHandler)
		phot.GET("/:id", h.Photographers.GetByIDHandler)

		protected := phot.Group("")
		protected.Use(auth)
		protected.POST("", h.Photographers.RegisterHandler)
		protected.PATCH("/:id", h.Photographers.UpdateHandler)
		protected.DELETE("/:id", admin, h.Photographers.DeleteHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.POST("/quote", h.Bookings.QuoteHandler)

		bookings.Use(auth)
		bookings.GET("", h.Bookings.ListMyBookings)
		bookings.POST("/sessions", h.Bookings.InitiateSession)
		bookings.GET("/sessions/:id", h.Bookings.GetSession)
		bookings.PATCH("/sessions/:id", h.Bookings.UpdateSession)
		bookings.POST("/sessions/:id/confirm", h.Bookings.ConfirmBooking)
		bookings.DELETE("/sessions/:id", h.Bookings.CancelSession)
		bookings.PATCH("/:id/status", admin, h.Bookings.UpdateBookingStatus)
	}

	addons := r.Group("/api/addons")
	{
		addons.GET("", h.AddOns.ListHandler)

		addons.Use(auth, admin)
		addons.POST("", h.AddOns.CreateHandler)
		addons.PATCH("/:id", h.AddOns.UpdateHandler)
		addons.POST("/:id/toggle", h.AddOns.ToggleHandler)
		addons.DELETE("/:id", h.AddOns.DeleteHandler)
	}

	packages := r.Group("/api/packages")
	{
		packages.GET("", h.Packages.ListHandler)

		packages.Use(auth, admin)
		packages.POST("", h.Packages.CreateHandler)
		packages.PATCH("/:id", h.Packages.UpdateHandler)
		packages.DELETE("/:id", h.Packages.DeleteHandler)
	}

	categories := r.Group("/api/categories")
	{
		categories.GET("", h.Categories.ListHandler)

		categories.Use(auth, admin)
		categories.POST("", h.CategoryAdmin.CreateHandler)
		categories.PUT("/:id", h.CategoryAdmin.UpdateHandler)
		categories.POST("/refresh", h.Categories.RefreshHandler)
		categories.POST("/:id/toggle", h.Categories.ToggleHandler)
	}

	coupons := r.Group("/api/coupons")
	{
		coupons.GET("", h.Coupons.ListHandler)

		coupons.Use(auth, admin)
		coupons.POST("/refresh", h.Coupons.RefreshHandler)
		coupons.POST("/:id/toggle", h.Coupons.ToggleHandler)
	}

	gifts := r.Group("/api/gifts")
	{
		gifts.GET("", h.Gifts.ListHandler)

		gifts.Use(auth, admin)
		gifts.POST("/refresh", h.Gifts.RefreshHandler)
		gifts.POST("/:id/toggle", h.Gifts.ToggleHandler)
	}

	tickets := r.Group("/api/tickets")
	{
		tickets.Use(auth)
		tickets.POST("", h.Tickets.OpenHandler)
		tickets.GET("", h.Tickets.ListHandler)
		tickets.GET("/:id", h.Tickets.GetHandler)
		tickets.POST("/:id/reply", h.Tickets.ReplyHandler)
		tickets.POST("/:id/close", h.Tickets.CloseHandler)
	}
}
