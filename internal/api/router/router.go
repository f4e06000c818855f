package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloodconnect/backend/config"
	"bloodconnect/backend/internal/api/handler"
	"bloodconnect/backend/internal/api/middleware"
	"bloodconnect/backend/pkg/jwt"
	"bloodconnect/backend/pkg/redis"
)

// Setup initializes and returns the Gin engine.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── static reference data ──
	r.GET("/districts.json", h.Refdata.Districts)
	r.GET("/upazilas.json", h.Refdata.Upazilas)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no authentication; login/register are rate limited)
		auth := v1.Group("/auth")
		{
			loginLimit := middleware.RateLimit(rdb, 10, time.Minute)
			auth.POST("/register", loginLimit, h.Auth.Register)
			auth.POST("/login", loginLimit, h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// public surface: the landing page, donor search, and the funding
		// board work without an account
		v1.GET("/donation-requests/status/pending", h.Request.PublicPending)
		v1.GET("/users/role/:email", h.User.GetRole)
		v1.GET("/search-request", h.Search.Search)
		v1.GET("/search-request/export", h.Search.Export)
		v1.GET("/funds", h.Fund.List)
		v1.POST("/success-payment", h.Fund.ConfirmPayment)
		v1.GET("/ws/donation-requests", h.WS.Subscribe)

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// donation requests
			requests := authorized.Group("/donation-requests")
			{
				requests.POST("", h.Request.Create)
				requests.GET("", h.Request.List)
				requests.GET("/export", middleware.RoleAuth("admin"), h.Export.ExportRequests)
				requests.GET("/:id", h.Request.Get)
				requests.PATCH("/:id", h.Request.Update) // owner or admin/volunteer (service layer check)
				requests.DELETE("/:id", h.Request.Delete)
				requests.GET("/:id/calendar", h.Export.ExportCalendar)
				requests.PATCH("/status/:id", middleware.RoleAuth("admin", "volunteer", "donor"), h.Request.UpdateStatus)
			}

			// user administration
			users := authorized.Group("/users")
			{
				users.GET("", middleware.RoleAuth("admin"), h.User.List)
				users.GET("/:email", h.User.GetByEmail)
				users.PATCH("/:email", h.User.UpdateProfile)
			}
			authorized.PATCH("/update/user/status", middleware.RoleAuth("admin"), h.User.UpdateStatus)
			authorized.PATCH("/update/user/role", middleware.RoleAuth("admin"), h.User.UpdateRole)

			// dashboards
			authorized.GET("/dashboard/stats", middleware.RoleAuth("admin"), h.Dashboard.AdminStats)
			volunteer := authorized.Group("/volunteer")
			volunteer.Use(middleware.RoleAuth("admin", "volunteer"))
			{
				volunteer.GET("/stats", h.Dashboard.VolunteerStats)
				volunteer.GET("/donation-requests", h.Dashboard.VolunteerRequests)
				volunteer.PATCH("/donation-requests/status/:id", h.Request.UpdateStatus)
			}

			// funding
			authorized.POST("/create-payment-checkout", h.Fund.CreateCheckout)
			authorized.GET("/funds/:id/receipt", h.Fund.Receipt)
		}
	}

	return r
}
