package http

import (
	"os"
	"strconv"
	"time"

	"focusflow/internal/config"
	"focusflow/internal/http/handlers"
	"focusflow/internal/http/middleware"
	"focusflow/internal/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full API surface onto the gin engine. The hub is
// registered both as the /ws endpoint and (by the caller) as the notifier
// the services publish progression events through.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, hub *ws.Hub, cfg *config.Config) {
	healthHandler := handlers.NewHealthHandler(h.DB, cfg.Version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 10
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, cfg, authRateLimit, authRateWindow)

	// WebSocket for progression events. In-process limiter here: connection
	// churn must be capped even when Redis is down.
	r.GET("/ws", middleware.SimpleRateLimit(30, time.Minute), ws.HandleWS(hub))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config, authRateLimit int, authRateWindow time.Duration) {
	// Auth
	authRL := middleware.RedisRateLimit(authRateLimit, authRateWindow)
	api.POST("/auth/signup", authRL, h.Signup)
	api.POST("/auth/login", authRL, h.Login)

	// Daily theme is public
	api.GET("/theme", h.Theme)

	// User profile
	api.GET("/me", middleware.JWT(), h.Me)
	api.GET("/dashboard", middleware.JWT(), h.Dashboard)
	api.GET("/inventory", middleware.JWT(), h.Inventory)

	// Completion endpoints carry a per-user limiter on top of the IP one
	activityRL := middleware.ActivityRateLimit(cfg.ActivityRateLimit, time.Duration(cfg.ActivityRateWindow)*time.Second)

	// Tasks
	api.POST("/tasks", middleware.JWT(), h.CreateTask)
	api.GET("/tasks", middleware.JWT(), h.ListTasks)
	api.PUT("/tasks/:id", middleware.JWT(), h.UpdateTask)
	api.DELETE("/tasks/:id", middleware.JWT(), h.DeleteTask)
	api.PATCH("/tasks/:id/complete", middleware.JWT(), activityRL, h.CompleteTask)

	// Focus sessions
	api.POST("/sessions", middleware.JWT(), h.CreateSession)
	api.GET("/sessions", middleware.JWT(), h.ListSessions)
	api.PATCH("/sessions/:id/complete", middleware.JWT(), activityRL, h.CompleteSession)

	// Achievements and badges
	api.GET("/achievements", middleware.JWT(), h.ListAchievements)
	api.GET("/badges", middleware.JWT(), h.ListBadges)
	api.GET("/badges/catalog", h.BadgeCatalog)

	// Referral system
	referral := api.Group("/referral")
	{
		referral.GET("/stats", middleware.JWT(), h.ReferralStats)
		referral.GET("/history", middleware.JWT(), h.ReferralHistory)
		referral.GET("/validate/:code", h.ValidateReferral)
	}

	// Subscriptions and payments
	api.GET("/subscription/packages", h.Packages)
	api.POST("/subscription/checkout", middleware.JWT(), h.Checkout)
	api.GET("/subscription/status/:session_id", middleware.JWT(), h.PaymentStatus)

	// Withdrawals
	api.GET("/withdrawals", middleware.JWT(), h.ListWithdrawals)
	api.POST("/withdrawals/request", middleware.JWT(), h.RequestWithdrawal)

	// Shop
	api.GET("/shop/products", h.Products)
	api.POST("/shop/purchase", middleware.JWT(), h.PurchaseProduct)

	// Custom timers (premium only, enforced in the handler)
	api.POST("/custom-timers", middleware.JWT(), h.CreateCustomTimer)
	api.GET("/custom-timers", middleware.JWT(), h.ListCustomTimers)
	api.DELETE("/custom-timers/:id", middleware.JWT(), h.DeleteCustomTimer)
}
