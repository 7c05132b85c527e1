package routes

import (
	"time"

	"pharmacy-api/config"
	"pharmacy-api/handlers"
	"pharmacy-api/middleware"
	"pharmacy-api/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.RequestLogger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.New(corsConfig(config.App.CORSOrigins)))

	r.Static("/uploads", config.App.UploadDir)
	r.GET("/health", handlers.Health)
	r.GET("/", handlers.Welcome)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/signup", handlers.Signup)
		public.POST("/auth/login", handlers.Login)

		public.GET("/doctors", handlers.ListDoctors)
		public.GET("/doctors/:id", handlers.GetDoctor)
		public.GET("/medicines", handlers.ListMedicines)
		public.GET("/medicines/:id", handlers.GetMedicine)

		public.POST("/contact", handlers.SaveContact)
		public.POST("/bookings", handlers.CreateBooking)

		public.GET("/validation/rules", handlers.ValidationRules)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.Me)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/doctors", handlers.CreateDoctor)
		admin.PUT("/doctors/:id", handlers.UpdateDoctor)
		admin.DELETE("/doctors/:id", handlers.DeleteDoctor)

		admin.POST("/medicines", handlers.CreateMedicine)
		admin.PUT("/medicines/:id", handlers.UpdateMedicine)
		admin.DELETE("/medicines/:id", handlers.DeleteMedicine)
		admin.POST("/uploads/medicines", handlers.UploadMedicineImage)

		admin.GET("/contact", handlers.ListContacts)
		admin.GET("/bookings", handlers.ListBookings)

		admin.GET("/admin/summary", handlers.AdminSummary)
		admin.GET("/admin/users", handlers.AdminListUsers)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
