package routes

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"luctreport/auth"
	"luctreport/config"
	"luctreport/handlers"
	"luctreport/middleware"
	"luctreport/store"
)

// NewRouter builds the engine with middleware and every API route
func NewRouter(cfg *config.Config, s store.Store, tokens *auth.TokenManager, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	middleware.ApplyMiddleware(router, logger)

	SetupRoutes(router, handlers.New(s, tokens, logger), tokens, cfg.DebugRoutes)
	return router
}

// SetupRoutes configures the API routes
func SetupRoutes(r *gin.Engine, h *handlers.Handler, tokens *auth.TokenManager, debugRoutes bool) {
	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthHandler)

	// Public routes
	r.POST("/api/register", h.RegisterHandler)
	r.POST("/api/login", h.LoginHandler)
	if debugRoutes {
		r.GET("/api/debug-users", h.DebugUsersHandler)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware(tokens))

	protected.POST("/verify-token", h.VerifyTokenHandler)

	// Reports and ratings
	protected.POST("/submit-report", h.SubmitReportHandler)
	protected.POST("/submit-rating", h.SubmitRatingHandler)
	protected.GET("/lecturer-reports", h.GetLecturerReportsHandler)
	protected.GET("/student-ratings", h.GetStudentRatingsHandler)
	protected.GET("/my-ratings", h.GetMyRatingsHandler)

	// Courses
	protected.GET("/courses", h.GetCoursesHandler)
	protected.GET("/courses/:id", h.GetCourseHandler)
	protected.POST("/courses", h.CreateCourseHandler)
	protected.PUT("/courses/:id", h.UpdateCourseHandler)
	protected.DELETE("/courses/:id", h.DeleteCourseHandler)
	protected.POST("/courses/:id/assign/:lecturerId", h.AssignLecturerHandler)

	// Lecturers
	protected.GET("/lecturers", h.GetLecturersHandler)
	protected.GET("/lecturers/:id", h.GetLecturerHandler)
	protected.POST("/lecturers", h.CreateLecturerHandler)
	protected.PUT("/lecturers/:id", h.UpdateLecturerHandler)
	protected.DELETE("/lecturers/:id", h.DeleteLecturerHandler)
}
