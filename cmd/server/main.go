package main

import (
	"log"
	"strconv"

	"emotale/config"
	"emotale/db"
	"emotale/internal/ratelimit"
	"emotale/middlewares"
	"emotale/routes"
	"emotale/services"
	"emotale/utils"
	"emotale/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.prod.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	services.InitGeminiService(cfg)

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := middlewares.InitCasbin(cfg); err != nil {
		log.Fatalf("Failed to initialize RBAC: %v", err)
	}

	// Rate limiting fails open when Redis is down, so this is not fatal.
	if err := ratelimit.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	// Seed the built-in scenario catalog
	utils.SeedScenarios()

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Configure CORS for your frontend (e.g., localhost:5173 for Vite)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/verifyEmail", routes.VerifyEmailRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.POST("/forgotPassword", routes.ForgotPasswordRouteHandler)
	router.POST("/confirmForgotPassword", routes.VerifyForgotPasswordRouteHandler)
	router.POST("/verifyToken", routes.VerifyTokenRouteHandler)
	router.POST("/therapist/signup", routes.TherapistSignupRouteHandler)
	router.POST("/therapist/login", routes.TherapistLoginRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/user/fetchprofile", routes.GetProfileRouteHandler)
		auth.PUT("/user/updateprofile", routes.UpdateProfileRouteHandler)

		auth.GET("/scenarios", routes.ListScenariosRouteHandler)
		auth.GET("/scenarios/:id", routes.GetScenarioRouteHandler)
		auth.POST("/scenarios/recommend", routes.RecommendScenarioRouteHandler)

		auth.POST("/sessions", routes.StartSessionRouteHandler)
		auth.GET("/sessions/:id", routes.GetSessionStateRouteHandler)
		auth.POST("/sessions/:id/emotion", routes.SelectEmotionRouteHandler)
		auth.POST("/sessions/:id/choice", routes.SelectChoiceRouteHandler)
		auth.POST("/sessions/:id/advance", routes.AdvanceSessionRouteHandler)
		auth.POST("/sessions/:id/restart", routes.RestartSessionRouteHandler)
		auth.DELETE("/sessions/:id", routes.EndSessionRouteHandler)

		auth.POST("/companion/message", middlewares.CompanionRateLimit(), routes.CompanionMessageRouteHandler)

		// WebSocket endpoint for live companion chat
		auth.GET("/ws/companion", websocket.CompanionHandler)
	}

	// Therapist routes (local JWT auth + RBAC)
	therapist := router.Group("/therapist")
	therapist.Use(middlewares.TherapistAuthMiddleware())
	{
		therapist.POST("/patients", middlewares.RBACMiddleware("patient", "create"), routes.CreatePatientRouteHandler)
		therapist.GET("/patients", middlewares.RBACMiddleware("patient", "read"), routes.ListPatientsRouteHandler)
		therapist.PUT("/patients/:id", middlewares.RBACMiddleware("patient", "update"), routes.UpdatePatientRouteHandler)
		therapist.DELETE("/patients/:id", middlewares.RBACMiddleware("patient", "delete"), routes.DeletePatientRouteHandler)
		therapist.GET("/patients/:id/progress", middlewares.RBACMiddleware("progress", "read"), routes.GetPatientProgressRouteHandler)
		therapist.GET("/patients/:id/summary", middlewares.RBACMiddleware("progress", "read"), routes.GetPatientProgressSummaryRouteHandler)
		therapist.POST("/scenarios/generate", middlewares.RBACMiddleware("scenario", "generate"), middlewares.GenerationRateLimit(), routes.GenerateScenarioRouteHandler)
	}

	return router
}
