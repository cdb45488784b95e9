package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yeetaryan/StackIt/config"
	"github.com/yeetaryan/StackIt/handler"
	"github.com/yeetaryan/StackIt/middleware"
	"github.com/yeetaryan/StackIt/repository"
	"github.com/yeetaryan/StackIt/services"
	"github.com/yeetaryan/StackIt/usecase"
	"github.com/yeetaryan/StackIt/utils"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()
}

// savedSlot picks the durable slot for the saved-question list. Redis
// when configured, a local JSON file otherwise. Startup never fails on
// slot problems: the saved set just starts empty.
func savedSlot() repository.SavedSlot {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		slot, err := services.NewRedisSlot(redisURL)
		if err == nil {
			return slot
		}
		log.Printf("Redis slot unavailable, falling back to file: %v", err)
	}
	return services.NewFileSlot(utils.GetEnvAsString("SAVED_QUESTIONS_FILE", "saved_questions.json"))
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	currentUser := config.CurrentUser()

	// Initialize repositories with seed data
	questionsRepo := repository.GetQuestionsRepo(repository.SeedQuestions())
	notificationsRepo := repository.GetNotificationsRepo(repository.SeedNotifications())
	savedRepo := repository.GetSavedRepo(savedSlot())

	// Initialize services
	notificationsService := &usecase.NotificationsService{Repo: notificationsRepo}
	questionsService := usecase.NewQuestionsService(questionsRepo, notificationsService, currentUser)
	statsService := &usecase.StatsService{QuestionsRepo: questionsRepo}
	savedService := &usecase.SavedService{Repo: savedRepo, CurrentUser: currentUser}

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		questions := api.Group("/questions")
		{
			questions.GET("/", func(c *gin.Context) {
				handler.GetQuestionsHandler(c, questionsService)
			})
			questions.POST("/", func(c *gin.Context) {
				handler.CreateQuestionHandler(c, questionsService)
			})
			questions.GET("/:id", func(c *gin.Context) {
				handler.GetQuestionHandler(c, questionsService)
			})
			questions.GET("/:id/answers", func(c *gin.Context) {
				handler.GetQuestionAnswersHandler(c, questionsService)
			})
			questions.POST("/:id/answers", func(c *gin.Context) {
				handler.CreateAnswerHandler(c, questionsService)
			})
			questions.POST("/:id/vote", func(c *gin.Context) {
				handler.VoteQuestionHandler(c, questionsService)
			})
			questions.POST("/:id/answers/:answerId/vote", func(c *gin.Context) {
				handler.VoteAnswerHandler(c, questionsService)
			})
			questions.POST("/:id/answers/:answerId/accept", func(c *gin.Context) {
				handler.AcceptAnswerHandler(c, questionsService)
			})
		}

		tags := api.Group("/tags")
		tags.Use(middleware.CacheControlMiddleware("60"))
		{
			tags.GET("/", func(c *gin.Context) {
				handler.GetAllTagsHandler(c, statsService)
			})
			tags.GET("/:tag/questions", func(c *gin.Context) {
				handler.GetTagQuestionsHandler(c, questionsService)
			})
		}

		api.GET("/search", func(c *gin.Context) {
			handler.SearchQuestionsHandler(c, questionsService)
		})

		api.GET("/stats", middleware.CacheControlMiddleware("60"), func(c *gin.Context) {
			handler.GetStatsHandler(c, statsService)
		})

		users := api.Group("/users")
		{
			users.GET("/:id/questions", func(c *gin.Context) {
				handler.GetUserQuestionsHandler(c, questionsService)
			})
			users.GET("/:id/answers", func(c *gin.Context) {
				handler.GetUserAnswersHandler(c, questionsService)
			})
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("/", func(c *gin.Context) {
				handler.GetNotificationsHandler(c, notificationsService)
			})
			notifications.POST("/:id/read", func(c *gin.Context) {
				handler.MarkNotificationReadHandler(c, notificationsService)
			})
			notifications.POST("/read-all", func(c *gin.Context) {
				handler.MarkAllNotificationsReadHandler(c, notificationsService)
			})
		}

		saved := api.Group("/saved")
		{
			saved.GET("/", func(c *gin.Context) {
				handler.GetSavedQuestionsHandler(c, savedService, questionsService)
			})
			saved.POST("/:id", func(c *gin.Context) {
				handler.ToggleSaveQuestionHandler(c, savedService)
			})
		}

		api.GET("/profile", func(c *gin.Context) {
			handler.GetProfileHandler(c, questionsService, savedService)
		})
	}

	return router
}

func main() {
	router := setupRouter()

	port := utils.GetEnvAsInt("PORT", 8080)

	serverAddr := fmt.Sprintf(":%d", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
