package routes

import (
	"avatar_interview_backend/config"
	"avatar_interview_backend/handlers"
	"avatar_interview_backend/models"
	"avatar_interview_backend/services"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// Initialize handlers
	pageHandler := handlers.NewPageHandler(cfg)
	healthHandler := handlers.NewHealthHandler(cfg)
	speechHandler := handlers.NewSpeechHandler(services.NewSpeechService(cfg))
	questionHandler := handlers.NewQuestionHandler(models.QuestionsForMode(cfg.InterviewMode))
	scoreHandler := handlers.NewScoreHandler(services.NewScoringService(models.QuizQuestions))
	conversationHandler := handlers.NewConversationHandler(services.NewTavusService(cfg))

	// Pages
	r.GET("/", pageHandler.Index)
	r.GET("/interview", pageHandler.Interview)
	r.GET("/health", healthHandler.HealthCheck)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/getSpeechToken", speechHandler.GetSpeechToken)
		api.GET("/getIceToken", speechHandler.GetIceToken)
		api.GET("/questions", questionHandler.ListQuestions)
		api.POST("/submit", scoreHandler.SubmitAnswers)
		api.GET("/startTavusConversation", conversationHandler.StartConversation)
	}
}
