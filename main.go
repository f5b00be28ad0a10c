package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/handler"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/middleware"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/repository"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/services"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/usecase"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

func setupRouter(cfg *utils.Config, logger *zap.Logger, auth *usecase.AuthService, notes *usecase.NoteService, tokens *services.TokenManager) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	router.Use(middleware.MetricsMiddleware())

	authHandler := handler.NewAuthHandler(auth, logger)
	noteHandler := handler.NewNoteHandler(notes, logger)

	router.GET("/", handler.Welcome)
	router.GET("/healthz", handler.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	router.POST("/create-account", authHandler.CreateAccount)
	router.POST("/login", authHandler.Login)

	// Protected routes: identity comes from the bearer token only
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/get-user", authHandler.GetUser)
		protected.POST("/add-note", noteHandler.AddNote)
		protected.PUT("/edit-note/:noteId", noteHandler.EditNote)
		protected.GET("/get-all-notes", noteHandler.GetAllNotes)
		protected.DELETE("/delete-note/:noteId", noteHandler.DeleteNote)
		protected.PUT("/update-note-pinned/:noteId", noteHandler.UpdateNotePinned)
		protected.GET("/search-notes", noteHandler.SearchNotes)
	}

	return router
}

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger, err := utils.NewLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	client, err := utils.ConnectMongo(context.Background(), cfg)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	if err := repository.SetupIndexes(client, cfg); err != nil {
		logger.Fatal("index setup failed", zap.Error(err))
	}

	tokens := services.NewTokenManager(cfg.JWTSecretKey, cfg.TokenExpiry)

	authService := &usecase.AuthService{
		Users:  repository.NewUserRepo(client, cfg),
		Tokens: tokens,
	}
	noteService := &usecase.NoteService{
		Notes: repository.NewNoteRepo(client, cfg),
	}

	router := setupRouter(cfg, logger, authService, noteService, tokens)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
