// File: finsight/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finsight/config"
	"finsight/database/repository"
	"finsight/handlers"
	"finsight/middleware"
	"finsight/routes"
	ai "finsight/services/intelligence"
	"finsight/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.GeminiAPIKey == "" {
		logger.Sugar().Fatalf("main: GEMINI_API_KEY is not set")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())

	// repositories.
	financialRepo := repository.NewMemoryFinancialRepo()

	// services.
	generator, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	defer generator.Close()

	assistantService := &ai.DefaultAssistantService{
		Repo:      financialRepo,
		Generator: generator,
	}

	financialHandler := handlers.NewFinancialDataHandler(financialRepo)
	chatHandler := handlers.NewChatHandler(assistantService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetFinancialDataHandler: financialHandler.GetFinancialData,
		ChatHandler:             chatHandler.HandleChat,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
