package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shiftflow/roster-api-go/pkg/auth"
	"github.com/shiftflow/roster-api-go/pkg/database"
	"github.com/shiftflow/roster-api-go/pkg/handlers"
)

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	if os.Getenv("LOG_LEVEL") == "debug" {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	// Load .env if it exists; try parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	logger := newLogger()
	defer logger.Sync()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := handlers.NewHandler(db, logger)

	r := gin.Default()

	// Admin interface - serve static files from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ShiftFlow Roster API",
			"version": "1.0.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Roster Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.DELETE("/sessions/:id", h.DeleteSession)
		api.PUT("/sessions/:id/range", h.SetRange)
		api.PUT("/sessions/:id/settings", h.UpdateSettings)
		api.POST("/sessions/:id/assignments/:aid/cycle", h.CycleAssignment)
		api.POST("/sessions/:id/assignments/:aid/lock", h.ToggleLock)
		api.POST("/sessions/:id/generate", h.GenerateRoster)
		api.POST("/sessions/:id/clear", h.ClearRoster)
		api.GET("/sessions/:id/metrics", h.GetMetrics)
		api.POST("/sessions/:id/analyze", h.AnalyzeRoster)
		api.GET("/sessions/:id/export", h.ExportCSV)
		api.GET("/sessions/:id/staff/:staffID/history", h.StaffHistory)

		api.POST("/roster/generate", h.GenerateOneShot)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("could not run server", zap.Error(err))
	}
}
