package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shiftflow/roster-api-go/pkg/auth"
	"github.com/shiftflow/roster-api-go/pkg/database"
	"github.com/shiftflow/roster-api-go/pkg/handlers"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	logger, _ := zap.NewProduction()

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := handlers.NewHandler(db, logger)

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Static files served from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ShiftFlow Roster API (Vercel)",
			"version": "1.0.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Sessions live in instance memory; on serverless they only survive a
	// warm instance, which matches the transient-roster model.
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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
