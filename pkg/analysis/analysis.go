package analysis

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

// Request carries a snapshot of the roster for analysis. Assignments are
// expected to be the visible, non-OFF ones.
type Request struct {
	Staff       []models.Staff           `json:"staff"`
	Definitions []models.ShiftDefinition `json:"definitions"`
	Assignments []models.Assignment      `json:"assignments"`
	Days        []models.Day             `json:"days"`
	Settings    models.AppSettings       `json:"settings"`
}

// Provider scores a roster and produces short insight strings.
// Implementations must degrade rather than fail: a broken backend returns
// DegradedResult, never an error the roster flow has to handle.
type Provider interface {
	AnalyzeRoster(ctx context.Context, req Request) *models.AnalysisResult
}

// DegradedResult is the fallback response when no provider can answer
func DegradedResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Score:    0,
		Insights: []string{"Analysis service unavailable. Please check logs."},
		Cost:     0,
	}
}

// NewProviderFromEnv wires the Gemini provider when GEMINI_API_KEY is set
// and falls back to the local heuristic otherwise. The Gemini provider
// itself falls back to the heuristic on request failure.
func NewProviderFromEnv(logger *zap.Logger) Provider {
	heuristic := NewHeuristicProvider()
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Info("GEMINI_API_KEY not set, using heuristic roster analysis")
		return heuristic
	}

	gemini, err := NewGeminiProvider(apiKey, os.Getenv("GEMINI_MODEL"), heuristic, logger)
	if err != nil {
		logger.Warn("gemini provider init failed, using heuristic analysis", zap.Error(err))
		return heuristic
	}
	return gemini
}
