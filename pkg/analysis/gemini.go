package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/shiftflow/roster-api-go/pkg/models"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider asks Gemini for roster insights with a strict JSON
// response schema. Any request or decode failure falls through to the
// local heuristic, so callers always get a usable result.
type GeminiProvider struct {
	client   *genai.Client
	model    string
	fallback Provider
	logger   *zap.Logger
}

// NewGeminiProvider creates the Gemini-backed analyzer
func NewGeminiProvider(apiKey, model string, fallback Provider, logger *zap.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiProvider{
		client:   client,
		model:    model,
		fallback: fallback,
		logger:   logger,
	}, nil
}

// AnalyzeRoster sends the roster snapshot and parses the structured reply
func (p *GeminiProvider) AnalyzeRoster(ctx context.Context, req Request) *models.AnalysisResult {
	prompt, err := buildPrompt(req)
	if err != nil {
		p.logger.Warn("gemini prompt build failed, falling back", zap.Error(err))
		return p.fallback.AnalyzeRoster(ctx, req)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"insights": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"score":    {Type: genai.TypeNumber},
					"cost":     {Type: genai.TypeNumber},
				},
			},
		})
	if err != nil {
		p.logger.Warn("gemini analysis failed, falling back", zap.Error(err))
		return p.fallback.AnalyzeRoster(ctx, req)
	}

	var out models.AnalysisResult
	if err := json.Unmarshal([]byte(stripFences(resp.Text())), &out); err != nil {
		p.logger.Warn("gemini returned unparseable analysis, falling back", zap.Error(err))
		return p.fallback.AnalyzeRoster(ctx, req)
	}
	if out.Insights == nil {
		out.Insights = []string{}
	}
	return &out
}

func buildPrompt(req Request) (string, error) {
	staff := make(map[string]models.Staff, len(req.Staff))
	for _, s := range req.Staff {
		staff[s.ID] = s
	}

	type promptShift struct {
		Person string `json:"person"`
		Type   string `json:"type"`
	}
	type promptDay struct {
		Date   string        `json:"date"`
		Day    string        `json:"day"`
		Busy   bool          `json:"busy"`
		Shifts []promptShift `json:"shifts"`
	}
	type promptStaff struct {
		Name string  `json:"name"`
		Role string  `json:"role"`
		Rate float64 `json:"rate"`
	}

	var data struct {
		Staff    []promptStaff `json:"staff"`
		Schedule []promptDay   `json:"schedule"`
	}
	for _, s := range req.Staff {
		data.Staff = append(data.Staff, promptStaff{Name: s.Name, Role: s.Role, Rate: s.HourlyRate})
	}
	for _, day := range req.Days {
		pd := promptDay{Date: day.Date, Day: day.DayName, Busy: day.IsBusy, Shifts: []promptShift{}}
		for _, a := range req.Assignments {
			if a.Date != day.Date {
				continue
			}
			name := a.StaffID
			if st, ok := staff[a.StaffID]; ok {
				name = st.Name
			}
			pd.Shifts = append(pd.Shifts, promptShift{Person: name, Type: a.Type})
		}
		data.Schedule = append(data.Schedule, pd)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Analyze this staff shift schedule.
Data: %s

Provide:
1. A list of 3-4 short, bullet-point insights (positive or warning). Example: "Friday is understaffed", "Good skill balance".
2. A fairness score (0-100).
3. Estimated total labor cost.

Return purely JSON.`, raw), nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// in one despite the response mime type
func stripFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
