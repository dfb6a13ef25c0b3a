// Package generator produces interview questions, preferring the
// upstream model and falling back to a local bank when it is
// unavailable or returns output we cannot parse.
package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/genai"
)

const (
	defaultCount = 5
	maxCount     = 20
)

// Request describes one generation call.
type Request struct {
	Category           domain.Category
	Difficulty         domain.Difficulty
	Count              int
	TechnicalSubtopic  string
	ProjectDescription string
}

// Result carries the generated questions plus which path produced them.
type Result struct {
	Questions []domain.Question `json:"questions"`
	Source    string            `json:"source"`
}

const (
	SourceUpstream = "upstream"
	SourceFallback = "fallback"
)

// Service generates questions. A nil or key-less AI client means every
// request is served from the local bank.
type Service struct {
	ai *genai.Client
}

func NewService(ai *genai.Client) *Service {
	return &Service{ai: ai}
}

// normalize applies defaults and clamps the count to [1, 20].
func normalize(req Request) Request {
	if req.Difficulty == "" {
		req.Difficulty = domain.DifficultyEasy
	}
	if req.TechnicalSubtopic == "" {
		req.TechnicalSubtopic = "General"
	}
	if req.Count == 0 {
		req.Count = defaultCount
	}
	if req.Count < 1 {
		req.Count = 1
	}
	if req.Count > maxCount {
		req.Count = maxCount
	}
	return req
}

// Generate returns exactly req.Count questions for the requested
// category and difficulty. It never fails: any upstream problem
// degrades to the deterministic local bank.
func (s *Service) Generate(ctx context.Context, req Request) Result {
	req = normalize(req)

	if !s.ai.Available() {
		return Result{Questions: fallbackQuestions(req), Source: SourceFallback}
	}

	questions, err := s.generateUpstream(ctx, req)
	if err != nil {
		log.Warn().Err(err).
			Str("module", "generator").
			Str("category", string(req.Category)).
			Msg("upstream generation failed, using local bank")
		return Result{Questions: fallbackQuestions(req), Source: SourceFallback}
	}
	return Result{Questions: questions, Source: SourceUpstream}
}

func (s *Service) generateUpstream(ctx context.Context, req Request) ([]domain.Question, error) {
	// A per-call nonce keeps repeated identical requests from yielding
	// the model's stock set of questions.
	prompt := fmt.Sprintf("%s\n\nVariation seed: %s\n- Generate a fresh set of questions distinct from typical examples.",
		buildPrompt(req), uuid.NewString())

	text, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := parseQuestions(text)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, genai.ErrUnavailable
	}

	for i := range questions {
		if questions[i].Difficulty == "" {
			questions[i].Difficulty = req.Difficulty
		}
	}
	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}
	return questions, nil
}

// parseQuestions accepts either a bare JSON array or an object with an
// "items" array, with or without markdown fences around it.
func parseQuestions(text string) ([]domain.Question, error) {
	if raw := genai.ExtractJSONArray(text); raw != "" {
		var questions []domain.Question
		if err := json.Unmarshal([]byte(raw), &questions); err == nil {
			return questions, nil
		}
	}
	if raw := genai.ExtractJSONObject(text); raw != "" {
		var wrapped struct {
			Items []domain.Question `json:"items"`
		}
		if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && len(wrapped.Items) > 0 {
			return wrapped.Items, nil
		}
	}
	return nil, genai.ErrUnavailable
}
