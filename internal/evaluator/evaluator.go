// Package evaluator scores candidate answers. It asks the upstream
// model for a judgement and degrades to simple heuristics when the
// model is unavailable or returns something unparseable.
package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/genai"
)

// Request describes one evaluation call. Answer is either a JSON
// string or an object with a "code" field.
type Request struct {
	Category           domain.Category `json:"category"`
	Question           string          `json:"question"`
	Answer             json.RawMessage `json:"answer"`
	TestCases          json.RawMessage `json:"testCases,omitempty"`
	ProjectDescription string          `json:"projectDescription,omitempty"`
}

var (
	reFunction = regexp.MustCompile(`function\s+\w+|\w+\s*=>`)
	reLoop     = regexp.MustCompile(`(for|while)\s*\(`)
	reReturn   = regexp.MustCompile(`\breturn\b`)
)

// Service evaluates answers. A nil or key-less AI client means every
// request is scored heuristically.
type Service struct {
	ai *genai.Client
}

func NewService(ai *genai.Client) *Service {
	return &Service{ai: ai}
}

// Evaluate never fails: upstream problems degrade to heuristics.
func (s *Service) Evaluate(ctx context.Context, req Request) domain.Evaluation {
	if !s.ai.Available() {
		return heuristicEvaluation(req)
	}

	eval, err := s.evaluateUpstream(ctx, req)
	if err != nil {
		log.Warn().Err(err).
			Str("module", "evaluator").
			Str("category", string(req.Category)).
			Msg("upstream evaluation failed, using heuristics")
		return heuristicEvaluation(req)
	}
	return eval
}

func (s *Service) evaluateUpstream(ctx context.Context, req Request) (domain.Evaluation, error) {
	text, err := s.ai.GenerateText(ctx, judgePrompt(req))
	if err != nil {
		return domain.Evaluation{}, err
	}

	raw := genai.ExtractJSONObject(text)
	if raw == "" {
		return domain.Evaluation{}, genai.ErrUnavailable
	}
	var parsed struct {
		Score           float64  `json:"score"`
		StrongPoints    []string `json:"strongPoints"`
		Improvements    []string `json:"improvements"`
		SuggestedAnswer string   `json:"suggestedAnswer"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.Evaluation{}, err
	}

	return domain.Evaluation{
		Score:           clampScore(parsed.Score),
		StrongPoints:    orEmpty(parsed.StrongPoints),
		Improvements:    orEmpty(parsed.Improvements),
		SuggestedAnswer: parsed.SuggestedAnswer,
		Categories:      feedbackAxes(req.Category),
	}, nil
}

func judgePrompt(req Request) string {
	var b strings.Builder
	b.WriteString(`You are a strict interview evaluator. Score 0-1 and give feedback as JSON:
{
  "score": number between 0 and 1,
  "strongPoints": string[],
  "improvements": string[],
  "suggestedAnswer": string
}

Question:
`)
	if req.Question == "" {
		b.WriteString("(missing)")
	} else {
		b.WriteString(req.Question)
	}
	fmt.Fprintf(&b, "\n\nCategory: %s\n", req.Category)
	if req.ProjectDescription != "" {
		fmt.Fprintf(&b, "Candidate project description:\n%s\n", req.ProjectDescription)
	}
	if req.Category == domain.CategoryCoding {
		fmt.Fprintf(&b, "Coding answer:\n%s\n", answerText(req.Answer))
	} else {
		fmt.Fprintf(&b, "Answer:\n%s\n", answerText(req.Answer))
	}
	if len(req.TestCases) > 0 && string(req.TestCases) != "null" {
		fmt.Fprintf(&b, "Test cases (for reference):\n%s\n", req.TestCases)
	}
	b.WriteString("\nReturn JSON only.")
	return b.String()
}

// heuristicEvaluation is the offline path. Coding answers are scored
// by length plus structural markers; everything else gets a neutral
// midpoint score.
func heuristicEvaluation(req Request) domain.Evaluation {
	if req.Category != domain.CategoryCoding {
		return domain.Evaluation{
			Score:           0.5,
			StrongPoints:    []string{},
			Improvements:    []string{},
			SuggestedAnswer: "",
			Categories:      []string{"clarity", "structure", "relevance"},
		}
	}

	score := codingHeuristicScore(answerText(req.Answer))
	eval := domain.Evaluation{
		Score:           score,
		StrongPoints:    []string{},
		Improvements:    []string{},
		SuggestedAnswer: "",
		Categories:      feedbackAxes(domain.CategoryCoding),
	}
	if score > 0.5 {
		eval.StrongPoints = []string{"Reasonable structure"}
	}
	if score < 0.7 {
		eval.Improvements = []string{"Add edge case handling", "Optimize complexity"}
	}
	return eval
}

// codingHeuristicScore combines a length signal with structural
// markers, capped at 1.
func codingHeuristicScore(answer string) float64 {
	if answer == "" {
		return 0
	}
	lenScore := float64(len(answer)) / 200
	if lenScore > 1 {
		lenScore = 1
	}
	score := lenScore * 0.4
	if reFunction.MatchString(answer) {
		score += 0.2
	}
	if reLoop.MatchString(answer) {
		score += 0.2
	}
	if reReturn.MatchString(answer) {
		score += 0.2
	}
	if score > 1 {
		score = 1
	}
	return score
}

// answerText flattens the answer payload: a JSON string decodes to
// itself, an object yields its "code" field, anything else is kept as
// raw JSON text.
func answerText(answer json.RawMessage) string {
	if len(answer) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(answer, &s); err == nil {
		return s
	}
	var withCode struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(answer, &withCode); err == nil && withCode.Code != "" {
		return withCode.Code
	}
	return string(answer)
}

func feedbackAxes(category domain.Category) []string {
	switch category {
	case domain.CategoryCoding:
		return []string{"correctness", "style", "efficiency"}
	case domain.CategoryHR:
		return []string{"grammar", "structure", "leadership"}
	case domain.CategorySystemDesign:
		return []string{"clarity", "tradeoffs", "scalability"}
	default:
		return []string{"correctness", "clarity", "relevance"}
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
