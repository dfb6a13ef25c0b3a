package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

func TestGenerateWithoutUpstream(t *testing.T) {
	svc := NewService(nil)

	res := svc.Generate(context.Background(), Request{
		Category:   domain.CategoryCoding,
		Difficulty: domain.DifficultyEasy,
		Count:      5,
	})

	assert.Equal(t, SourceFallback, res.Source)
	require.Len(t, res.Questions, 5)

	seen := make(map[string]bool)
	for _, q := range res.Questions {
		assert.Equal(t, domain.DifficultyEasy, q.Difficulty)
		assert.NotEmpty(t, q.Question)
		assert.False(t, seen[q.Question], "duplicate question %q", q.Question)
		seen[q.Question] = true
	}
}

func TestNormalizeDefaultsAndClamps(t *testing.T) {
	tests := []struct {
		name string
		in   Request
		want Request
	}{
		{
			name: "zero count gets default",
			in:   Request{Category: domain.CategoryHR},
			want: Request{Category: domain.CategoryHR, Difficulty: domain.DifficultyEasy, TechnicalSubtopic: "General", Count: 5},
		},
		{
			name: "negative count clamps to one",
			in:   Request{Category: domain.CategoryHR, Difficulty: domain.DifficultyHard, Count: -3},
			want: Request{Category: domain.CategoryHR, Difficulty: domain.DifficultyHard, TechnicalSubtopic: "General", Count: 1},
		},
		{
			name: "oversized count clamps to twenty",
			in:   Request{Category: domain.CategoryCoding, Difficulty: domain.DifficultyMedium, TechnicalSubtopic: "General", Count: 50},
			want: Request{Category: domain.CategoryCoding, Difficulty: domain.DifficultyMedium, TechnicalSubtopic: "General", Count: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.in))
		})
	}
}

func TestFallbackSubtopicOverride(t *testing.T) {
	req := normalize(Request{
		Category:          domain.CategoryTechnical,
		Difficulty:        domain.DifficultyEasy,
		TechnicalSubtopic: "Python",
		Count:             3,
	})

	questions := fallbackQuestions(req)
	require.Len(t, questions, 3)
	assert.Contains(t, questions[0].Question, "Python")
}

func TestFallbackUnknownCategoryUsesTechnicalBank(t *testing.T) {
	req := normalize(Request{Category: "Astrology", Difficulty: domain.DifficultyMedium, Count: 2})

	questions := fallbackQuestions(req)
	require.Len(t, questions, 2)
	assert.Equal(t, fallbackByCategory[domain.CategoryTechnical][domain.DifficultyMedium][0].Question, questions[0].Question)
}

func TestFallbackPadsByCycling(t *testing.T) {
	req := normalize(Request{Category: domain.CategoryHR, Difficulty: domain.DifficultyEasy, Count: 10})

	questions := fallbackQuestions(req)
	require.Len(t, questions, 10)
	pool := fallbackByCategory[domain.CategoryHR][domain.DifficultyEasy]
	assert.Equal(t, pool[0].Question, questions[len(pool)].Question)
}

func TestParseQuestions(t *testing.T) {
	t.Run("fenced array", func(t *testing.T) {
		text := "```json\n[{\"question\":\"q1\",\"difficulty\":\"Easy\"}]\n```"
		questions, err := parseQuestions(text)
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "q1", questions[0].Question)
	})

	t.Run("wrapped items object", func(t *testing.T) {
		text := `{"items":[{"question":"q1"},{"question":"q2"}]}`
		questions, err := parseQuestions(text)
		require.NoError(t, err)
		assert.Len(t, questions, 2)
	})

	t.Run("prose only", func(t *testing.T) {
		_, err := parseQuestions("I cannot help with that.")
		assert.Error(t, err)
	})
}
