package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare array", `[{"a":1}]`, `[{"a":1}]`},
		{"fenced", "```json\n[1,2,3]\n```", `[1,2,3]`},
		{"fenced no lang", "```\n[1]\n```", `[1]`},
		{"prose around", `Sure! Here you go: [1,2] Hope that helps.`, `[1,2]`},
		{"no array", `just words`, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONArray(tt.in))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"score":0.5}`, ExtractJSONObject("The result:\n```json\n{\"score\":0.5}\n```"))
	assert.Equal(t, "", ExtractJSONObject("no json here"))
}
