package generator

import (
	"fmt"
	"strings"
)

func buildPrompt(req Request) string {
	base := fmt.Sprintf(`You are an expert interviewer. Generate %d interview questions as a JSON array.

Each item must have:
- "question": string
- "expectedAnswer": string
- "hints": string[]
- "difficulty": one of ["Easy","Medium","Hard"]
- "difficultyExplanation": string

Rules:
- Generate ONLY for Category: %s.
- All items MUST be at difficulty: %s (calibrated for this category).
- Questions MUST be distinct and non-repetitive.
- Do NOT reuse questions you would ask at other difficulty levels.
- Do NOT include code fences, markdown, or any text outside the JSON array.`, req.Count, req.Category, req.Difficulty)

	var project string
	if req.ProjectDescription != "" {
		tailored := req.Count
		if tailored > 2 {
			tailored = 2
		}
		project = fmt.Sprintf(`Candidate Project Context:
%s
- Include at least %d questions tailored to this project.`, req.ProjectDescription, tailored)
	}

	var subtopic string
	if req.Category == "Technical" && req.TechnicalSubtopic != "" && req.TechnicalSubtopic != "General" {
		subtopic = fmt.Sprintf(`Technical Subtopic: %s.
- Generate questions SPECIFIC to this subtopic (not generic technical questions).
- Prefer practical, real-world interview questions for %s.`, req.TechnicalSubtopic, req.TechnicalSubtopic)
	}

	categoryGuidance := `Category Guidance:
- Coding: Provide concrete algorithm/implementation tasks, suitable for live coding.
- HR: Behavioral questions testing communication, leadership, conflict handling, reflection.
- System Design: Junior/Mid scenarios (APIs, data modeling, scalability, consistency trade-offs).
- Technical: Conceptual questions across DSA, OOP, DBMS, OS, Web fundamentals.
- Project: Questions assessing alignment with the provided project, design choices, and trade-offs.`

	difficultyCalibration := `Difficulty Calibration (examples):
- Coding Easy: arrays/strings/two-pointers; Medium: hash maps/trees/graphs; Hard: complex algorithms/constraints.
- HR Easy: basic self-reflection; Medium: nuanced team scenarios; Hard: leadership/strategy with trade-offs.
- System Design Easy: small feature or single service; Medium: multi-service with scaling; Hard: distributed trade-offs/consistency.
- Technical Easy: definitions and simple examples; Medium: comparisons/trade-offs; Hard: deeper internals and edge cases.`

	schemaHint := `Return format example (structure only):
[
  {
    "question": "Explain how binary search works on a sorted array.",
    "expectedAnswer": "It repeatedly halves the search space ...",
    "hints": ["Sorted input", "Mid index"],
    "difficulty": "Easy",
    "difficultyExplanation": "Common fundamental; minimal prerequisites."
  }
]`

	sections := []string{base}
	if project != "" {
		sections = append(sections, project)
	}
	if subtopic != "" {
		sections = append(sections, subtopic)
	}
	sections = append(sections, categoryGuidance, difficultyCalibration, schemaHint)
	return strings.Join(sections, "\n\n")
}
