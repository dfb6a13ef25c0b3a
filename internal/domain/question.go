package domain

// Category of an interview question.
type Category string

const (
	CategoryCoding       Category = "Coding"
	CategoryHR           Category = "HR"
	CategorySystemDesign Category = "System Design"
	CategoryTechnical    Category = "Technical"
	CategoryProject      Category = "Project"
)

// Difficulty level of an interview question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Question is one generated interview question with its model answer.
type Question struct {
	Question              string     `json:"question"`
	ExpectedAnswer        string     `json:"expectedAnswer"`
	Hints                 []string   `json:"hints"`
	Difficulty            Difficulty `json:"difficulty"`
	DifficultyExplanation string     `json:"difficultyExplanation"`
}

// Evaluation is the scored feedback for one submitted answer.
type Evaluation struct {
	Score           float64  `json:"score"`
	StrongPoints    []string `json:"strongPoints"`
	Improvements    []string `json:"improvements"`
	SuggestedAnswer string   `json:"suggestedAnswer"`
	Categories      []string `json:"categories"`
}
