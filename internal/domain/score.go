package domain

import "time"

// ScoreStatus é a classificação do score geral em faixas fixas
type ScoreStatus string

const (
	ScoreStatusExcellent ScoreStatus = "excellent"
	ScoreStatusGood      ScoreStatus = "good"
	ScoreStatusNeedsWork ScoreStatus = "needs_work"
	ScoreStatusCritical  ScoreStatus = "critical"
)

// ScoreBreakdown é o resultado do motor de health score: oito seções
// pontuadas de forma independente e combinadas em um score geral de 0 a 100.
// Função pura do ProfileSnapshot; totalmente determinística e recomputável.
type ScoreBreakdown struct {
	OverallScore int                     `json:"overallScore"`
	Status       ScoreStatus             `json:"status"`
	Sections     map[string]ScoreSection `json:"sections"`
	ComputedAt   time.Time               `json:"computedAt"`
}

// ScoreSection é uma das oito categorias pontuadas. Issues apontam checagens
// que falharam; Recommendations sugerem melhorias mesmo quando não há issue —
// a distinção faz parte do contrato observável, não é cosmética.
type ScoreSection struct {
	Score           float64        `json:"score"`
	MaxScore        float64        `json:"maxScore"`
	Weight          int            `json:"weight"`
	Issues          []string       `json:"issues"`
	Recommendations []string       `json:"recommendations"`
	Details         map[string]any `json:"details,omitempty"`
}

// Nomes das oito seções
const (
	SectionProfileInfo = "profileInfo"
	SectionReviews     = "reviews"
	SectionPhotos      = "photos"
	SectionPosts       = "posts"
	SectionProducts    = "products"
	SectionServices    = "services"
	SectionQnA         = "questionsAnswers"
	SectionAttributes  = "attributes"
)
