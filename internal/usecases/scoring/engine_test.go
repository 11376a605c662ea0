package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profile-health-api/internal/domain"
)

// Data de referência fixa para as checagens de recência
var referenceTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

// completeSnapshot monta um snapshot que satisfaz o máximo de todas as
// checagens de todas as seções
func completeSnapshot() *domain.ProfileSnapshot {
	recent := timePtr(referenceTime.Add(-24 * time.Hour))

	snapshot := &domain.ProfileSnapshot{
		BusinessName: "Ótica Central",
		Description:  "A melhor ótica da região, com atendimento personalizado",
		Phone:        "+55 11 99999-0000",
		Website:      "https://oticacentral.example.com",
		Address: &domain.Address{
			Lines:    []string{"Rua das Flores, 100"},
			Locality: "São Paulo",
		},
		Category:   "Ótica",
		Categories: []string{"Loja de óculos", "Oftalmologista"},
		RegularHours: []domain.HoursEntry{
			{Day: "MONDAY", OpenTime: "09:00", CloseTime: "18:00"},
		},
		AverageRating: 4.6,
		TotalReviews:  60,
		TotalPhotos:   30,
		TotalPosts:    25,
		TotalProducts: 10,
		TotalServices: 5,
		TotalQuestion: 10,
	}

	for i := 0; i < 6; i++ {
		snapshot.Reviews = append(snapshot.Reviews, domain.Review{
			ID:        "review-" + string(rune('a'+i)),
			Rating:    5,
			HasReply:  true,
			CreatedAt: recent,
		})
	}

	for _, category := range []string{"COVER", "LOGO", "INTERIOR", "EXTERIOR", "TEAM"} {
		snapshot.Photos = append(snapshot.Photos, domain.Photo{
			ID:       "photo-" + category,
			Category: category,
		})
	}

	for i := 0; i < 8; i++ {
		snapshot.Posts = append(snapshot.Posts, domain.Post{
			ID:        "post-" + string(rune('a'+i)),
			CreatedAt: recent,
		})
	}

	for i := 0; i < 10; i++ {
		snapshot.Products = append(snapshot.Products, domain.Product{
			ID:          "product-" + string(rune('a'+i)),
			Name:        "Produto",
			Description: "Descrição do produto",
			PhotoURL:    "https://cdn.example.com/p.jpg",
		})
		snapshot.Questions = append(snapshot.Questions, domain.Question{
			ID:              "question-" + string(rune('a'+i)),
			Text:            "Vocês atendem aos sábados?",
			HasAnswer:       true,
			AnswerCount:     1,
			AnsweredByOwner: true,
		})
		snapshot.Attributes = append(snapshot.Attributes, domain.Attribute{
			ID: "attributes/misc_" + string(rune('a'+i)),
		})
	}
	snapshot.Attributes[0].ID = "attributes/pay_credit_card"
	snapshot.Attributes[1].ID = "attributes/wheelchair_accessible_entrance"

	for i := 0; i < 5; i++ {
		snapshot.Services = append(snapshot.Services, domain.ServiceItem{
			Name:        "Serviço",
			Description: "Descrição do serviço",
		})
	}

	return snapshot
}

func TestEngine_Score_PerfilCompleto(t *testing.T) {
	engine := NewEngine()

	breakdown := engine.Score(completeSnapshot(), referenceTime)

	assert.Equal(t, 100, breakdown.OverallScore)
	assert.Equal(t, domain.ScoreStatusExcellent, breakdown.Status)
	assert.Equal(t, referenceTime, breakdown.ComputedAt)
	assert.Len(t, breakdown.Sections, 8)

	for name, section := range breakdown.Sections {
		assert.Equal(t, section.MaxScore, section.Score, "seção %s deveria estar no máximo", name)
		assert.Empty(t, section.Issues, "seção %s não deveria ter issues", name)
		// Seção sem issues emite no máximo uma recomendação (o ponto forte)
		assert.Len(t, section.Recommendations, 1, "seção %s deveria ter uma única recomendação", name)
	}

	reviews := breakdown.Sections[domain.SectionReviews]
	assert.Equal(t, 10.0, reviews.Score)
	assert.Equal(t, 20, SectionContribution(reviews))
	assert.Equal(t, 100, SectionPercent(reviews))
}

func TestEngine_Score_PerfilVazio(t *testing.T) {
	engine := NewEngine()

	breakdown := engine.Score(&domain.ProfileSnapshot{}, referenceTime)

	assert.Equal(t, 0, breakdown.OverallScore)
	assert.Equal(t, domain.ScoreStatusCritical, breakdown.Status)

	profileInfo := breakdown.Sections[domain.SectionProfileInfo]
	assert.Equal(t, 0.0, profileInfo.Score)
	assert.Contains(t, profileInfo.Issues, "Business description is missing")
	assert.Contains(t, profileInfo.Issues, "Phone number is missing")

	posts := breakdown.Sections[domain.SectionPosts]
	assert.Contains(t, posts.Issues, "No posts yet")
	assert.Contains(t, posts.Recommendations, "Publish your first post to show customers your profile is active")

	products := breakdown.Sections[domain.SectionProducts]
	assert.Contains(t, products.Issues, "No products registered")

	// Q&A vazio não é issue: a seção só recomenda semear perguntas
	questions := breakdown.Sections[domain.SectionQnA]
	assert.Empty(t, questions.Issues)
	assert.NotEmpty(t, questions.Recommendations)
}

func TestEngine_Score_ContribuicoesSomamOverall(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		snapshot *domain.ProfileSnapshot
	}{
		{name: "Perfil completo", snapshot: completeSnapshot()},
		{name: "Perfil vazio", snapshot: &domain.ProfileSnapshot{}},
		{
			name: "Perfil parcial",
			snapshot: &domain.ProfileSnapshot{
				Description:   "Descrição",
				Phone:         "+55 11 98888-0000",
				AverageRating: 4.2,
				TotalReviews:  25,
				TotalPhotos:   12,
				TotalPosts:    3,
				TotalServices: 2,
				Services:      []domain.ServiceItem{{Name: "Serviço A"}, {Name: "Serviço B"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := engine.Score(tt.snapshot, referenceTime)

			sum := 0
			for _, section := range breakdown.Sections {
				sum += SectionContribution(section)
			}
			assert.Equal(t, breakdown.OverallScore, sum)
		})
	}
}

func TestEngine_Score_SecaoReviews(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name          string
		averageRating float64
		totalReviews  int
		replied       int
		recent        int
		expectedScore float64
	}{
		{
			name:          "Rating alto com volume e engajamento máximos",
			averageRating: 4.8,
			totalReviews:  80,
			replied:       80,
			recent:        6,
			expectedScore: 10,
		},
		{
			name:          "Rating médio com poucos reviews",
			averageRating: 4.1,
			totalReviews:  10,
			replied:       8,
			recent:        1,
			expectedScore: 3, // 2 (rating) + 0 (volume) + 1 (80% de resposta) + 0 (recência)
		},
		{
			name:          "Rating baixo sem respostas",
			averageRating: 3.2,
			totalReviews:  15,
			replied:       0,
			recent:        0,
			expectedScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := &domain.ProfileSnapshot{
				AverageRating: tt.averageRating,
				TotalReviews:  tt.totalReviews,
			}
			for i := 0; i < tt.totalReviews; i++ {
				review := domain.Review{Rating: 4, HasReply: i < tt.replied}
				if i < tt.recent {
					review.CreatedAt = timePtr(referenceTime.Add(-48 * time.Hour))
				}
				snapshot.Reviews = append(snapshot.Reviews, review)
			}

			breakdown := engine.Score(snapshot, referenceTime)
			section := breakdown.Sections[domain.SectionReviews]

			assert.Equal(t, tt.expectedScore, section.Score)
		})
	}
}

func TestEngine_Score_SecaoFotos(t *testing.T) {
	engine := NewEngine()

	snapshot := &domain.ProfileSnapshot{
		TotalPhotos: 12,
		Photos: []domain.Photo{
			{ID: "1", Category: "COVER"},
			{ID: "2", Category: "INTERIOR"},
		},
	}

	breakdown := engine.Score(snapshot, referenceTime)
	section := breakdown.Sections[domain.SectionPhotos]

	// 2 (10-24 fotos) + 2 (capa) + 0 (sem logo) + 1 (2 categorias)
	assert.Equal(t, 5.0, section.Score)
	assert.Contains(t, section.Issues, "No logo or profile photo")
	assert.NotContains(t, section.Issues, "No cover photo")
	assert.Equal(t, true, section.Details["hasCover"])
	assert.Equal(t, false, section.Details["hasLogo"])
}

func TestEngine_Score_SecaoAtributos(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name          string
		snapshot      *domain.ProfileSnapshot
		expectedScore float64
	}{
		{
			name: "Horários e atributos completos com pagamento",
			snapshot: &domain.ProfileSnapshot{
				RegularHours: []domain.HoursEntry{{Day: "MONDAY"}},
				Attributes: []domain.Attribute{
					{ID: "attributes/pay_debit_card"}, {ID: "a2"}, {ID: "a3"}, {ID: "a4"}, {ID: "a5"},
					{ID: "a6"}, {ID: "a7"}, {ID: "a8"}, {ID: "a9"}, {ID: "a10"},
				},
			},
			expectedScore: 4,
		},
		{
			name: "Acessibilidade conta como atributo destacado",
			snapshot: &domain.ProfileSnapshot{
				RegularHours: []domain.HoursEntry{{Day: "MONDAY"}},
				Attributes: []domain.Attribute{
					{ID: "attributes/wheelchair_accessible_entrance"},
					{ID: "a2"}, {ID: "a3"}, {ID: "a4"}, {ID: "a5"},
				},
			},
			expectedScore: 3, // 1 (horários) + 1 (5-9 atributos) + 1 (acessibilidade)
		},
		{
			name:          "Sem horários e sem atributos",
			snapshot:      &domain.ProfileSnapshot{},
			expectedScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := engine.Score(tt.snapshot, referenceTime)
			section := breakdown.Sections[domain.SectionAttributes]

			assert.Equal(t, tt.expectedScore, section.Score)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		overall  int
		expected domain.ScoreStatus
	}{
		{name: "Limite inferior de excellent", overall: 80, expected: domain.ScoreStatusExcellent},
		{name: "Acima do limite de excellent", overall: 100, expected: domain.ScoreStatusExcellent},
		{name: "Logo abaixo de excellent", overall: 79, expected: domain.ScoreStatusGood},
		{name: "Limite inferior de good", overall: 60, expected: domain.ScoreStatusGood},
		{name: "Logo abaixo de good", overall: 59, expected: domain.ScoreStatusNeedsWork},
		{name: "Limite inferior de needs_work", overall: 40, expected: domain.ScoreStatusNeedsWork},
		{name: "Logo abaixo de needs_work", overall: 39, expected: domain.ScoreStatusCritical},
		{name: "Zero", overall: 0, expected: domain.ScoreStatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.overall))
		})
	}
}

func TestFinalize_ContratoDeRecomendacoes(t *testing.T) {
	t.Run("Seção no máximo vira recomendação de ponto forte", func(t *testing.T) {
		section := newSection(5, 10)
		section.Score = 5
		section.Recommendations = append(section.Recommendations, "sugestão a", "sugestão b")

		result := finalize(section, "Tudo em ordem")

		assert.Equal(t, []string{"Tudo em ordem"}, result.Recommendations)
	})

	t.Run("Seção sem issues abaixo do máximo mantém uma recomendação", func(t *testing.T) {
		section := newSection(5, 10)
		section.Score = 3
		section.Recommendations = append(section.Recommendations, "sugestão a", "sugestão b")

		result := finalize(section, "Tudo em ordem")

		assert.Equal(t, []string{"sugestão a"}, result.Recommendations)
	})

	t.Run("Seção com issues mantém todas as recomendações", func(t *testing.T) {
		section := newSection(5, 10)
		section.Score = 1
		section.Issues = append(section.Issues, "problema")
		section.Recommendations = append(section.Recommendations, "sugestão a", "sugestão b")

		result := finalize(section, "Tudo em ordem")

		assert.Len(t, result.Recommendations, 2)
	})
}
