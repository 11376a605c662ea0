package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/pkg/utils"
)

// Limites de classificação do score geral. Pontos de corte são política de
// produto, ajustáveis sem tocar no motor.
const (
	ThresholdExcellent = 80
	ThresholdGood      = 60
	ThresholdNeedsWork = 40
)

// Caps por seção: o máximo de pontos que cada seção pode somar antes da
// conversão percentual
const (
	CapProfileInfo = 12.0
	CapReviews     = 10.0
	CapPhotos      = 9.0
	CapPosts       = 5.0
	CapProducts    = 4.0
	CapServices    = 3.0
	CapQnA         = 4.0
	CapAttributes  = 4.0
)

// Pesos por seção: a participação de cada seção no score geral de 100 pontos
const (
	WeightProfileInfo = 20
	WeightReviews     = 20
	WeightPhotos      = 15
	WeightPosts       = 15
	WeightProducts    = 10
	WeightServices    = 5
	WeightQnA         = 10
	WeightAttributes  = 5
)

// Janela de recência para checagens de atividade (reviews e posts recentes)
const recentWindow = 30 * 24 * time.Hour

type Scorer interface {
	Score(snapshot *domain.ProfileSnapshot, now time.Time) *domain.ScoreBreakdown
}

// Engine calcula o health score de um snapshot: oito seções pontuadas de
// forma independente, cada uma com cap e peso fixos, combinadas em um score
// geral de 0 a 100. Função pura do snapshot e do instante de referência;
// nenhum estado oculto, nenhuma rede.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Score(snapshot *domain.ProfileSnapshot, now time.Time) *domain.ScoreBreakdown {
	sections := map[string]domain.ScoreSection{
		domain.SectionProfileInfo: scoreProfileInfo(snapshot),
		domain.SectionReviews:     scoreReviews(snapshot, now),
		domain.SectionPhotos:      scorePhotos(snapshot),
		domain.SectionPosts:       scorePosts(snapshot, now),
		domain.SectionProducts:    scoreProducts(snapshot),
		domain.SectionServices:    scoreServices(snapshot),
		domain.SectionQnA:         scoreQuestions(snapshot),
		domain.SectionAttributes:  scoreAttributes(snapshot),
	}

	overall := 0
	for _, section := range sections {
		overall += SectionContribution(section)
	}

	return &domain.ScoreBreakdown{
		OverallScore: overall,
		Status:       classify(overall),
		Sections:     sections,
		ComputedAt:   now,
	}
}

// SectionPercent converte os pontos de uma seção para a escala 0-100
func SectionPercent(section domain.ScoreSection) int {
	if section.MaxScore == 0 {
		return 0
	}
	return int(math.Round(section.Score / section.MaxScore * 100))
}

// SectionContribution é a parcela da seção no score geral, rederivável a
// partir do próprio breakdown
func SectionContribution(section domain.ScoreSection) int {
	return int(math.Round(float64(SectionPercent(section)) * float64(section.Weight) / 100))
}

func classify(overall int) domain.ScoreStatus {
	switch {
	case overall >= ThresholdExcellent:
		return domain.ScoreStatusExcellent
	case overall >= ThresholdGood:
		return domain.ScoreStatusGood
	case overall >= ThresholdNeedsWork:
		return domain.ScoreStatusNeedsWork
	default:
		return domain.ScoreStatusCritical
	}
}

func scoreProfileInfo(snapshot *domain.ProfileSnapshot) domain.ScoreSection {
	section := newSection(CapProfileInfo, WeightProfileInfo)

	if snapshot.Description != "" {
		section.Score += 3
	} else {
		section.Issues = append(section.Issues, "Business description is missing")
		section.Recommendations = append(section.Recommendations, "Add a detailed business description to help customers understand what you offer")
	}

	if snapshot.Phone != "" {
		section.Score += 2
	} else {
		section.Issues = append(section.Issues, "Phone number is missing")
		section.Recommendations = append(section.Recommendations, "Add a phone number so customers can reach you directly")
	}

	if snapshot.Website != "" {
		section.Score += 2
	} else {
		section.Issues = append(section.Issues, "Website is missing")
		section.Recommendations = append(section.Recommendations, "Link your website to drive traffic from your profile")
	}

	if snapshot.Address != nil && len(snapshot.Address.Lines) > 0 {
		section.Score += 2
	} else {
		section.Issues = append(section.Issues, "Address is missing or incomplete")
		section.Recommendations = append(section.Recommendations, "Complete your address so customers can find your location")
	}

	if snapshot.Category != "" {
		section.Score += 2
	} else {
		section.Issues = append(section.Issues, "Primary category is not set")
		section.Recommendations = append(section.Recommendations, "Choose a primary category that best describes your business")
	}

	if len(snapshot.Categories) > 0 {
		section.Score += 1
	} else {
		section.Recommendations = append(section.Recommendations, "Add secondary categories to appear in more searches")
	}

	section.Details = map[string]any{
		"hasDescription":       snapshot.Description != "",
		"hasPhone":             snapshot.Phone != "",
		"hasWebsite":           snapshot.Website != "",
		"additionalCategories": len(snapshot.Categories),
	}

	return finalize(section, "Profile information is complete")
}

func scoreReviews(snapshot *domain.ProfileSnapshot, now time.Time) domain.ScoreSection {
	section := newSection(CapReviews, WeightReviews)

	replied := 0
	recent := 0
	cutoff := now.Add(-recentWindow)
	for _, review := range snapshot.Reviews {
		if review.HasReply {
			replied++
		}
		if review.CreatedAt != nil && review.CreatedAt.After(cutoff) {
			recent++
		}
	}

	replyRate := utils.Rate(replied, len(snapshot.Reviews))

	switch {
	case snapshot.AverageRating >= 4.5:
		section.Score += 3
	case snapshot.AverageRating >= 4.0:
		section.Score += 2
	default:
		section.Issues = append(section.Issues, "Average rating is below 4.0")
		section.Recommendations = append(section.Recommendations, "Improve service quality and ask satisfied customers to leave reviews")
	}

	switch {
	case snapshot.TotalReviews >= 50:
		section.Score += 3
	case snapshot.TotalReviews >= 20:
		section.Score += 2
	default:
		section.Issues = append(section.Issues, "Fewer than 20 reviews")
		section.Recommendations = append(section.Recommendations, "Encourage customers to review your business after each visit")
	}

	switch {
	case replyRate >= 90:
		section.Score += 2
	case replyRate >= 70:
		section.Score += 1
	default:
		section.Issues = append(section.Issues, "Less than 70% of reviews have a reply")
		section.Recommendations = append(section.Recommendations, "Reply to every review, positive or negative")
	}

	switch {
	case recent >= 5:
		section.Score += 2
	case recent >= 2:
		section.Score += 1
	default:
		section.Issues = append(section.Issues, "Fewer than 2 reviews in the last 30 days")
		section.Recommendations = append(section.Recommendations, "Keep a steady flow of fresh reviews coming in")
	}

	section.Details = map[string]any{
		"averageRating": snapshot.AverageRating,
		"totalReviews":  snapshot.TotalReviews,
		"replyRate":     math.Round(replyRate),
		"recentReviews": recent,
	}

	return finalize(section, "Review activity and engagement are in great shape")
}

func scorePhotos(snapshot *domain.ProfileSnapshot) domain.ScoreSection {
	section := newSection(CapPhotos, WeightPhotos)

	hasCover := false
	hasLogo := false
	categories := make(map[string]bool)
	for _, photo := range snapshot.Photos {
		switch photo.Category {
		case "COVER":
			hasCover = true
		case "LOGO", "PROFILE":
			hasLogo = true
		}
		if photo.Category != "" {
			categories[photo.Category] = true
		}
	}

	switch {
	case snapshot.TotalPhotos >= 25:
		section.Score += 3
	case snapshot.TotalPhotos >= 10:
		section.Score += 2
	case snapshot.TotalPhotos >= 3:
		section.Score += 1
	default:
		section.Issues = append(section.Issues, "Fewer than 3 photos")
		section.Recommendations = append(section.Recommendations, "Upload at least 25 photos showing your business, team and products")
	}

	if hasCover {
		section.Score += 2
	} else {
		section.Issues = append(section.Issues, "No cover photo")
		section.Recommendations = append(section.Recommendations, "Set a cover photo, it is the first image customers see")
	}

	if hasLogo {
		section.Score += 2
	} else {
		section.Issues = append(section.Issues, "No logo or profile photo")
		section.Recommendations = append(section.Recommendations, "Add your logo so customers recognize your brand")
	}

	switch {
	case len(categories) >= 4:
		section.Score += 2
	case len(categories) >= 2:
		section.Score += 1
	default:
		section.Recommendations = append(section.Recommendations, "Add photos across different categories (interior, exterior, team, products)")
	}

	section.Details = map[string]any{
		"totalPhotos":     snapshot.TotalPhotos,
		"hasCover":        hasCover,
		"hasLogo":         hasLogo,
		"photoCategories": len(categories),
	}

	return finalize(section, "Photo coverage is strong across categories")
}

func scorePosts(snapshot *domain.ProfileSnapshot, now time.Time) domain.ScoreSection {
	section := newSection(CapPosts, WeightPosts)

	recent := 0
	cutoff := now.Add(-recentWindow)
	for _, post := range snapshot.Posts {
		if post.CreatedAt != nil && post.CreatedAt.After(cutoff) {
			recent++
		}
	}

	if snapshot.TotalPosts == 0 {
		section.Issues = append(section.Issues, "No posts yet")
		section.Recommendations = append(section.Recommendations, "Publish your first post to show customers your profile is active")
	} else {
		switch {
		case recent >= 8:
			section.Score += 3
		case recent >= 4:
			section.Score += 2
		case recent >= 1:
			section.Score += 1
		default:
			section.Issues = append(section.Issues, "No posts in the last 30 days")
			section.Recommendations = append(section.Recommendations, "Post at least weekly to keep your profile fresh")
		}

		switch {
		case snapshot.TotalPosts >= 20:
			section.Score += 2
		case snapshot.TotalPosts >= 5:
			section.Score += 1
		default:
			section.Recommendations = append(section.Recommendations, "Build up a history of posts over time")
		}
	}

	section.Details = map[string]any{
		"totalPosts":  snapshot.TotalPosts,
		"recentPosts": recent,
	}

	return finalize(section, "Posting cadence is healthy")
}

func scoreProducts(snapshot *domain.ProfileSnapshot) domain.ScoreSection {
	section := newSection(CapProducts, WeightProducts)

	withPhoto := 0
	withDescription := 0
	for _, product := range snapshot.Products {
		if product.PhotoURL != "" {
			withPhoto++
		}
		if product.Description != "" {
			withDescription++
		}
	}

	if snapshot.TotalProducts == 0 {
		section.Issues = append(section.Issues, "No products registered")
		section.Recommendations = append(section.Recommendations, "Add your products so customers can browse your catalog")
	} else {
		switch {
		case snapshot.TotalProducts >= 10:
			section.Score += 2
		case snapshot.TotalProducts >= 3:
			section.Score += 1
		default:
			section.Recommendations = append(section.Recommendations, "Add more products to build a fuller catalog")
		}

		if withPhoto == snapshot.TotalProducts {
			section.Score += 1
		} else {
			section.Issues = append(section.Issues, "Some products have no photo")
			section.Recommendations = append(section.Recommendations, "Add a photo to every product")
		}

		if withDescription == snapshot.TotalProducts {
			section.Score += 1
		} else {
			section.Issues = append(section.Issues, "Some products have no description")
			section.Recommendations = append(section.Recommendations, "Describe every product to help customers decide")
		}
	}

	section.Details = map[string]any{
		"totalProducts":           snapshot.TotalProducts,
		"productsWithPhoto":       withPhoto,
		"productsWithDescription": withDescription,
	}

	return finalize(section, "Product catalog is complete and well described")
}

func scoreServices(snapshot *domain.ProfileSnapshot) domain.ScoreSection {
	section := newSection(CapServices, WeightServices)

	withDescription := 0
	for _, service := range snapshot.Services {
		if service.Description != "" {
			withDescription++
		}
	}

	if snapshot.TotalServices == 0 {
		section.Issues = append(section.Issues, "No services listed")
		section.Recommendations = append(section.Recommendations, "List the services you offer so customers know what to expect")
	} else {
		switch {
		case snapshot.TotalServices >= 5:
			section.Score += 2
		default:
			section.Score += 1
			section.Recommendations = append(section.Recommendations, "List at least 5 services to cover your full offering")
		}

		if withDescription == snapshot.TotalServices {
			section.Score += 1
		} else {
			section.Issues = append(section.Issues, "Some services have no description")
			section.Recommendations = append(section.Recommendations, "Describe every service you list")
		}
	}

	section.Details = map[string]any{
		"totalServices":           snapshot.TotalServices,
		"servicesWithDescription": withDescription,
	}

	return finalize(section, "Service list is complete")
}

func scoreQuestions(snapshot *domain.ProfileSnapshot) domain.ScoreSection {
	section := newSection(CapQnA, WeightQnA)

	answered := 0
	ownerAnswered := 0
	for _, question := range snapshot.Questions {
		if question.HasAnswer {
			answered++
		}
		if question.AnsweredByOwner {
			ownerAnswered++
		}
	}

	total := snapshot.TotalQuestion
	answeredRate := utils.Rate(answered, total)
	ownerShare := utils.Rate(ownerAnswered, total)

	if total == 0 {
		section.Recommendations = append(section.Recommendations, "Seed your Q&A with common customer questions and answer them yourself")
	} else {
		switch {
		case total >= 10:
			section.Score += 1
		case total >= 3:
			section.Score += 0.5
		}

		if answeredRate >= 90 {
			section.Score += 1
		} else {
			section.Issues = append(section.Issues, "Less than 90% of questions have an answer")
			section.Recommendations = append(section.Recommendations, "Answer every open question on your profile")
		}

		switch {
		case ownerShare >= 80:
			section.Score += 2
		case ownerShare >= 50:
			section.Score += 1
		default:
			section.Issues = append(section.Issues, "Most questions are not answered by the owner")
			section.Recommendations = append(section.Recommendations, "Answer questions yourself so customers get authoritative information")
		}
	}

	section.Details = map[string]any{
		"totalQuestions": total,
		"answeredRate":   math.Round(answeredRate),
		"ownerShare":     math.Round(ownerShare),
	}

	return finalize(section, "Q&A is actively managed by the owner")
}

func scoreAttributes(snapshot *domain.ProfileSnapshot) domain.ScoreSection {
	section := newSection(CapAttributes, WeightAttributes)

	hasPayment := false
	hasAccessibility := false
	for _, attribute := range snapshot.Attributes {
		id := strings.ToLower(attribute.ID)
		if strings.Contains(id, "pay") {
			hasPayment = true
		}
		if strings.Contains(id, "accessib") || strings.Contains(id, "wheelchair") {
			hasAccessibility = true
		}
	}

	if len(snapshot.RegularHours) > 0 {
		section.Score += 1
	} else {
		section.Issues = append(section.Issues, "Business hours are not set")
		section.Recommendations = append(section.Recommendations, "Set your opening hours so customers know when to visit")
	}

	switch {
	case len(snapshot.Attributes) >= 10:
		section.Score += 2
	case len(snapshot.Attributes) >= 5:
		section.Score += 1
	default:
		section.Issues = append(section.Issues, "Fewer than 5 attributes set")
		section.Recommendations = append(section.Recommendations, "Fill in attributes like payment methods and accessibility options")
	}

	if hasPayment || hasAccessibility {
		section.Score += 1
	} else {
		section.Recommendations = append(section.Recommendations, "Declare payment methods and accessibility information")
	}

	section.Details = map[string]any{
		"hasHours":         len(snapshot.RegularHours) > 0,
		"totalAttributes":  len(snapshot.Attributes),
		"hasPayment":       hasPayment,
		"hasAccessibility": hasAccessibility,
	}

	return finalize(section, "Profile attributes are well filled in")
}

func newSection(maxScore float64, weight int) domain.ScoreSection {
	return domain.ScoreSection{
		MaxScore:        maxScore,
		Weight:          weight,
		Issues:          []string{},
		Recommendations: []string{},
	}
}

// finalize aplica o contrato issues/recommendations: seção sem issues emite
// no máximo uma recomendação, destacando o ponto forte atual
func finalize(section domain.ScoreSection, strength string) domain.ScoreSection {
	if len(section.Issues) == 0 {
		if section.Score >= section.MaxScore {
			section.Recommendations = []string{strength}
		} else if len(section.Recommendations) > 1 {
			section.Recommendations = section.Recommendations[:1]
		}
	}
	return section
}
