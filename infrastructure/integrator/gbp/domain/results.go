package domain

// ResourceKind identifica um dos recursos remotos agregados durante o sync
type ResourceKind string

const (
	ResourceProfile     ResourceKind = "profile"
	ResourceReviews     ResourceKind = "reviews"
	ResourceMedia       ResourceKind = "media"
	ResourcePosts       ResourceKind = "posts"
	ResourceProducts    ResourceKind = "products"
	ResourceServices    ResourceKind = "services"
	ResourceQuestions   ResourceKind = "questions"
	ResourcePerformance ResourceKind = "performance"
)

// AllResourceKinds lista os recursos buscados em todo sync, na ordem em que
// aparecem no snapshot
var AllResourceKinds = []ResourceKind{
	ResourceProfile,
	ResourceReviews,
	ResourceMedia,
	ResourcePosts,
	ResourceProducts,
	ResourceServices,
	ResourceQuestions,
	ResourcePerformance,
}

// RatingSource indica a origem do rating reconciliado
type RatingSource string

const (
	RatingSourcePlatform RatingSource = "platform"
	RatingSourceComputed RatingSource = "computed"
	RatingSourcePlaces   RatingSource = "places"
	RatingSourceNone     RatingSource = "none"
)

// ReconciledRating é o resultado da reconciliação em três níveis do rating e
// da contagem de reviews (plataforma > cálculo local > endpoint público)
type ReconciledRating struct {
	Average float64
	Count   int
	Source  RatingSource
}

// FetchResults carrega, por recurso, a coleção completa (união de todas as
// páginas) ou o marcador de falha correspondente. A falha de um recurso nunca
// aborta o sync como um todo: a coleção fica vazia e o motivo fica em
// Failures.
type FetchResults struct {
	Location    *Location
	Reviews     []Review
	Media       []MediaItem
	Posts       []LocalPost
	Products    []Product
	Services    []RawServiceItem
	Questions   []Question
	Performance *PerformanceResult

	Rating ReconciledRating

	Failures map[ResourceKind]string
}

// NewFetchResults cria o acumulador de resultados de um sync
func NewFetchResults() *FetchResults {
	return &FetchResults{
		Failures: make(map[ResourceKind]string),
	}
}

// MarkFailed registra a falha de um recurso sem interromper os demais
func (r *FetchResults) MarkFailed(kind ResourceKind, reason string) {
	r.Failures[kind] = reason
}

// Failed indica se um recurso específico falhou neste sync
func (r *FetchResults) Failed(kind ResourceKind) bool {
	_, ok := r.Failures[kind]
	return ok
}
