package domain

import "time"

// ProfileSnapshot é o registro normalizado e pontual de tudo que a plataforma
// externa conhece sobre um perfil de negócio. Criado do zero a cada
// sincronização bem-sucedida; o snapshot anterior é substituído por inteiro.
type ProfileSnapshot struct {
	BusinessName string       `json:"businessName,omitempty"`
	Description  string       `json:"description,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Website      string       `json:"website,omitempty"`
	Address      *Address     `json:"address,omitempty"`
	Category     string       `json:"category,omitempty"`
	Categories   []string     `json:"categories,omitempty"`
	RegularHours []HoursEntry `json:"regularHours,omitempty"`
	Attributes   []Attribute  `json:"attributes,omitempty"`

	Reviews   []Review      `json:"reviews"`
	Photos    []Photo       `json:"photos"`
	Posts     []Post        `json:"posts"`
	Products  []Product     `json:"products"`
	Services  []ServiceItem `json:"services"`
	Questions []Question    `json:"questions"`

	// Totais reconciliados: rating e total de reviews podem vir de uma fonte
	// autoritativa da plataforma e divergir do tamanho da coleção local.
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
	TotalPhotos   int     `json:"totalPhotos"`
	TotalPosts    int     `json:"totalPosts"`
	TotalProducts int     `json:"totalProducts"`
	TotalServices int     `json:"totalServices"`
	TotalQuestion int     `json:"totalQuestions"`

	Performance *PerformanceReport `json:"performance,omitempty"`

	SyncedAt time.Time `json:"syncedAt"`
}

// Address é o endereço postal do perfil
type Address struct {
	Lines      []string `json:"lines,omitempty"`
	Locality   string   `json:"locality,omitempty"`
	Region     string   `json:"region,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
}

// HoursEntry representa um intervalo de funcionamento regular
type HoursEntry struct {
	Day       string `json:"day"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Attribute é um atributo do perfil (formas de pagamento, acessibilidade etc.)
type Attribute struct {
	ID     string   `json:"id"`
	Values []string `json:"values,omitempty"`
}

type Review struct {
	ID         string     `json:"id"`
	Reviewer   string     `json:"reviewer,omitempty"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	ReplyText  string     `json:"replyText,omitempty"`
	RepliedAt  *time.Time `json:"repliedAt,omitempty"`
	HasReply   bool       `json:"hasReply"`
	ReviewerID string     `json:"reviewerId,omitempty"`
}

type Photo struct {
	ID          string     `json:"id"`
	URL         string     `json:"url,omitempty"`
	ThumbURL    string     `json:"thumbUrl,omitempty"`
	Category    string     `json:"category,omitempty"`
	WidthPx     int        `json:"widthPx,omitempty"`
	HeightPx    int        `json:"heightPx,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

type Post struct {
	ID        string     `json:"id"`
	Summary   string     `json:"summary,omitempty"`
	Topic     string     `json:"topic,omitempty"`
	State     string     `json:"state,omitempty"`
	MediaURL  string     `json:"mediaUrl,omitempty"`
	CTAURL    string     `json:"ctaUrl,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       *Money `json:"price,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	Category    string `json:"category,omitempty"`
}

// ServiceItem é um serviço oferecido pelo negócio, achatado a partir das
// várias formas que a plataforma usa para representá-lo. Raw guarda o payload
// original para depuração de drift de schema no upstream.
type ServiceItem struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       *Money         `json:"price,omitempty"`
	Raw         map[string]any `json:"raw,omitempty"`
}

type Question struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Author      string     `json:"author,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	AnswerCount int        `json:"answerCount"`
	HasAnswer   bool       `json:"hasAnswer"`
	// Indica se a melhor resposta foi dada pelo dono do perfil
	AnsweredByOwner bool `json:"answeredByOwner"`
}

type Money struct {
	Currency string  `json:"currency,omitempty"`
	Amount   float64 `json:"amount"`
}

// PerformanceReport agrega as séries temporais de métricas de desempenho
// sobre a janela fixa de observação (seis meses)
type PerformanceReport struct {
	StartDate time.Time                `json:"startDate"`
	EndDate   time.Time                `json:"endDate"`
	Series    map[string][]MetricPoint `json:"series,omitempty"`
	Totals    map[string]int64         `json:"totals"`
}

type MetricPoint struct {
	Date  time.Time `json:"date"`
	Value int64     `json:"value"`
}
