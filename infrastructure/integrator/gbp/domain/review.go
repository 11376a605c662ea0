package domain

// StarRating é o enum textual de estrelas usado pela plataforma
type StarRating string

const (
	StarRatingOne   StarRating = "ONE"
	StarRatingTwo   StarRating = "TWO"
	StarRatingThree StarRating = "THREE"
	StarRatingFour  StarRating = "FOUR"
	StarRatingFive  StarRating = "FIVE"
)

// Value converte o enum textual para o valor numérico de 1 a 5.
// Valores desconhecidos retornam 0 e são ignorados na média local.
func (s StarRating) Value() int {
	switch s {
	case StarRatingOne:
		return 1
	case StarRatingTwo:
		return 2
	case StarRatingThree:
		return 3
	case StarRatingFour:
		return 4
	case StarRatingFive:
		return 5
	}
	return 0
}

type Review struct {
	ReviewID   string       `json:"reviewId,omitempty"`
	Name       string       `json:"name,omitempty"`
	Reviewer   *Reviewer    `json:"reviewer,omitempty"`
	StarRating StarRating   `json:"starRating,omitempty"`
	Comment    string       `json:"comment,omitempty"`
	CreateTime string       `json:"createTime,omitempty"`
	UpdateTime string       `json:"updateTime,omitempty"`
	Reply      *ReviewReply `json:"reviewReply,omitempty"`
}

type Reviewer struct {
	DisplayName     string `json:"displayName,omitempty"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
	IsAnonymous     bool   `json:"isAnonymous,omitempty"`
}

type ReviewReply struct {
	Comment    string `json:"comment,omitempty"`
	UpdateTime string `json:"updateTime,omitempty"`
}
