package domain

// ErrorResponse é o envelope de erro padrão da API da plataforma
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsAuthError indica se o erro exige nova autorização (credencial revogada ou
// inválida). Nesses casos o refresh não resolve: o usuário precisa reconectar
// a conta.
func (e *ErrorResponse) IsAuthError() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}

// PlaceDetailsResponse é a resposta do endpoint público de dados do lugar,
// usado como terceiro nível da reconciliação de rating
type PlaceDetailsResponse struct {
	Result PlaceResult `json:"result"`
	Status string      `json:"status"`
}

type PlaceResult struct {
	Rating           float64 `json:"rating,omitempty"`
	UserRatingsTotal int     `json:"user_ratings_total,omitempty"`
}
