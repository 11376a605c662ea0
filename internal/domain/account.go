package domain

import "time"

// ConnectedAccount representa o par de credenciais OAuth delegadas que liga o
// sistema a uma conta da plataforma externa. O access token é substituído a
// cada refresh; o refresh token, uma vez emitido, é mantido mesmo após o
// refresh (a plataforma não rotaciona refresh tokens).
type ConnectedAccount struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	AccessToken    string     `json:"-"`
	RefreshToken   string     `json:"-"`
	TokenExpiresAt time.Time  `json:"tokenExpiresAt"`
	AccountName    string     `json:"accountName,omitempty"`
	LocationID     string     `json:"locationId,omitempty"`
	Version        int64      `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DisconnectedAt *time.Time `json:"disconnectedAt,omitempty"`
}

// HasRefreshToken indica se a conta possui refresh token armazenado.
// Sem refresh token não há como renovar a credencial: é necessário que o
// usuário refaça o fluxo de autorização.
func (a *ConnectedAccount) HasRefreshToken() bool {
	return a != nil && a.RefreshToken != ""
}

// IsTokenExpired compara o instante atual com a expiração armazenada.
// Comparação exata, sem margem de tolerância.
func (a *ConnectedAccount) IsTokenExpired(now time.Time) bool {
	return !now.Before(a.TokenExpiresAt)
}
