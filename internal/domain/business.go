package domain

import "time"

// BusinessStatus representa o status de um negócio cadastrado no painel
type BusinessStatus string

const (
	BusinessActive   BusinessStatus = "ACTIVE"
	BusinessDisabled BusinessStatus = "DISABLED"
)

// Business representa um negócio gerenciado pelo painel. Cada negócio aponta
// para um perfil (location) na plataforma externa através da LocationReference.
type Business struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	PlaceID   *string           `json:"placeId,omitempty"`
	Status    BusinessStatus    `json:"status"`
	Location  LocationReference `json:"location"`
	AccountID *string           `json:"accountId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// LocationReference identifica o perfil do negócio na plataforma externa.
// Imutável depois que o negócio é vinculado.
type LocationReference struct {
	AccountID  string `json:"accountId"`
	LocationID string `json:"locationId"`
}

// IsLinked indica se o negócio já foi vinculado a um perfil externo
func (l LocationReference) IsLinked() bool {
	return l.AccountID != "" && l.LocationID != ""
}

type CreateBusinessRequest struct {
	Name       string  `json:"name"`
	PlaceID    *string `json:"placeId,omitempty"`
	AccountID  string  `json:"accountId"`
	LocationID string  `json:"locationId"`
}

type UpdateBusinessRequest struct {
	ID      string          `json:"-"`
	Name    *string         `json:"name,omitempty"`
	PlaceID *string         `json:"placeId,omitempty"`
	Status  *BusinessStatus `json:"status,omitempty"`
}
