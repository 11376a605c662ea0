package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é o payload dos tokens emitidos para os consumidores da API
type Claims struct {
	ClientName string `json:"clientName"`
	jwt.RegisteredClaims
}
