package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

// GetPlaceDetails consulta o endpoint público de dados do lugar, chaveado
// pelo place ID. É o terceiro e último nível da reconciliação de rating, e o
// único que usa chave de API em vez de credencial delegada.
func (c *GBPClient) GetPlaceDetails(ctx context.Context, placeID string) (*gbpdomain.PlaceResult, error) {
	if placeID == "" {
		return nil, fmt.Errorf("place ID não informado")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "rating,user_ratings_total")
	params.Set("key", c.Cfg.Google.PlacesAPIKey)

	requestURL := fmt.Sprintf("%s/details/json?%s", c.Cfg.Google.PlacesURL, params.Encode())

	body, err := c.doGet(ctx, "", requestURL)
	if err != nil {
		return nil, err
	}

	var response gbpdomain.PlaceDetailsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON do lugar: %w", err)
	}

	if response.Status != "OK" {
		return nil, fmt.Errorf("endpoint público retornou status %s", response.Status)
	}

	return &response.Result, nil
}
