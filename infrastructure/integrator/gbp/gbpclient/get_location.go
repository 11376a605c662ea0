package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

// locationReadMask delimita os campos de metadados do perfil necessários para
// o snapshot e para o score
const locationReadMask = "title,profile,phoneNumbers,websiteUri,storefrontAddress,categories,regularHours,attributes,metadata"

// GetLocation busca os metadados do perfil (nome, descrição, telefone,
// website, endereço, categorias, horários, atributos) em um único item, sem
// paginação. Ausência de campos opcionais degrada para vazio.
func (c *GBPClient) GetLocation(ctx context.Context, token, locationID string) (*gbpdomain.Location, error) {
	params := url.Values{}
	params.Set("readMask", locationReadMask)

	requestURL := fmt.Sprintf("%s/locations/%s?%s", c.Cfg.Google.BusinessInfoURL, locationID, params.Encode())

	body, err := c.doGet(ctx, token, requestURL)
	if err != nil {
		return nil, err
	}

	var location gbpdomain.Location
	if err := json.Unmarshal(body, &location); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON do perfil: %w", err)
	}

	return &location, nil
}
