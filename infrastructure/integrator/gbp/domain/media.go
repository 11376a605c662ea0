package domain

type MediaItem struct {
	Name        string           `json:"name,omitempty"`
	MediaFormat string           `json:"mediaFormat,omitempty"`
	GoogleURL   string           `json:"googleUrl,omitempty"`
	ThumbURL    string           `json:"thumbnailUrl,omitempty"`
	CreateTime  string           `json:"createTime,omitempty"`
	Dimensions  *MediaDimensions `json:"dimensions,omitempty"`
	// A categoria da foto vem aninhada na associação com o perfil; o
	// normalizador a achata para um campo filtrável
	LocationAssociation *LocationAssociation `json:"locationAssociation,omitempty"`
}

type MediaDimensions struct {
	WidthPixels  int `json:"widthPixels,omitempty"`
	HeightPixels int `json:"heightPixels,omitempty"`
}

type LocationAssociation struct {
	Category string `json:"category,omitempty"`
	PriceListItemID string `json:"priceListItemId,omitempty"`
}
