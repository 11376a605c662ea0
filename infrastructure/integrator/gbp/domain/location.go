package domain

// Location é o payload bruto do endpoint de metadados do perfil. Campos
// opcionais ausentes degradam para vazio, nunca para erro.
type Location struct {
	Name         string        `json:"name,omitempty"`
	Title        string        `json:"title,omitempty"`
	Profile      *Profile      `json:"profile,omitempty"`
	PhoneNumbers *PhoneNumbers `json:"phoneNumbers,omitempty"`
	WebsiteURI   string        `json:"websiteUri,omitempty"`
	Address      *PostalAddress `json:"storefrontAddress,omitempty"`
	Categories   *Categories   `json:"categories,omitempty"`
	RegularHours *RegularHours `json:"regularHours,omitempty"`
	Attributes   []Attribute   `json:"attributes,omitempty"`
	Metadata     *LocationMeta `json:"metadata,omitempty"`
}

type Profile struct {
	Description string `json:"description,omitempty"`
}

type PhoneNumbers struct {
	PrimaryPhone     string   `json:"primaryPhone,omitempty"`
	AdditionalPhones []string `json:"additionalPhones,omitempty"`
}

type PostalAddress struct {
	AddressLines       []string `json:"addressLines,omitempty"`
	Locality           string   `json:"locality,omitempty"`
	AdministrativeArea string   `json:"administrativeArea,omitempty"`
	PostalCode         string   `json:"postalCode,omitempty"`
	RegionCode         string   `json:"regionCode,omitempty"`
}

type Categories struct {
	PrimaryCategory      *Category  `json:"primaryCategory,omitempty"`
	AdditionalCategories []Category `json:"additionalCategories,omitempty"`
}

type Category struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

type RegularHours struct {
	Periods []HoursPeriod `json:"periods,omitempty"`
}

type HoursPeriod struct {
	OpenDay   string     `json:"openDay,omitempty"`
	OpenTime  *TimeOfDay `json:"openTime,omitempty"`
	CloseDay  string     `json:"closeDay,omitempty"`
	CloseTime *TimeOfDay `json:"closeTime,omitempty"`
}

type TimeOfDay struct {
	Hours   int `json:"hours,omitempty"`
	Minutes int `json:"minutes,omitempty"`
}

type Attribute struct {
	Name   string   `json:"name,omitempty"`
	Values []any    `json:"values,omitempty"`
	URIs   []string `json:"uriValues,omitempty"`
}

type LocationMeta struct {
	PlaceID string `json:"placeId,omitempty"`
	MapsURI string `json:"mapsUri,omitempty"`
}

// Account representa uma conta da plataforma na listagem de contas, usada
// para resolver o nome externo da conta conectada
type Account struct {
	Name        string `json:"name,omitempty"`
	AccountName string `json:"accountName,omitempty"`
	Type        string `json:"type,omitempty"`
}
