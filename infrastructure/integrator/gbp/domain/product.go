package domain

type Product struct {
	Name         string      `json:"name,omitempty"`
	Title        string      `json:"title,omitempty"`
	Description  string      `json:"description,omitempty"`
	Price        *MoneyValue `json:"price,omitempty"`
	Media        []PostMedia `json:"media,omitempty"`
	CategoryName string      `json:"categoryName,omitempty"`
}

// MoneyValue segue o formato da plataforma: unidades inteiras como string e
// fração em nanos
type MoneyValue struct {
	CurrencyCode string `json:"currencyCode,omitempty"`
	Units        string `json:"units,omitempty"`
	Nanos        int64  `json:"nanos,omitempty"`
}
