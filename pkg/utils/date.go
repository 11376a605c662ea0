package utils

import "time"

// ParseDate interpreta parâmetros de data no formato YYYY-MM-DD. String vazia
// devolve a data zero, não erro: filtros de query ausentes são válidos
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
