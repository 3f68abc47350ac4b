package utils

import "time"

// ParseDate converte uma string "2006-01-02" vinda da query string em data.
// String vazia retorna nil sem erro: o parâmetro é opcional nos handlers.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
