package utils

import (
	"fmt"
	"time"
)

// importDateLayout é o formato produzido pelo pipeline de importação.
const importDateLayout = "02/01/2006"

// ParseCivilDate interpreta uma data civil nos dois formatos em circulação:
// o canônico YYYY-MM-DD e o DD/MM/YYYY vindo da importação de planilhas.
func ParseCivilDate(dateStr string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, importDateLayout} {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", dateStr)
}

// Today retorna a data civil de hoje, normalizada para meia-noite UTC.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
