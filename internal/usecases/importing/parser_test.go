package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		hasError bool
	}{
		{
			name:     "Valor com símbolo, milhar e decimal",
			raw:      "$1.500,50",
			expected: 1500.50,
		},
		{
			name:     "Valor com espaços ao redor",
			raw:      "  $ 2.000  ",
			expected: 2000,
		},
		{
			name:     "Valor apenas numérico passa inalterado",
			raw:      "1500",
			expected: 1500,
		},
		{
			name:     "Decimal com vírgula sem milhar",
			raw:      "99,90",
			expected: 99.90,
		},
		{
			name:     "Célula numérica estringificada mantém o ponto decimal",
			raw:      "1500.5",
			expected: 1500.5,
		},
		{
			name:     "Decimal curto sem vírgula não é milhar",
			raw:      "1.5",
			expected: 1.5,
		},
		{
			name:     "Milhar sem decimal mantém o agrupamento",
			raw:      "12.345.678",
			expected: 12345678,
		},
		{
			name:     "Zero é sintaticamente válido",
			raw:      "0",
			expected: 0,
		},
		{
			name:     "Valor negativo é sintaticamente válido",
			raw:      "-5",
			expected: -5,
		},
		{
			name:     "Texto não numérico deve falhar",
			raw:      "abc",
			hasError: true,
		},
		{
			name:     "Célula vazia deve falhar",
			raw:      "   ",
			hasError: true,
		},
		{
			name:     "Apenas símbolo de moeda deve falhar",
			raw:      "$",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseAmount(tt.raw)

			if tt.hasError {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		raw      string
		expected string
		hasError bool
	}{
		{
			name:     "Data completa com barras",
			raw:      "03/01/2026",
			expected: "03/01/2026",
		},
		{
			name:     "Dia e mês sem zero à esquerda",
			raw:      "3/1/26",
			expected: "03/01/2026",
		},
		{
			name:     "Separador com hífen",
			raw:      "5-3-2026",
			expected: "05/03/2026",
		},
		{
			name:     "Separador com ponto",
			raw:      "5.3.26",
			expected: "05/03/2026",
		},
		{
			name:     "Dois segmentos assumem o ano corrente",
			raw:      "05/03",
			expected: "05/03/2026",
		},
		{
			name:     "Atalho dia e mês com ponto não vira serial",
			raw:      "5.3",
			expected: "05/03/2026",
		},
		{
			name:     "Serial numérico de planilha",
			raw:      "45292", // 2024-01-01
			expected: "01/01/2024",
		},
		{
			name:     "Texto sem separadores passa adiante",
			raw:      "ayer",
			expected: "ayer",
		},
		{
			name:     "Célula vazia deve falhar",
			raw:      "  ",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.raw, now)

			if tt.hasError {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, date)
		})
	}
}
