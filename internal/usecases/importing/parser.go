package importing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Época serial de planilha: o serial 1 corresponde a 31/12/1899, preservando o
// desvio histórico do dia 60 das planilhas.
var spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var amountCleaner = strings.NewReplacer("$", "", " ", "", "\t", "", " ", "")

// Agrupamento de milhares es-AR sem parte decimal: grupos de exatamente três
// dígitos separados por ponto ("1.500", "12.345.678").
var thousandsGrouping = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// ParseAmount converte uma célula de valor monetário para float64. Com vírgula
// presente vale a convenção es-AR por extenso: pontos agrupam milhares e a
// vírgula é o separador decimal ("$1.500,50" -> 1500.50). Sem vírgula, só o
// padrão estrito de agrupamento tem os pontos removidos ("1.500" -> 1500);
// qualquer outro ponto é decimal, porque células numéricas da planilha chegam
// estringificadas ("1500.5") e devem passar inalteradas. A função valida
// apenas a sintaxe; valores não positivos são filtrados depois, na validação
// de linha do normalizador.
func ParseAmount(raw string) (float64, error) {
	cleaned := amountCleaner.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, ErrInvalidAmount
	}

	switch {
	case strings.Contains(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case thousandsGrouping.MatchString(cleaned):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidAmount
	}

	return value, nil
}

// ParseDate converte uma célula de data para o formato DD/MM/YYYY, tentando em
// ordem:
//
//  1. texto separado por "/", "-" ou ".": dia e mês com zero à esquerda; ano
//     de dois dígitos ganha o prefixo "20"; com exatamente dois segmentos de
//     até dois dígitos o ano assume o ano corrente de now (atalho DD/MM de
//     algumas origens, inclusive o pontuado "5.3");
//  2. célula só de dígitos: serial de planilha, contado em dias a partir da
//     época;
//  3. qualquer outro texto passa adiante sem alteração.
//
// O atalho pontuado vem antes do serial de propósito: "5.3" é dia e mês, nunca
// o serial 5.3. Dia e mês fora de faixa não são rejeitados aqui; a
// plausibilidade de negócio é um filtro do normalizador e do colaborador de
// persistência.
func ParseDate(raw string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidDate
	}

	parts := splitDateSegments(trimmed)
	switch {
	case len(parts) >= 3:
		year := parts[2]
		if len(year) == 2 {
			year = "20" + year
		}
		return fmt.Sprintf("%s/%s/%s", padTwo(parts[0]), padTwo(parts[1]), year), nil
	case len(parts) == 2 && len(parts[0]) <= 2 && len(parts[1]) <= 2:
		return fmt.Sprintf("%s/%s/%d", padTwo(parts[0]), padTwo(parts[1]), now.Year()), nil
	}

	if isDigits(trimmed) {
		serial, err := strconv.Atoi(trimmed)
		if err != nil {
			return "", ErrInvalidDate
		}
		return spreadsheetEpoch.AddDate(0, 0, serial).Format("02/01/2006"), nil
	}

	return trimmed, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func splitDateSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
