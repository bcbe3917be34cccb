package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberia/barber-manager-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("Linha válida vira registro canônico com padrões aplicados", func(t *testing.T) {
		rows := []ImportRow{
			{Line: 2, RawDate: "3/1/26", RawAmount: "$1.500,50"},
		}

		result := Normalize(rows, now)

		assert.Len(t, result.Accepted, 1)
		assert.Empty(t, result.Rejected)

		accepted := result.Accepted[0]
		assert.Equal(t, domain.DefaultClientName, accepted.ClientName)
		assert.Equal(t, domain.DefaultServiceName, accepted.ServiceName)
		assert.Equal(t, 1500.50, accepted.Price)
		assert.Equal(t, "03/01/2026", accepted.Date)
		assert.Nil(t, accepted.Time)
	})

	t.Run("Serviço presente na origem substitui o padrão", func(t *testing.T) {
		rows := []ImportRow{
			{Line: 2, RawDate: "01/02/2026", RawAmount: "800", RawService: "Barba"},
		}

		result := Normalize(rows, now)

		assert.Len(t, result.Accepted, 1)
		assert.Equal(t, "Barba", result.Accepted[0].ServiceName)
	})

	t.Run("Data inválida rejeita a linha sem abortar as demais", func(t *testing.T) {
		rows := []ImportRow{
			{Line: 2, RawDate: "", RawAmount: "1500"},
			{Line: 3, RawDate: "02/02/2026", RawAmount: "1800"},
		}

		result := Normalize(rows, now)

		assert.Len(t, result.Accepted, 1)
		assert.Len(t, result.Rejected, 1)
		assert.Equal(t, 2, result.Rejected[0].Line)
		assert.Equal(t, ReasonInvalidDate, result.Rejected[0].Reason)
	})

	t.Run("Data e valor inválidos juntos registram o motivo da data", func(t *testing.T) {
		rows := []ImportRow{
			{Line: 2, RawDate: "", RawAmount: "abc"},
		}

		result := Normalize(rows, now)

		assert.Len(t, result.Rejected, 1)
		assert.Equal(t, ReasonInvalidDate, result.Rejected[0].Reason)
	})

	t.Run("Valor ilegível rejeita com motivo de valor", func(t *testing.T) {
		rows := []ImportRow{
			{Line: 2, RawDate: "01/02/2026", RawAmount: "abc"},
		}

		result := Normalize(rows, now)

		assert.Empty(t, result.Accepted)
		assert.Equal(t, ReasonInvalidAmount, result.Rejected[0].Reason)
	})

	t.Run("Valores zero e negativos são rejeitados", func(t *testing.T) {
		rows := []ImportRow{
			{Line: 2, RawDate: "01/02/2026", RawAmount: "0"},
			{Line: 3, RawDate: "01/02/2026", RawAmount: "-5"},
		}

		result := Normalize(rows, now)

		assert.Empty(t, result.Accepted)
		assert.Len(t, result.Rejected, 2)
		assert.Equal(t, ReasonInvalidAmount, result.Rejected[0].Reason)
		assert.Equal(t, ReasonInvalidAmount, result.Rejected[1].Reason)
	})

	t.Run("Ordem de origem é preservada entre os aceitos", func(t *testing.T) {
		rows := []ImportRow{
			{Line: 2, RawDate: "01/02/2026", RawAmount: "100"},
			{Line: 3, RawDate: "02/02/2026", RawAmount: "abc"},
			{Line: 4, RawDate: "03/02/2026", RawAmount: "300"},
		}

		result := Normalize(rows, now)

		assert.Len(t, result.Accepted, 2)
		assert.Equal(t, "01/02/2026", result.Accepted[0].Date)
		assert.Equal(t, "03/02/2026", result.Accepted[1].Date)
	})
}
