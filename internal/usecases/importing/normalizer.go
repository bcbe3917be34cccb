package importing

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/barberia/barber-manager-api/internal/domain"
)

// RejectedRow registra uma linha que não passou na validação, com o número da
// linha de origem e o motivo. A rejeição de uma linha nunca aborta as demais.
type RejectedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// ImportResult é a saída do normalizador: registros aceitos em ordem de origem
// e as linhas rejeitadas com seus motivos. Não é mutado após a criação.
type ImportResult struct {
	Accepted []*domain.HaircutCreate `json:"accepted"`
	Rejected []RejectedRow           `json:"rejected"`
}

// Normalize valida cada linha de forma independente: uma linha é aceita somente
// quando a data e o valor são interpretáveis e o valor é estritamente positivo.
// Quando data e valor falham juntos, o motivo registrado é o da data. Problemas
// de qualidade de dados nunca viram erro de lote; apenas estrutura de arquivo
// (coluna ausente, conteúdo ilegível) interrompe a importação como um todo.
func Normalize(rows []ImportRow, now time.Time) *ImportResult {
	result := &ImportResult{
		Accepted: make([]*domain.HaircutCreate, 0, len(rows)),
		Rejected: make([]RejectedRow, 0),
	}

	for _, row := range rows {
		date, dateErr := ParseDate(row.RawDate, now)
		if dateErr != nil || date == "" {
			result.Rejected = append(result.Rejected, RejectedRow{
				Line:   row.Line,
				Reason: ReasonInvalidDate,
				Detail: "data ilegível: " + row.RawDate,
			})

			logrus.WithFields(logrus.Fields{
				"line":     row.Line,
				"raw_date": row.RawDate,
			}).Debug("importação: linha rejeitada por data inválida")
			continue
		}

		amount, amountErr := ParseAmount(row.RawAmount)
		if amountErr != nil {
			result.Rejected = append(result.Rejected, RejectedRow{
				Line:   row.Line,
				Reason: ReasonInvalidAmount,
				Detail: "valor ilegível: " + row.RawAmount,
			})

			logrus.WithFields(logrus.Fields{
				"line":       row.Line,
				"raw_amount": row.RawAmount,
			}).Debug("importação: linha rejeitada por valor inválido")
			continue
		}

		if amount <= 0 {
			result.Rejected = append(result.Rejected, RejectedRow{
				Line:   row.Line,
				Reason: ReasonInvalidAmount,
				Detail: "valor não positivo: " + row.RawAmount,
			})

			logrus.WithFields(logrus.Fields{
				"line":   row.Line,
				"amount": amount,
			}).Debug("importação: linha rejeitada por valor não positivo")
			continue
		}

		serviceName := row.RawService
		if serviceName == "" {
			serviceName = domain.DefaultServiceName
		}

		// A importação histórica nunca informa horário nem cliente.
		result.Accepted = append(result.Accepted, &domain.HaircutCreate{
			ClientName:  domain.DefaultClientName,
			ServiceName: serviceName,
			Price:       amount,
			Date:        date,
		})
	}

	logrus.WithFields(logrus.Fields{
		"total_rows": len(rows),
		"accepted":   len(result.Accepted),
		"rejected":   len(result.Rejected),
	}).Info("importação: normalização concluída")

	return result
}
