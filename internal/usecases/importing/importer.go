package importing

import (
	"github.com/sirupsen/logrus"

	"github.com/barberia/barber-manager-api/internal/domain"
)

// RecordCreator é o colaborador externo que persiste um registro por vez.
type RecordCreator interface {
	Create(item *domain.HaircutCreate) (*domain.Haircut, error)
}

// BatchReport descreve o resultado da submissão de um lote. Uma falha parcial
// é um estado terminal reportável: os registros já criados permanecem e nenhum
// registro posterior ao da falha chega a ser submetido.
type BatchReport struct {
	Total       int    `json:"total"`
	Created     int    `json:"created"`
	FailedIndex *int   `json:"failedIndex,omitempty"` // índice 0-based no lote aceito
	Cause       string `json:"cause,omitempty"`
}

// ImportBatch submete os registros aceitos estritamente na ordem original, um
// por vez. A serialização é deliberada: limita a carga no colaborador a uma
// escrita em voo e garante a semântica de "criado até o índice i" em caso de
// falha parcial. Nenhum registro é reenviado automaticamente e nenhuma
// compensação é emitida para os já criados.
func ImportBatch(creator RecordCreator, accepted []*domain.HaircutCreate) *BatchReport {
	report := &BatchReport{Total: len(accepted)}

	for i, item := range accepted {
		if _, err := creator.Create(item); err != nil {
			idx := i
			report.FailedIndex = &idx
			report.Cause = err.Error()

			logrus.WithError(err).WithFields(logrus.Fields{
				"index":   i,
				"created": report.Created,
				"total":   report.Total,
			}).Warn("importação: lote interrompido por falha na criação de registro")

			return report
		}

		report.Created++
	}

	logrus.WithField("created", report.Created).Info("importação: lote submetido com sucesso")
	return report
}
