package importing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/barberia/barber-manager-api/internal/config"
	"github.com/barberia/barber-manager-api/pkg/utils"
)

// GridReader é a capacidade externa de leitura de planilha: bytes crus viram
// uma grade de células. O extrator nunca conhece o formato de arquivo.
type GridReader interface {
	Read(data []byte) ([][]string, error)
}

// ReaderResolver escolhe o leitor adequado para um nome de arquivo. Extensões
// não suportadas devem retornar erro.
type ReaderResolver func(filename string) (GridReader, error)

// ImportReport é o resultado completo de uma importação: o que foi aceito e
// rejeitado na normalização e o que de fato foi criado no colaborador.
type ImportReport struct {
	BatchID  string        `json:"batchId"`
	Accepted int           `json:"accepted"`
	Rejected []RejectedRow `json:"rejected"`
	Batch    *BatchReport  `json:"batch"`
}

type Importer interface {
	Preview(filename string, data []byte) (*ImportResult, error)
	Import(filename string, data []byte) (*ImportReport, error)
}

type Service struct {
	cfg     *config.Config
	resolve ReaderResolver
	creator RecordCreator
	columns ColumnSpec
	now     func() time.Time
}

// NewService cria o serviço de importação. O resolvedor de leitores e o
// colaborador de criação são injetados para manter o pipeline testável contra
// grades em memória.
func NewService(cfg *config.Config, resolve ReaderResolver, creator RecordCreator) Importer {
	columns := ColumnSpec{
		Date:    cfg.Import.DateColumn,
		Amount:  cfg.Import.AmountColumn,
		Service: cfg.Import.ServiceColumn,
	}
	if columns.Date == "" || columns.Amount == "" {
		columns = DefaultColumns()
	}

	return &Service{
		cfg:     cfg,
		resolve: resolve,
		creator: creator,
		columns: columns,
		now:     time.Now,
	}
}

// Preview executa o pipeline de normalização sem persistir nada: bytes ->
// grade -> linhas -> registros canônicos mais rejeições.
func (s *Service) Preview(filename string, data []byte) (*ImportResult, error) {
	reader, err := s.resolve(filename)
	if err != nil {
		return nil, NewUnreadableFileError(err.Error())
	}

	grid, err := reader.Read(data)
	if err != nil {
		logrus.WithError(err).WithField("filename", filename).
			Warn("importação: falha ao ler o conteúdo do arquivo")
		return nil, errors.Wrap(NewUnreadableFileError(err.Error()), "leitura do arquivo de importação")
	}

	rows, err := ExtractRows(grid, s.columns)
	if err != nil {
		return nil, err
	}

	return Normalize(rows, s.now()), nil
}

// Import normaliza o arquivo e submete os registros aceitos ao colaborador,
// sequencialmente. As rejeições de linha acompanham o relatório mesmo quando o
// lote é criado por completo.
func (s *Service) Import(filename string, data []byte) (*ImportReport, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	result, err := s.Preview(filename, data)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"filename": filename,
		"accepted": len(result.Accepted),
		"rejected": len(result.Rejected),
	}).Info("importação: iniciando submissão do lote")

	report := &ImportReport{
		BatchID:  batchID,
		Accepted: len(result.Accepted),
		Rejected: result.Rejected,
		Batch:    ImportBatch(s.creator, result.Accepted),
	}

	return report, nil
}
