package importing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/barberia/barber-manager-api/internal/config"
	"github.com/barberia/barber-manager-api/internal/domain"
	"github.com/barberia/barber-manager-api/internal/usecases/importing/mocks"
)

func newTestService(resolve ReaderResolver, creator RecordCreator) *Service {
	cfg := &config.Config{}
	cfg.Import.DateColumn = "FECHA"
	cfg.Import.AmountColumn = "CORTE"

	svc := NewService(cfg, resolve, creator).(*Service)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func resolverFor(reader GridReader) ReaderResolver {
	return func(filename string) (GridReader, error) {
		return reader, nil
	}
}

func TestServicePreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Planilha válida produz aceitos e rejeitados", func(t *testing.T) {
		mockReader := mocks.NewMockGridReader(ctrl)
		mockReader.EXPECT().Read(gomock.Any()).Return([][]string{
			{"FECHA", "CORTE"},
			{"01/02/2026", "$1.500"},
			{"02/02/2026", "abc"},
		}, nil)

		svc := newTestService(resolverFor(mockReader), nil)

		result, err := svc.Preview("ventas.csv", []byte("dados"))

		assert.NoError(t, err)
		assert.Len(t, result.Accepted, 1)
		assert.Len(t, result.Rejected, 1)
		assert.Equal(t, 3, result.Rejected[0].Line)
	})

	t.Run("Extensão não suportada vira arquivo ilegível", func(t *testing.T) {
		resolve := func(filename string) (GridReader, error) {
			return nil, errors.New("extensão de arquivo não suportada: .pdf")
		}

		svc := newTestService(resolve, nil)

		_, err := svc.Preview("ventas.pdf", []byte("dados"))
		assert.ErrorIs(t, err, ErrUnreadableFile)
	})

	t.Run("Falha de leitura vira arquivo ilegível", func(t *testing.T) {
		mockReader := mocks.NewMockGridReader(ctrl)
		mockReader.EXPECT().Read(gomock.Any()).Return(nil, errors.New("zip corrompido"))

		svc := newTestService(resolverFor(mockReader), nil)

		_, err := svc.Preview("ventas.xlsx", []byte("dados"))
		assert.ErrorIs(t, err, ErrUnreadableFile)
	})

	t.Run("Coluna obrigatória ausente interrompe a importação", func(t *testing.T) {
		mockReader := mocks.NewMockGridReader(ctrl)
		mockReader.EXPECT().Read(gomock.Any()).Return([][]string{
			{"FECHA", "PRECIO"},
			{"01/02/2026", "1500"},
		}, nil)

		svc := newTestService(resolverFor(mockReader), nil)

		_, err := svc.Preview("ventas.csv", []byte("dados"))
		assert.ErrorIs(t, err, ErrMissingColumn)
	})
}

func TestServiceImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Importação completa reporta lote e rejeições", func(t *testing.T) {
		mockReader := mocks.NewMockGridReader(ctrl)
		mockReader.EXPECT().Read(gomock.Any()).Return([][]string{
			{"FECHA", "CORTE"},
			{"01/02/2026", "1500"},
			{"02/02/2026", "0"},
			{"03/02/2026", "1800"},
		}, nil)

		mockCreator := mocks.NewMockRecordCreator(ctrl)
		mockCreator.EXPECT().Create(gomock.Any()).Return(&domain.Haircut{ID: "a"}, nil).Times(2)

		svc := newTestService(resolverFor(mockReader), mockCreator)

		report, err := svc.Import("ventas.csv", []byte("dados"))

		assert.NoError(t, err)
		assert.NotEmpty(t, report.BatchID)
		assert.Equal(t, 2, report.Accepted)
		assert.Len(t, report.Rejected, 1)
		assert.Equal(t, 2, report.Batch.Created)
		assert.Nil(t, report.Batch.FailedIndex)
	})

	t.Run("Falha parcial do colaborador aparece no relatório", func(t *testing.T) {
		mockReader := mocks.NewMockGridReader(ctrl)
		mockReader.EXPECT().Read(gomock.Any()).Return([][]string{
			{"FECHA", "CORTE"},
			{"01/02/2026", "1500"},
			{"02/02/2026", "1800"},
		}, nil)

		mockCreator := mocks.NewMockRecordCreator(ctrl)
		gomock.InOrder(
			mockCreator.EXPECT().Create(gomock.Any()).Return(&domain.Haircut{ID: "a"}, nil),
			mockCreator.EXPECT().Create(gomock.Any()).Return(nil, errors.New("banco indisponível")),
		)

		svc := newTestService(resolverFor(mockReader), mockCreator)

		report, err := svc.Import("ventas.csv", []byte("dados"))

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Accepted)
		assert.Equal(t, 1, report.Batch.Created)
		if assert.NotNil(t, report.Batch.FailedIndex) {
			assert.Equal(t, 1, *report.Batch.FailedIndex)
		}
	})
}
