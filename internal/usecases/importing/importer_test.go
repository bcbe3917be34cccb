package importing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/barberia/barber-manager-api/internal/domain"
	"github.com/barberia/barber-manager-api/internal/usecases/importing/mocks"
)

func TestImportBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreator := mocks.NewMockRecordCreator(ctrl)

	batch := []*domain.HaircutCreate{
		{ClientName: "Sin nombre", ServiceName: "Corte", Price: 1500, Date: "01/02/2026"},
		{ClientName: "Sin nombre", ServiceName: "Corte", Price: 1800, Date: "02/02/2026"},
		{ClientName: "Sin nombre", ServiceName: "Barba", Price: 800, Date: "03/02/2026"},
	}

	t.Run("Lote completo criado em ordem", func(t *testing.T) {
		gomock.InOrder(
			mockCreator.EXPECT().Create(batch[0]).Return(&domain.Haircut{ID: "a"}, nil),
			mockCreator.EXPECT().Create(batch[1]).Return(&domain.Haircut{ID: "b"}, nil),
			mockCreator.EXPECT().Create(batch[2]).Return(&domain.Haircut{ID: "c"}, nil),
		)

		report := ImportBatch(mockCreator, batch)

		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 3, report.Created)
		assert.Nil(t, report.FailedIndex)
		assert.Empty(t, report.Cause)
	})

	t.Run("Falha no segundo registro interrompe o lote", func(t *testing.T) {
		gomock.InOrder(
			mockCreator.EXPECT().Create(batch[0]).Return(&domain.Haircut{ID: "a"}, nil),
			mockCreator.EXPECT().Create(batch[1]).Return(nil, errors.New("conexão recusada")),
		)
		// O terceiro registro nunca é submetido

		report := ImportBatch(mockCreator, batch)

		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 1, report.Created)
		if assert.NotNil(t, report.FailedIndex) {
			assert.Equal(t, 1, *report.FailedIndex)
		}
		assert.Equal(t, "conexão recusada", report.Cause)
	})

	t.Run("Lote vazio é bem sucedido sem chamadas", func(t *testing.T) {
		report := ImportBatch(mockCreator, nil)

		assert.Equal(t, 0, report.Total)
		assert.Equal(t, 0, report.Created)
		assert.Nil(t, report.FailedIndex)
	})
}
