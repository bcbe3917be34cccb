package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/barberia/barber-manager-api/infrastructure/repository/mocks"
	"github.com/barberia/barber-manager-api/internal/config"
	"github.com/barberia/barber-manager-api/internal/domain"
)

func newTestConfig(lookbackDays int, enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.SummarySync.CronSchedule = "0 3 * * *"
	cfg.SummarySync.LookbackDays = lookbackDays
	cfg.SummarySync.Enabled = enabled
	return cfg
}

func TestGetDatesToProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDailySummarySyncService(
		mocks.NewMockHaircutRepository(ctrl),
		mocks.NewMockDailySummaryRepository(ctrl),
		newTestConfig(3, true),
	)

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 3)
	for i, date := range dates {
		assert.Equal(t, time.UTC, date.Location())
		assert.Equal(t, 0, date.Hour())
		if i > 0 {
			assert.True(t, dates[i-1].Before(date), "datas devem estar em ordem cronológica")
		}
	}

	// O último dia do período é hoje
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, dates[len(dates)-1])
}

func TestProcessDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	t.Run("Resumo calculado é persistido com a data do dia", func(t *testing.T) {
		haircutRepo := mocks.NewMockHaircutRepository(ctrl)
		summaryRepo := mocks.NewMockDailySummaryRepository(ctrl)

		haircutRepo.EXPECT().SummaryByDate(date).Return(&domain.DailySummary{Count: 4, Total: 6200}, nil)
		summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(summary *domain.DailySummary) error {
			assert.Equal(t, date, summary.Date)
			assert.Equal(t, 4, summary.Count)
			assert.Equal(t, 6200.0, summary.Total)
			return nil
		})

		service := NewDailySummarySyncService(haircutRepo, summaryRepo, newTestConfig(3, true))
		assert.True(t, service.processDate(date))
	})

	t.Run("Falha ao calcular o resumo não persiste nada", func(t *testing.T) {
		haircutRepo := mocks.NewMockHaircutRepository(ctrl)
		summaryRepo := mocks.NewMockDailySummaryRepository(ctrl)

		haircutRepo.EXPECT().SummaryByDate(date).Return(nil, errors.New("conexão recusada"))

		service := NewDailySummarySyncService(haircutRepo, summaryRepo, newTestConfig(3, true))
		assert.False(t, service.processDate(date))
	})

	t.Run("Falha ao salvar marca o dia como não consolidado", func(t *testing.T) {
		haircutRepo := mocks.NewMockHaircutRepository(ctrl)
		summaryRepo := mocks.NewMockDailySummaryRepository(ctrl)

		haircutRepo.EXPECT().SummaryByDate(date).Return(&domain.DailySummary{Count: 1, Total: 800}, nil)
		summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("conexão recusada"))

		service := NewDailySummarySyncService(haircutRepo, summaryRepo, newTestConfig(3, true))
		assert.False(t, service.processDate(date))
	})
}

func TestSyncDailySummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Consolida cada dia do período", func(t *testing.T) {
		haircutRepo := mocks.NewMockHaircutRepository(ctrl)
		summaryRepo := mocks.NewMockDailySummaryRepository(ctrl)

		summaryRepo.EXPECT().GetRange(gomock.Any(), gomock.Any()).Return([]*domain.DailySummary{}, nil)
		haircutRepo.EXPECT().SummaryByDate(gomock.Any()).Return(&domain.DailySummary{}, nil).Times(2)
		summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

		service := NewDailySummarySyncService(haircutRepo, summaryRepo, newTestConfig(2, true))
		service.syncDailySummaries()

		status := service.GetStatus()
		assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Falha na consulta do período interrompe a consolidação", func(t *testing.T) {
		haircutRepo := mocks.NewMockHaircutRepository(ctrl)
		summaryRepo := mocks.NewMockDailySummaryRepository(ctrl)

		summaryRepo.EXPECT().GetRange(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))

		service := NewDailySummarySyncService(haircutRepo, summaryRepo, newTestConfig(2, true))
		service.syncDailySummaries()
	})
}

func TestStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Agendador desabilitado não agenda nada", func(t *testing.T) {
		service := NewDailySummarySyncService(
			mocks.NewMockHaircutRepository(ctrl),
			mocks.NewMockDailySummaryRepository(ctrl),
			newTestConfig(7, false),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		assert.NoError(t, service.Start(ctx))
	})
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDailySummarySyncService(
		mocks.NewMockHaircutRepository(ctrl),
		mocks.NewMockDailySummaryRepository(ctrl),
		newTestConfig(7, true),
	)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
}
