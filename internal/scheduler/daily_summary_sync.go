package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/barberia/barber-manager-api/infrastructure/repository"
	"github.com/barberia/barber-manager-api/internal/config"
)

// SummarySyncConfig representa a configuração do agendador de resumos diários
type SummarySyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// DailySummarySyncService gerencia o agendamento e execução da consolidação
// dos resumos diários de atendimentos
type DailySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              SummarySyncConfig
	haircutRepo         repository.HaircutRepository
	summaryRepo         repository.DailySummaryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailySummarySyncService cria uma nova instância do serviço de consolidação de resumos
func NewDailySummarySyncService(
	haircutRepo repository.HaircutRepository,
	summaryRepo repository.DailySummaryRepository,
	appConfig *config.Config,
) *DailySummarySyncService {
	// Criar a configuração com base na config global
	syncConfig := SummarySyncConfig{
		CronSchedule: appConfig.SummarySync.CronSchedule,
		LookbackDays: appConfig.SummarySync.LookbackDays,
		SyncEnabled:  appConfig.SummarySync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de resumos diários carregada")

	return &DailySummarySyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		haircutRepo: haircutRepo,
		summaryRepo: summaryRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DailySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação de resumos diários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação de resumos diários")

	// Agendar a consolidação dos resumos
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDailySummaries()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de resumos diários: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação de resumos diários")
		s.scheduler.Stop()
	}()

	return nil
}

// syncDailySummaries recalcula e persiste os resumos dos últimos dias
func (s *DailySummarySyncService) syncDailySummaries() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de resumos diários já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[0].Format(time.DateOnly),
		"end_date":   dates[len(dates)-1].Format(time.DateOnly),
	}).Info("Período para consolidação de resumos diários")

	// Resumos já consolidados no período, para fins de registro
	existing, err := s.summaryRepo.GetRange(dates[0], dates[len(dates)-1])
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar resumos existentes no período")
		return
	}

	updated := 0
	for _, date := range dates {
		if s.processDate(date) {
			updated++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"days":     s.config.LookbackDays,
		"previous": len(existing),
		"updated":  updated,
	}).Info("Consolidação de resumos diários concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess cria um conjunto de datas em ordem cronológica
func (s *DailySummarySyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		day := time.Now().AddDate(0, 0, -i)
		dates[i] = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// processDate recalcula o resumo de uma data a partir dos atendimentos registrados
func (s *DailySummarySyncService) processDate(date time.Time) bool {
	summary, err := s.haircutRepo.SummaryByDate(date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date":  date.Format(time.DateOnly),
			"error": err.Error(),
		}).Error("Erro ao calcular resumo do dia")
		return false
	}

	summary.Date = date
	if err := s.summaryRepo.SaveOrUpdate(summary); err != nil {
		logrus.WithFields(logrus.Fields{
			"date":  date.Format(time.DateOnly),
			"error": err.Error(),
		}).Error("Erro ao salvar resumo do dia no banco de dados")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"date":  date.Format(time.DateOnly),
		"count": summary.Count,
		"total": summary.Total,
	}).Debug("Resumo do dia consolidado")

	return true
}

// TriggerManualSync inicia manualmente uma consolidação de resumos diários
func (s *DailySummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de resumos diários já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de resumos diários")
	go s.syncDailySummaries()
}

// GetStatus retorna o status atual do agendador
func (s *DailySummarySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
